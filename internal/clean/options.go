// Package clean orchestrates the per-record normalization pass, the
// dataset-wide pattern and scoring passes, duplicate detection, and list
// splitting.
package clean

// Options selects which cleaning steps run.
type Options struct {
	Names             bool
	Company           bool
	InferLastName     bool
	ValidateEmail     bool
	CheckEmailPattern bool
	Phone             bool
	JobTitle          bool
	QualityScore      bool
	RemoveDuplicates  bool
	SplitByCompany    bool
	MaxLists          int

	StripEmoji    bool
	SplitTaglines bool
	StrictEmail   bool
	DefaultRegion string
	Parallelism   int
}

// DefaultOptions enables every cleaning step; pattern checking, duplicate
// removal, and splitting are opt-in.
func DefaultOptions() Options {
	return Options{
		Names:         true,
		Company:       true,
		InferLastName: true,
		ValidateEmail: true,
		Phone:         true,
		JobTitle:      true,
		QualityScore:  true,
		MaxLists:      4,
		StripEmoji:    true,
		SplitTaglines: true,
		DefaultRegion: "US",
		Parallelism:   1,
	}
}
