package model

// ValidationReason explains why a field value passed or failed validation.
type ValidationReason string

const (
	ReasonMissing       ValidationReason = "missing"
	ReasonInvalidFormat ValidationReason = "invalid_format"
	ReasonDisposable    ValidationReason = "disposable"
	ReasonValid         ValidationReason = "valid"
)

// ValidationResult is the outcome of validating a single field value.
type ValidationResult struct {
	IsValid bool             `json:"is_valid"`
	Reason  ValidationReason `json:"reason"`
}

// PatternID enumerates the recognized email local-part naming conventions.
type PatternID string

const (
	PatternFirstDotLast   PatternID = "firstname.lastname"
	PatternFirstUnderLast PatternID = "firstname_lastname"
	PatternFirstDashLast  PatternID = "firstname-lastname"
	PatternFirstLast      PatternID = "firstnamelastname"
	PatternInitialDotLast PatternID = "firstinitial.lastname"
	PatternInitialLast    PatternID = "firstinitiallastname"
	PatternLastDotFirst   PatternID = "lastname.firstname"
	PatternLastUnderFirst PatternID = "lastname_firstname"
	PatternFirstOnly      PatternID = "firstname"
	PatternLastOnly       PatternID = "lastname"
	PatternWithNumbers    PatternID = "with_numbers"
	PatternOther          PatternID = "other"
	PatternUnknown        PatternID = "unknown"
)

// CompanyEmailPattern is the dominant local-part convention detected for a
// company. Present only when the company has at least two records with
// valid, non-disposable emails and the dominant pattern covers at least
// half of them.
type CompanyEmailPattern struct {
	Pattern       PatternID `json:"pattern"`
	MatchingCount int       `json:"matching_count"`
	TotalValid    int       `json:"total_valid"`
	CoverageRatio float64   `json:"coverage_ratio"`
}

// PatternMatch is the tri-state outcome of checking a record's email
// against its company's assigned pattern.
type PatternMatch string

const (
	PatternMatchYes           PatternMatch = "match"
	PatternMatchNo            PatternMatch = "mismatch"
	PatternMatchNotApplicable PatternMatch = "not_applicable"
)
