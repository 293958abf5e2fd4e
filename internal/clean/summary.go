package clean

import "github.com/sells-group/listclean-cli/internal/model"

// Summary aggregates change and quality statistics for a run. The percent
// figure is fields-changed over total fields considered: finer-grained
// than a rows-changed ratio and consistent with the per-field change mask.
type Summary struct {
	TotalRecords     int     `json:"total_records"`
	RowsChanged      int     `json:"rows_changed"`
	FieldsConsidered int     `json:"fields_considered"`
	FieldsChanged    int     `json:"fields_changed"`
	PercentChanged   float64 `json:"percent_changed"`
	InvalidEmails    int     `json:"invalid_emails"`
	MeanQualityScore float64 `json:"mean_quality_score"`
}

// Summarize computes run statistics over the cleaned records.
func Summarize(records []model.CleanedRecord, opts Options) Summary {
	s := Summary{TotalRecords: len(records)}
	if len(records) == 0 {
		return s
	}

	considered := consideredFields(opts)
	totalScore := 0
	for _, rec := range records {
		changed := 0
		for _, f := range considered {
			if rec.Changed[f] {
				changed++
			}
		}
		s.FieldsChanged += changed
		if changed > 0 {
			s.RowsChanged++
		}
		if opts.ValidateEmail && !rec.EmailResult.IsValid && rec.EmailResult.Reason != model.ReasonMissing {
			s.InvalidEmails++
		}
		totalScore += rec.QualityScore
	}

	s.FieldsConsidered = len(records) * len(considered)
	if s.FieldsConsidered > 0 {
		s.PercentChanged = float64(s.FieldsChanged) / float64(s.FieldsConsidered) * 100
	}
	if opts.QualityScore {
		s.MeanQualityScore = float64(totalScore) / float64(len(records))
	}
	return s
}

// consideredFields lists the fields whose change flags count toward the
// percent-changed denominator, based on enabled steps.
func consideredFields(opts Options) []model.Field {
	var fields []model.Field
	if opts.Names {
		fields = append(fields, model.FieldFirstName, model.FieldLastName)
	}
	if opts.Company {
		fields = append(fields, model.FieldCompany)
	}
	if opts.ValidateEmail || opts.InferLastName {
		fields = append(fields, model.FieldEmail)
	}
	if opts.Phone {
		fields = append(fields, model.FieldPhone)
	}
	if opts.JobTitle {
		fields = append(fields, model.FieldJobTitle)
	}
	return fields
}
