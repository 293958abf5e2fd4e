package clean

import "github.com/sells-group/listclean-cli/internal/model"

// Point budget per field; the weights sum to 100.
const (
	emailPoints   = 30
	firstPoints   = 20
	lastPoints    = 20
	companyPoints = 15
	phonePoints   = 15

	patternAdjust = 10
)

// Score combines field presence/validity into a 0-100 quality score. When
// pattern checking is enabled and the email is valid, agreement with the
// company's assigned convention adds 10 points and disagreement subtracts
// 10; the adjustment is additive against the fixed 100-point budget, not a
// re-weighted average.
func Score(rec model.CleanedRecord, patternsEnabled bool) int {
	score := 0
	if rec.EmailResult.IsValid {
		score += emailPoints
	}
	if len(rec.FirstName) >= 2 {
		score += firstPoints
	}
	if len(rec.LastName) >= 2 {
		score += lastPoints
	}
	if len(rec.Company) >= 2 {
		score += companyPoints
	}
	if rec.PhoneValid {
		score += phonePoints
	}

	if patternsEnabled && rec.EmailResult.IsValid {
		switch rec.PatternMatch {
		case model.PatternMatchYes:
			score += patternAdjust
		case model.PatternMatchNo:
			score -= patternAdjust
		}
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
