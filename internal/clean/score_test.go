package clean

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/listclean-cli/internal/model"
)

func scored(first, last, company string, emailValid, phoneValid bool) model.CleanedRecord {
	rec := model.CleanedRecord{}
	rec.FirstName = first
	rec.LastName = last
	rec.Company = company
	rec.PhoneValid = phoneValid
	if emailValid {
		rec.EmailResult = model.ValidationResult{IsValid: true, Reason: model.ReasonValid}
	}
	return rec
}

func TestScore_Empty(t *testing.T) {
	assert.Equal(t, 0, Score(model.CleanedRecord{}, false))
}

func TestScore_FullRecord(t *testing.T) {
	rec := scored("John", "Smith", "Acme", true, true)
	assert.Equal(t, 100, Score(rec, false))
}

func TestScore_SingleCharacterFieldsDoNotCount(t *testing.T) {
	rec := scored("J", "S", "A", false, false)
	assert.Equal(t, 0, Score(rec, false))
}

func TestScore_PartialRecord(t *testing.T) {
	rec := scored("John", "Smith", "", true, false)
	assert.Equal(t, 70, Score(rec, false))
}

func TestScore_PatternBonus(t *testing.T) {
	rec := scored("John", "Smith", "Acme", true, false)
	rec.PatternMatch = model.PatternMatchYes
	assert.Equal(t, 95, Score(rec, true))
}

func TestScore_PatternPenalty(t *testing.T) {
	rec := scored("John", "Smith", "Acme", true, false)
	rec.PatternMatch = model.PatternMatchNo
	assert.Equal(t, 75, Score(rec, true))
}

func TestScore_PatternAdjustmentNeedsValidEmail(t *testing.T) {
	rec := scored("John", "Smith", "Acme", false, false)
	rec.PatternMatch = model.PatternMatchYes
	assert.Equal(t, 55, Score(rec, true))
}

func TestScore_ClampedAt100(t *testing.T) {
	rec := scored("John", "Smith", "Acme", true, true)
	rec.PatternMatch = model.PatternMatchYes
	assert.Equal(t, 100, Score(rec, true))
}
