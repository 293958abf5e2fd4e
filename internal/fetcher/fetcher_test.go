package fetcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/listclean-cli/internal/model"
)

func TestNormalizeHeader(t *testing.T) {
	cases := map[string]string{
		"first_name":    "First Name",
		"  FIRST NAME ": "First Name",
		"Company Name":  "Company",
		"company_name":  "Company",
		"email address": "Email",
		"Title":         "Job Title",
		"Direct Dial":   "Phone",
		"Surname":       "Last Name",
		"Unknown Col":   "Unknown Col",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeHeader(in), "input %q", in)
	}
}

func TestNormalizeHeader_NonASCII(t *testing.T) {
	// Multi-byte leading characters must not be split mid-rune.
	assert.Equal(t, "Émail Address", NormalizeHeader("émail address"))
	assert.Equal(t, "Ürün Adi", NormalizeHeader("ÜRÜN ADI"))
}

func TestMapColumns(t *testing.T) {
	cm, err := MapColumns([]string{"company_name", "first_name", "last_name", "EMAIL", "extra"})
	require.NoError(t, err)

	assert.Equal(t, 0, cm[model.FieldCompany])
	assert.Equal(t, 1, cm[model.FieldFirstName])
	assert.Equal(t, 2, cm[model.FieldLastName])
	assert.Equal(t, 3, cm[model.FieldEmail])
	assert.Equal(t, -1, cm[model.FieldPhone])
	assert.Equal(t, -1, cm[model.FieldJobTitle])
}

func TestMapColumns_FirstOccurrenceWins(t *testing.T) {
	cm, err := MapColumns([]string{"Email", "Work Email"})
	require.NoError(t, err)
	assert.Equal(t, 0, cm[model.FieldEmail])
}

func TestMapColumns_NoRecognizedColumns(t *testing.T) {
	_, err := MapColumns([]string{"foo", "bar"})
	assert.Error(t, err)
}

func TestColumnMap_Record(t *testing.T) {
	cm, err := MapColumns([]string{"First Name", "Email"})
	require.NoError(t, err)

	rec := cm.Record([]string{"John", "john@acme.com"})
	assert.Equal(t, "John", rec.FirstName)
	assert.Equal(t, "john@acme.com", rec.Email)
	assert.Equal(t, "", rec.Company)
}

func TestColumnMap_ShortRow(t *testing.T) {
	cm, err := MapColumns([]string{"First Name", "Email"})
	require.NoError(t, err)

	rec := cm.Record([]string{"John"})
	assert.Equal(t, "John", rec.FirstName)
	assert.Equal(t, "", rec.Email)
}
