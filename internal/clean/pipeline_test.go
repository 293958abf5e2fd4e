package clean

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/listclean-cli/internal/model"
)

func TestRun_EndToEnd(t *testing.T) {
	records := []model.Record{{
		FirstName: "dr. john",
		LastName:  "",
		Company:   "Acme Group Inc.",
		Email:     "john.smith@acme.com",
	}}

	p := New(DefaultOptions(), nil)
	result, err := p.Run(context.Background(), records)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)

	rec := result.Records[0]
	assert.Equal(t, "John", rec.FirstName)
	assert.Equal(t, "Smith", rec.LastName)
	assert.Equal(t, "Acme", rec.Company)
	assert.True(t, rec.EmailResult.IsValid)
	assert.GreaterOrEqual(t, rec.QualityScore, 70)

	assert.True(t, rec.Changed[model.FieldFirstName])
	assert.True(t, rec.Changed[model.FieldLastName])
	assert.True(t, rec.Changed[model.FieldCompany])
	assert.False(t, rec.Changed[model.FieldEmail])
}

func TestRun_EmailLowercased(t *testing.T) {
	records := []model.Record{{Email: "John.Smith@Acme.COM"}}

	p := New(DefaultOptions(), nil)
	result, err := p.Run(context.Background(), records)
	require.NoError(t, err)

	rec := result.Records[0]
	assert.Equal(t, "john.smith@acme.com", rec.Email)
	assert.True(t, rec.Changed[model.FieldEmail])
}

func TestRun_NoInferenceWhenLastNamePresent(t *testing.T) {
	records := []model.Record{{
		FirstName: "John",
		LastName:  "Carter",
		Email:     "john.smith@acme.com",
	}}

	p := New(DefaultOptions(), nil)
	result, err := p.Run(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, "Carter", result.Records[0].LastName)
}

func TestRun_DirectoryOverride(t *testing.T) {
	records := []model.Record{{Company: "intl business machines"}}

	p := New(DefaultOptions(), map[string]string{"intl business machines": "IBM Corporation"})
	result, err := p.Run(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, "IBM Corporation", result.Records[0].Company)
}

func TestRun_PatternScoring(t *testing.T) {
	records := []model.Record{
		{FirstName: "John", LastName: "Smith", Company: "Acme", Email: "john.smith@acme.com"},
		{FirstName: "Jane", LastName: "Doe", Company: "Acme", Email: "jane.doe@acme.com"},
		{FirstName: "Sam", LastName: "Poe", Company: "Acme", Email: "info@acme.com"},
	}

	opts := DefaultOptions()
	opts.CheckEmailPattern = true
	result, err := New(opts, nil).Run(context.Background(), records)
	require.NoError(t, err)

	require.Contains(t, result.Patterns, "Acme")
	assert.Equal(t, model.PatternMatchYes, result.Records[0].PatternMatch)
	assert.Equal(t, model.PatternMatchYes, result.Records[1].PatternMatch)
	assert.Equal(t, model.PatternMatchNo, result.Records[2].PatternMatch)
	// Matching records out-score the mismatching one by the adjustment span.
	assert.Equal(t, result.Records[0].QualityScore-20, result.Records[2].QualityScore)
}

func TestRun_PatternCheckDisabled(t *testing.T) {
	records := []model.Record{
		{FirstName: "John", LastName: "Smith", Company: "Acme", Email: "john.smith@acme.com"},
		{FirstName: "Jane", LastName: "Doe", Company: "Acme", Email: "jane.doe@acme.com"},
	}

	result, err := New(DefaultOptions(), nil).Run(context.Background(), records)
	require.NoError(t, err)
	assert.Nil(t, result.Patterns)
	assert.Equal(t, model.PatternMatchNotApplicable, result.Records[0].PatternMatch)
}

func TestRun_RemoveDuplicates(t *testing.T) {
	records := []model.Record{
		{FirstName: "John", LastName: "Smith", Email: "john@acme.com"},
		{FirstName: "Johnny", LastName: "Smithers", Email: "john@acme.com"},
	}

	opts := DefaultOptions()
	opts.RemoveDuplicates = true
	result, err := New(opts, nil).Run(context.Background(), records)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, result.Duplicates)
	assert.Equal(t, 1, result.Removed)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "John", result.Records[0].FirstName)
}

func TestRun_Parallel(t *testing.T) {
	records := make([]model.Record, 200)
	for i := range records {
		records[i] = model.Record{FirstName: "dr. john", Company: "Acme Group Inc"}
	}

	opts := DefaultOptions()
	opts.Parallelism = 8
	result, err := New(opts, nil).Run(context.Background(), records)
	require.NoError(t, err)

	require.Len(t, result.Records, 200)
	for i, rec := range result.Records {
		assert.Equal(t, i, rec.Index)
		assert.Equal(t, "John", rec.FirstName)
		assert.Equal(t, "Acme", rec.Company)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(DefaultOptions(), nil).Run(ctx, []model.Record{{FirstName: "a"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Empty(t *testing.T) {
	result, err := New(DefaultOptions(), nil).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Records)
	assert.Equal(t, 0, result.Summary.TotalRecords)
}

func TestGuardField_RecoversPanic(t *testing.T) {
	got := guardField(0, model.FieldFirstName, "original", func() string {
		panic("boom")
	})
	assert.Equal(t, "original", got)
}
