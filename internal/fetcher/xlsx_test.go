package fetcher

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func writeSheet(t *testing.T, rows [][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Contacts")
	require.NoError(t, err)
	for _, row := range rows {
		r := sheet.AddRow()
		for _, cell := range row {
			r.AddCell().Value = cell
		}
	}
	path := filepath.Join(t.TempDir(), "contacts.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestReadXLSX(t *testing.T) {
	path := writeSheet(t, [][]string{
		{"First Name", "Surname", "Company Name", "Email"},
		{"john", "smith", "Acme Inc", "john@acme.com"},
		{"jane", "doe", "Beta Ltd", "jane@beta.com"},
	})

	records, err := ReadXLSX(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "john", records[0].FirstName)
	assert.Equal(t, "smith", records[0].LastName)
	assert.Equal(t, "Acme Inc", records[0].Company)
	assert.Equal(t, "jane@beta.com", records[1].Email)
}

func TestReadXLSX_MissingFile(t *testing.T) {
	_, err := ReadXLSX(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}

func TestReadXLSX_UnrecognizedHeader(t *testing.T) {
	path := writeSheet(t, [][]string{{"a", "b"}, {"1", "2"}})
	_, err := ReadXLSX(path)
	assert.Error(t, err)
}
