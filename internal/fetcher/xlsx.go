package fetcher

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/listclean-cli/internal/model"
)

// ReadXLSX parses the first sheet of an XLSX contact export. The first row
// is the header.
func ReadXLSX(path string) ([]model.Record, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: open file")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("xlsx: no sheets")
	}
	sheet := f.Sheets[0]
	if len(sheet.Rows) == 0 {
		return nil, eris.New("xlsx: empty sheet")
	}

	header := rowToStrings(sheet.Rows[0])
	cm, err := MapColumns(header)
	if err != nil {
		return nil, err
	}

	var records []model.Record
	for _, row := range sheet.Rows[1:] {
		records = append(records, cm.Record(rowToStrings(row)))
	}
	return records, nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}
