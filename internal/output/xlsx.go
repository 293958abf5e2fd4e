package output

import (
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/listclean-cli/internal/model"
)

// WriteXLSX writes cleaned records to an XLSX file. Cells whose value was
// altered by cleaning get a highlight fill so reviewers can spot changes.
func WriteXLSX(path string, records []model.CleanedRecord, withScore bool) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Cleaned")
	if err != nil {
		return eris.Wrap(err, "output: add sheet")
	}

	headerRow := sheet.AddRow()
	for _, h := range Header(withScore) {
		headerRow.AddCell().Value = h
	}

	highlight := xlsx.NewStyle()
	highlight.Fill = *xlsx.NewFill("solid", "FFFFEB9C", "FFFFEB9C")
	highlight.ApplyFill = true

	for _, rec := range records {
		row := sheet.AddRow()
		for _, fld := range model.Fields() {
			cell := row.AddCell()
			cell.Value = rec.Get(fld)
			if rec.Changed[fld] {
				cell.SetStyle(highlight)
			}
		}
		if withScore {
			row.AddCell().Value = strconv.Itoa(rec.QualityScore)
		}
	}

	return eris.Wrap(f.Save(path), "output: save xlsx")
}
