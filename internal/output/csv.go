// Package output writes cleaned datasets as CSV, XLSX, or JSON.
package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/sells-group/listclean-cli/internal/model"
)

// Header returns the output column headers, optionally including the
// quality-score column.
func Header(withScore bool) []string {
	var h []string
	for _, f := range model.Fields() {
		h = append(h, f.String())
	}
	if withScore {
		h = append(h, "Quality Score")
	}
	return h
}

// WriteCSV writes cleaned records as UTF-8 CSV.
func WriteCSV(w io.Writer, records []model.CleanedRecord, withScore bool) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header(withScore)); err != nil {
		return eris.Wrap(err, "output: write csv header")
	}

	for _, rec := range records {
		row := make([]string, 0, model.FieldCount+1)
		for _, f := range model.Fields() {
			row = append(row, rec.Get(f))
		}
		if withScore {
			row = append(row, strconv.Itoa(rec.QualityScore))
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "output: write csv row")
		}
	}

	cw.Flush()
	return eris.Wrap(cw.Error(), "output: flush csv")
}
