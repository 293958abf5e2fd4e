package fetcher

import (
	"encoding/csv"
	"io"

	"github.com/rotisserie/eris"

	"github.com/sells-group/listclean-cli/internal/model"
)

// ReadCSV parses a contact CSV export. The first row is the header. Byte
// decoding is deliberately tolerant: mis-decoded characters are absorbed by
// the repair pass downstream rather than failing the read here.
func ReadCSV(r io.Reader) ([]model.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable fields
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, eris.New("csv: empty input")
	}
	if err != nil {
		return nil, eris.Wrap(err, "csv: read header")
	}
	header = stripBOM(header)

	cm, err := MapColumns(header)
	if err != nil {
		return nil, err
	}

	var records []model.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "csv: read row")
		}
		records = append(records, cm.Record(row))
	}
	return records, nil
}

// stripBOM drops a UTF-8 byte-order mark from the first header cell;
// Excel-produced CSVs carry one.
func stripBOM(header []string) []string {
	if len(header) > 0 && len(header[0]) >= 3 && header[0][:3] == "\xef\xbb\xbf" {
		header[0] = header[0][3:]
	}
	return header
}
