// Package fetcher parses tabular contact exports (CSV, XLSX) into records.
// Column headers are normalized and mapped onto the known contact fields;
// absent columns read as all-empty.
package fetcher

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/listclean-cli/internal/model"
)

// headerAliases maps normalized export headers (Cognism, LinkedIn, generic
// CRM dumps) onto canonical field headers.
var headerAliases = map[string]string{
	"Company Name":  "Company",
	"Organisation":  "Company",
	"Organization":  "Company",
	"Account Name":  "Company",
	"Email Address": "Email",
	"E-Mail":        "Email",
	"Work Email":    "Email",
	"Phone Number":  "Phone",
	"Mobile":        "Phone",
	"Mobile Number": "Phone",
	"Direct Dial":   "Phone",
	"Title":         "Job Title",
	"Position":      "Job Title",
	"Given Name":    "First Name",
	"Forename":      "First Name",
	"Surname":       "Last Name",
	"Family Name":   "Last Name",
}

// NormalizeHeader trims a header cell, replaces underscores with spaces,
// title-cases it, and resolves known aliases.
func NormalizeHeader(h string) string {
	h = strings.TrimSpace(h)
	h = strings.ReplaceAll(h, "_", " ")
	words := strings.Fields(h)
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
	}
	h = strings.Join(words, " ")
	if canonical, ok := headerAliases[h]; ok {
		return canonical
	}
	return h
}

// ColumnMap locates each contact field's column index in a header row;
// -1 marks an absent column.
type ColumnMap [model.FieldCount]int

// MapColumns resolves a header row. It errors only when none of the
// contact fields can be located: a whole-run schema failure, not a
// per-record one.
func MapColumns(header []string) (ColumnMap, error) {
	var cm ColumnMap
	for i := range cm {
		cm[i] = -1
	}

	for col, h := range header {
		normalized := NormalizeHeader(h)
		for _, f := range model.Fields() {
			if normalized == f.String() && cm[f] == -1 {
				cm[f] = col
			}
		}
	}

	found := 0
	for _, idx := range cm {
		if idx >= 0 {
			found++
		}
	}
	if found == 0 {
		return cm, eris.Errorf("fetcher: no recognized contact columns in header %v", header)
	}
	return cm, nil
}

// Record builds a Record from a raw row using the column map. Short rows
// read as empty for the missing cells.
func (cm ColumnMap) Record(row []string) model.Record {
	var rec model.Record
	for _, f := range model.Fields() {
		idx := cm[f]
		if idx < 0 || idx >= len(row) {
			continue
		}
		rec.Set(f, row[idx])
	}
	return rec
}
