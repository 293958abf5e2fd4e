package output

import (
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"

	"github.com/sells-group/listclean-cli/internal/clean"
)

// Report is the JSON output document: records plus run statistics and the
// detected per-company patterns.
type Report struct {
	Summary    clean.Summary `json:"summary"`
	Records    any           `json:"records"`
	Duplicates []int         `json:"duplicates,omitempty"`
	Patterns   any           `json:"patterns,omitempty"`
}

// WriteJSON writes the cleaning result as an indented JSON report.
func WriteJSON(w io.Writer, result *clean.Result) error {
	report := Report{
		Summary:    result.Summary,
		Records:    result.Records,
		Duplicates: result.Duplicates,
	}
	if len(result.Patterns) > 0 {
		report.Patterns = result.Patterns
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return eris.Wrap(enc.Encode(report), "output: encode json")
}
