package normalize

import (
	"strings"

	"github.com/sells-group/listclean-cli/internal/model"
	"github.com/sells-group/listclean-cli/internal/repair"
)

// JobTitle repairs and title-cases a job-title field. Short all-caps tokens
// (VP, CEO, CTO) are kept as acronyms.
func JobTitle(raw string, stripEmoji bool) string {
	if model.IsAbsent(raw) {
		return ""
	}
	cleaned := repair.Text(raw, repair.Options{StripEmoji: stripEmoji})
	if cleaned == "" {
		return ""
	}

	words := strings.Fields(cleaned)
	for i, w := range words {
		if len(w) <= 4 && w == strings.ToUpper(w) && w != strings.ToLower(w) {
			continue
		}
		words[i] = title(w)
	}
	return strings.Join(words, " ")
}
