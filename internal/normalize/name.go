// Package normalize derives canonical, mail-merge-ready values for person
// names, company names, and phone numbers.
package normalize

import (
	"strings"

	"github.com/sells-group/listclean-cli/internal/model"
	"github.com/sells-group/listclean-cli/internal/repair"
)

// defaultHonorifics are titles dropped from the front of a first-name field
// when at least one other token remains.
var defaultHonorifics = []string{"dr", "dr.", "prof", "prof.", "sir", "mr", "mrs", "ms", "mx", "hon"}

// Namer normalizes first- and last-name fields. Vocabularies are injected
// at construction so tests can use custom sets.
type Namer struct {
	honorifics map[string]bool
	repairOpts repair.Options
}

// NewNamer builds a Namer with the default honorific set.
func NewNamer(stripEmoji bool) *Namer {
	return NewNamerWith(defaultHonorifics, stripEmoji)
}

// NewNamerWith builds a Namer with a custom honorific set.
func NewNamerWith(honorifics []string, stripEmoji bool) *Namer {
	set := make(map[string]bool, len(honorifics))
	for _, h := range honorifics {
		set[strings.ToLower(h)] = true
	}
	return &Namer{
		honorifics: set,
		repairOpts: repair.Options{StripEmoji: stripEmoji, KeepApostrophes: true},
	}
}

// First returns the canonical first name: repaired, honorific-stripped,
// first token title-cased with the O' prefix preserved.
func (n *Namer) First(raw string) string {
	tokens := n.tokens(raw)
	if len(tokens) == 0 {
		return ""
	}
	if len(tokens) > 1 && n.honorifics[strings.ToLower(tokens[0])] {
		tokens = tokens[1:]
	}
	return capFirst(tokens[0])
}

// Last returns the canonical last name. Every token is processed, not just
// the final one: some exports put multi-word surnames in a single field and
// a single-token policy would lose the rest.
func (n *Namer) Last(raw string) string {
	tokens := n.tokens(raw)
	if len(tokens) == 0 {
		return ""
	}
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = capToken(tok)
	}
	return strings.Join(out, " ")
}

func (n *Namer) tokens(raw string) []string {
	if model.IsAbsent(raw) {
		return nil
	}
	return strings.Fields(repair.Text(raw, n.repairOpts))
}

// capFirst title-cases a first-name token. Only the O' prefix convention
// applies to first names; Mc is a surname rule.
func capFirst(tok string) string {
	if tok == "" {
		return ""
	}
	r := []rune(tok)
	if len(r) == 1 {
		return strings.ToUpper(tok)
	}
	if strings.HasPrefix(strings.ToLower(tok), "o'") && len(r) > 2 {
		return "O'" + title(string(r[2:]))
	}
	return title(tok)
}

// capToken title-cases one last-name token, honoring the Mc and O' prefix
// conventions. Single characters are uppercased and otherwise preserved.
func capToken(tok string) string {
	if tok == "" {
		return ""
	}
	r := []rune(tok)
	if len(r) == 1 {
		return strings.ToUpper(tok)
	}

	lower := strings.ToLower(tok)
	switch {
	case strings.HasPrefix(lower, "o'") && len(r) > 2:
		return "O'" + title(string(r[2:]))
	case strings.HasPrefix(lower, "mc") && len(r) > 2:
		return "Mc" + title(string(r[2:]))
	}
	return title(tok)
}

// title upper-cases the first letter and lower-cases the rest.
func title(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(strings.ToLower(s))
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
