package normalize

import (
	"regexp"
	"strings"

	"github.com/sells-group/listclean-cli/internal/model"
	"github.com/sells-group/listclean-cli/internal/repair"
)

// defaultSuffixes are legal-entity words removed from company names as
// whole words, case-insensitively and in any position.
var defaultSuffixes = []string{
	"ltd", "inc", "group", "brands", "company", "companies",
	"international", "incorporation", "corporation",
}

// taglineBoundary splits "Acme - A Subsidiary" style values; only the
// portion before the first boundary is kept.
var taglineBoundary = regexp.MustCompile(`\s-\s|:|\x{2013}`)

var companyStrip = regexp.MustCompile(`[^A-Za-z0-9\s\-]`)

// Companyer normalizes company-name fields against an injected suffix
// vocabulary and an optional canonical directory.
type Companyer struct {
	suffixRe   *regexp.Regexp
	directory  map[string]string
	splitTag   bool
	repairOpts repair.Options
}

// NewCompanyer builds a Companyer with the default suffix vocabulary.
// directory maps lowercased, trimmed raw values to canonical display
// strings; a hit bypasses every other rule. May be nil.
func NewCompanyer(directory map[string]string, splitTaglines, stripEmoji bool) *Companyer {
	return NewCompanyerWith(defaultSuffixes, directory, splitTaglines, stripEmoji)
}

// NewCompanyerWith builds a Companyer with a custom suffix vocabulary.
func NewCompanyerWith(suffixes []string, directory map[string]string, splitTaglines, stripEmoji bool) *Companyer {
	escaped := make([]string, len(suffixes))
	for i, s := range suffixes {
		escaped[i] = regexp.QuoteMeta(s)
	}

	// Canonical values become fixed points: without the self-mapping a
	// second pass would run the suffix rules over a directory result
	// ("IBM Corporation" -> "IBM").
	lookup := make(map[string]string, 2*len(directory))
	for k, v := range directory {
		lookup[strings.ToLower(strings.TrimSpace(k))] = v
	}
	for _, v := range directory {
		key := strings.ToLower(strings.TrimSpace(v))
		if _, ok := lookup[key]; !ok {
			lookup[key] = v
		}
	}

	return &Companyer{
		suffixRe:   regexp.MustCompile(`(?i)\b(?:` + strings.Join(escaped, "|") + `)\b`),
		directory:  lookup,
		splitTag:   splitTaglines,
		repairOpts: repair.Options{StripEmoji: stripEmoji},
	}
}

// Company returns the canonical company name. Absent sentinels yield "".
func (c *Companyer) Company(raw string) string {
	trimmed := model.Presentf(raw)
	if trimmed == "" {
		return ""
	}

	if canonical, ok := c.directory[strings.ToLower(trimmed)]; ok {
		return canonical
	}

	name := trimmed
	if c.splitTag {
		if loc := taglineBoundary.FindStringIndex(name); loc != nil {
			name = name[:loc[0]]
		}
	}

	name = repair.Text(name, c.repairOpts)
	name = c.suffixRe.ReplaceAllString(name, "")
	name = companyStrip.ReplaceAllString(name, "")
	name = multiSpace.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	// Short results are treated as acronyms.
	if len(name) <= 3 {
		return strings.ToUpper(name)
	}
	return titleWords(name)
}

var multiSpace = regexp.MustCompile(`\s{2,}`)

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = title(w)
	}
	return strings.Join(words, " ")
}
