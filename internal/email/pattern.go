package email

import (
	"strings"

	"github.com/sells-group/listclean-cli/internal/model"
)

// DetectPattern classifies the local part of an address against the known
// naming conventions. Candidate forms are evaluated in a fixed order and
// the first exact match wins.
func DetectPattern(addr, first, last string) model.PatternID {
	local := LocalPart(strings.TrimSpace(addr))
	if local == "" {
		return model.PatternUnknown
	}

	f := letters(first)
	l := letters(last)

	type candidate struct {
		form string
		id   model.PatternID
	}
	var candidates []candidate
	if f != "" && l != "" {
		fi := f[:1]
		candidates = append(candidates,
			candidate{f + "." + l, model.PatternFirstDotLast},
			candidate{f + "_" + l, model.PatternFirstUnderLast},
			candidate{f + "-" + l, model.PatternFirstDashLast},
			candidate{f + l, model.PatternFirstLast},
			candidate{fi + "." + l, model.PatternInitialDotLast},
			candidate{fi + l, model.PatternInitialLast},
			candidate{l + "." + f, model.PatternLastDotFirst},
			candidate{l + "_" + f, model.PatternLastUnderFirst},
		)
	}
	if f != "" {
		candidates = append(candidates, candidate{f, model.PatternFirstOnly})
	}
	if l != "" {
		candidates = append(candidates, candidate{l, model.PatternLastOnly})
	}

	for _, c := range candidates {
		if local == c.form {
			return c.id
		}
	}

	if strings.ContainsAny(local, "0123456789") {
		return model.PatternWithNumbers
	}
	return model.PatternOther
}

// Analyze groups records by company and assigns each company with at least
// two valid emails its dominant local-part convention, provided the mode
// covers at least half of the valid addresses. Companies below the
// threshold are absent from the returned map.
func Analyze(records []model.CleanedRecord, v *Validator) map[string]model.CompanyEmailPattern {
	type tally struct {
		counts map[model.PatternID]int
		order  []model.PatternID // first-encountered order for tie-breaking
		total  int
	}
	byCompany := make(map[string]*tally)

	for _, rec := range records {
		if rec.Company == "" {
			continue
		}
		if !v.Validate(rec.Email).IsValid {
			continue
		}
		t, ok := byCompany[rec.Company]
		if !ok {
			t = &tally{counts: make(map[model.PatternID]int)}
			byCompany[rec.Company] = t
		}
		p := DetectPattern(rec.Email, rec.FirstName, rec.LastName)
		if _, seen := t.counts[p]; !seen {
			t.order = append(t.order, p)
		}
		t.counts[p]++
		t.total++
	}

	patterns := make(map[string]model.CompanyEmailPattern)
	for company, t := range byCompany {
		if t.total < 2 {
			continue
		}
		var mode model.PatternID
		best := 0
		for _, p := range t.order {
			if t.counts[p] > best {
				best = t.counts[p]
				mode = p
			}
		}
		coverage := float64(best) / float64(t.total)
		if coverage < 0.5 {
			continue
		}
		patterns[company] = model.CompanyEmailPattern{
			Pattern:       mode,
			MatchingCount: best,
			TotalValid:    t.total,
			CoverageRatio: coverage,
		}
	}
	return patterns
}

// Matches reports whether a record's email follows its company's assigned
// pattern; not-applicable when the company has none.
func Matches(addr, first, last, company string, patterns map[string]model.CompanyEmailPattern) model.PatternMatch {
	assigned, ok := patterns[company]
	if !ok {
		return model.PatternMatchNotApplicable
	}
	if DetectPattern(addr, first, last) == assigned.Pattern {
		return model.PatternMatchYes
	}
	return model.PatternMatchNo
}

// letters lowercases and keeps only ASCII letters, so that O'Brien
// compares as obrien.
func letters(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
