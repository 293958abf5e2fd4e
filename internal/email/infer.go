package email

import (
	"regexp"
	"strings"
)

// InferLast reconstructs a missing last name from the local part of an
// address. The first-name prefix match takes precedence over the
// first-initial form; anything else returns no inference rather than a
// guess. The caller applies name-prefix capitalization afterwards.
func InferLast(first, addr string) (string, bool) {
	first = strings.ToLower(strings.TrimSpace(first))
	local := LocalPart(strings.TrimSpace(addr))
	if first == "" || local == "" {
		return "", false
	}

	// john.smith, john_smith, john-smith, johnsmith
	re, err := regexp.Compile(`^` + regexp.QuoteMeta(first) + `[._\-]?([a-z]+)`)
	if err == nil {
		if m := re.FindStringSubmatch(local); m != nil {
			return titleCase(m[1]), true
		}
	}

	// jsmith
	if strings.HasPrefix(local, first[:1]) {
		rest := strings.TrimLeft(local[1:], "._-")
		rest = letterPrefix(rest)
		if rest != "" {
			return titleCase(rest), true
		}
	}

	return "", false
}

// letterPrefix returns the leading run of ASCII letters.
func letterPrefix(s string) string {
	for i, r := range s {
		if r < 'a' || r > 'z' {
			return s[:i]
		}
	}
	return s
}

func titleCase(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
