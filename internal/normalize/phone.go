package normalize

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Phone canonicalizes a phone-number field. When libphonenumber can parse
// and validate the value (first assuming the default region, then as an
// international number) the E.164 form is returned. Otherwise the stripped
// digit string is kept and judged by length alone. The second return value
// reports validity.
func Phone(raw, defaultRegion string) (string, bool) {
	stripped := stripPhone(raw)
	if stripped == "" || stripped == "+" {
		return "", false
	}

	if num, err := phonenumbers.Parse(stripped, defaultRegion); err == nil && phonenumbers.IsValidNumber(num) {
		return phonenumbers.Format(num, phonenumbers.E164), true
	}
	if strings.HasPrefix(stripped, "+") {
		if num, err := phonenumbers.Parse(stripped, ""); err == nil && phonenumbers.IsValidNumber(num) {
			return phonenumbers.Format(num, phonenumbers.E164), true
		}
	}

	// Library could not validate: fall back to a digit-count check.
	digits := strings.TrimPrefix(stripped, "+")
	return stripped, len(digits) >= 10
}

// stripPhone removes everything except digits and a single leading +.
func stripPhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i, r := range strings.TrimSpace(raw) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
