// Package repair fixes mis-decoded and over-decorated free text before any
// field-level normalization runs. The output is plain ASCII suitable for
// mail-merge templates.
package repair

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Options controls the optional repair steps.
type Options struct {
	// StripEmoji removes pictographic code points before the character
	// allowlist is applied.
	StripEmoji bool
	// KeepApostrophes preserves ' so that name-prefix rules (O'Brien)
	// can still see it. Off for company and generic text.
	KeepApostrophes bool
}

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// translit covers letters the NFD decomposition pass cannot reduce to ASCII.
var translit = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"æ", "ae", "Æ", "Ae",
	"œ", "oe", "Œ", "Oe",
	"ø", "o", "Ø", "O",
	"đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D",
	"þ", "th", "Þ", "Th",
	"ł", "l", "Ł", "L",
	"ı", "i", "İ", "I",
)

// mangled maps common UTF-8-as-Windows-1252 artifacts that survive the
// byte-level reinterpretation (mixed-encoding inputs).
var mangled = strings.NewReplacer(
	"â€™", "'", "â€˜", "'",
	"â€œ", "\"", "â€", "\"",
	"â€“", "-", "â€”", "-",
	"â€¦", "...",
	"Ã©", "é", "Ã¨", "è", "Ã¡", "á", "Ã ", "à",
	"Ã³", "ó", "Ã­", "í", "Ãº", "ú",
	"Ã¤", "ä", "Ã¶", "ö", "Ã¼", "ü",
	"Ã±", "ñ", "Ã§", "ç", "Ã¥", "å", "Ã¸", "ø",
	"Â", "",
)

var multiSpace = regexp.MustCompile(`\s{2,}`)

// Text runs the full repair chain: mojibake reinterpretation, artifact
// fixes, transliteration to ASCII, optional emoji removal, character
// allowlisting, and whitespace normalization. Idempotent; empty or absent
// input yields "".
func Text(s string, opts Options) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	s = demojibake(s)
	s = mangled.Replace(s)
	s = translit.Replace(s)
	if out, _, err := transform.String(stripAccents, s); err == nil {
		s = out
	}
	if opts.StripEmoji {
		s = stripEmoji(s)
	}
	s = allowlist(s, opts.KeepApostrophes)
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// demojibake reinterprets the string's runes as Latin-1 bytes and re-decodes
// them as UTF-8. This reverses the classic "Ã©" artifact produced when UTF-8
// bytes were read with a single-byte codec. Any rune above 0xFF, or an
// invalid re-decode, leaves the input unchanged.
func demojibake(s string) string {
	buf := make([]byte, 0, len(s))
	multibyte := false
	for _, r := range s {
		if r > 0xFF {
			return s
		}
		if r > 0x7F {
			multibyte = true
		}
		buf = append(buf, byte(r))
	}
	if !multibyte || !utf8.Valid(buf) {
		return s
	}
	return string(buf)
}

func stripEmoji(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isEmoji(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF: // pictographs, emoticons, symbols
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	case r == 0x200D || (r >= 0xFE00 && r <= 0xFE0F): // ZWJ, variation selectors
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
		return true
	}
	return unicode.Is(unicode.So, r)
}

func allowlist(s string, keepApostrophes bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		case r == '-' || r == '@' || r == '.':
			b.WriteRune(r)
		case r == '\'' && keepApostrophes:
			b.WriteRune(r)
		}
	}
	return b.String()
}
