package render

import "strings"

// Replacement happens in a single pass, so the entities it emits are never
// escaped a second time.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape makes s safe to embed as XML character data or as an attribute value.
// Invalid UTF-8 becomes U+FFFD and characters XML 1.0 cannot carry are dropped.
func Escape(s string) string {
	return escaper.Replace(validXML(s))
}

func validXML(s string) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	return strings.Map(func(r rune) rune {
		if isForbidden(r) {
			return -1
		}
		return r
	}, s)
}

// isForbidden reports whether r falls outside the XML 1.0 Char production.
func isForbidden(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return false
	case r < 0x20:
		return true
	case r >= 0xD800 && r <= 0xDFFF:
		return true
	case r == 0xFFFE || r == 0xFFFF:
		return true
	}
	return r > 0x10FFFF
}
