package ics

import (
	"strings"
)

// RFC 5545 §3.3.11 TEXT escaping. Applied at serialization time only, never
// persisted, so values cannot be double-escaped.
var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\r\n", `\n`,
	"\n", `\n`,
	";", `\;`,
	",", `\,`,
)

// Escape encodes a TEXT property value.
func Escape(s string) string {
	return textEscaper.Replace(s)
}

// Unescape is the inverse of Escape. Unknown escape sequences keep the
// escaped character as-is.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i == len(s)-1 {
			b.WriteByte(s[i])
			continue
		}

		i++
		switch s[i] {
		case 'n', 'N':
			b.WriteByte('\n')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
