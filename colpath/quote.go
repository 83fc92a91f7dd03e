package colpath

import (
	"fmt"
	"strings"
)

// quoteField reports whether a field name cannot appear bare in a
// path.
func quoteField(f string) bool {
	if f == "" {
		return true
	}
	return strings.ContainsAny(f, ".[]'\"\\ \t\n")
}

// quote renders a field name in single quotes, switching to double
// quotes when the name contains single quotes but no double quotes.
func quote(f string) string {
	q := byte('\'')
	if strings.ContainsRune(f, '\'') && !strings.ContainsRune(f, '"') {
		q = '"'
	}
	var b strings.Builder
	b.WriteByte(q)
	for i := 0; i < len(f); i++ {
		switch c := f[i]; c {
		case q, '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(q)
	return b.String()
}

// readQuoted reads the quoted field name opening s, returning the
// unquoted name and the remainder of s after the closing quote.
func readQuoted(s string) (string, string, error) {
	q := s[0]
	var b strings.Builder
	i := 1
	for i < len(s) {
		c := s[i]
		switch c {
		case '\\':
			if i+1 >= len(s) {
				return "", "", fmt.Errorf("trailing backslash")
			}
			i++
			switch s[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\\', '\'', '"':
				b.WriteByte(s[i])
			default:
				return "", "", fmt.Errorf("invalid escape %q", s[i:i+1])
			}
			i++
		case q:
			return b.String(), s[i+1:], nil
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", "", fmt.Errorf("unterminated quote")
}
