package parser

import "strings"

// Sanitize turns an arbitrary class name into a C# type identifier.
//
// Runes other than ASCII letters, digits, '_' and '.' are dropped, dots become
// underscores, and a leading '_' is added when the result would otherwise start
// with a digit. An empty result means the name had nothing usable in it.
func Sanitize(name string) string {
	var sb strings.Builder
	sb.Grow(len(name) + 1)

	for _, r := range name {
		switch {
		case r == '.':
			sb.WriteByte('_')
		case r == '_' || isASCIILetter(r) || isASCIIDigit(r):
			sb.WriteRune(r)
		}
	}

	out := sb.String()
	if out == "" {
		return ""
	}
	if first := rune(out[0]); !isASCIILetter(first) && first != '_' {
		out = "_" + out
	}
	return out
}

// IsIdentifier reports whether s is already a valid sanitized identifier.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !isASCIILetter(r) && r != '_' {
			return false
		}
		if !isASCIILetter(r) && !isASCIIDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
