package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Underscore converts an identifier to snake_case.
//
// Word boundaries are inserted between a lowercase letter or digit and a
// following uppercase letter, and before the last capital of an uppercase run
// that is followed by a lowercase letter. Hyphens become underscores, "::"
// becomes "/", and the result is lowercased.
//
// Example: "GridData" -> "grid_data"
// Example: "APIClient" -> "api_client"
// Example: "Sheet1Data" -> "sheet1_data"
//
// Strings without ASCII capitals, hyphens or "::" are returned unchanged, so
// Underscore(Underscore(s)) == Underscore(s).
func Underscore(s string) string {
	if !needsUnderscore(s) {
		return s
	}

	s = strings.ReplaceAll(s, "::", "/")

	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if i > 0 && isUpper(c) && wordBoundary(s, i) {
			b.WriteByte('_')
		}
		if c == '-' {
			c = '_'
		}
		b.WriteByte(c)
	}

	// Caser values are stateful, so one is made per call.
	return cases.Lower(language.Und).String(b.String())
}

func needsUnderscore(s string) bool {
	if strings.Contains(s, "::") {
		return true
	}
	for i := 0; i < len(s); i++ {
		if isUpper(s[i]) || s[i] == '-' {
			return true
		}
	}
	return false
}

// wordBoundary reports whether an underscore belongs before the capital at s[i].
func wordBoundary(s string, i int) bool {
	prev := s[i-1]
	if isLower(prev) || isDigit(prev) {
		return true
	}
	// "HTMLParser": the run "HTML" ends before the "P" that starts "Parser".
	return isUpper(prev) && i+1 < len(s) && isLower(s[i+1])
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
