// Package ident normalizes user-supplied names into identifier form for
// action names and other configuration keys.
package ident

import "strings"

// Sanitize normalizes a raw name into identifier form. Surrounding
// whitespace is trimmed, every rune outside [A-Za-z0-9_] becomes an
// underscore, and a leading digit gains an underscore prefix. A blank or
// whitespace-only input yields the empty string.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s) + 1)
	for i, r := range s {
		if i == 0 && isDigit(r) {
			b.WriteByte('_')
		}
		if isIdentRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// IsValid reports whether s is a non-empty name already in sanitized form.
func IsValid(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && isDigit(r) {
			return false
		}
		if !isIdentRune(r) {
			return false
		}
	}
	return true
}

func isIdentRune(r rune) bool {
	return r == '_' || isDigit(r) ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
