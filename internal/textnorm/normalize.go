// Package textnorm prepares resume text for vectorization.
package textnorm

import (
	"strings"
	"unicode"
)

// Normalize lowercases s, drops every rune that is neither an ASCII letter
// nor whitespace, and collapses whitespace runs into single spaces.
// The result never has leading or trailing spaces.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	kept := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case unicode.IsSpace(r):
			return ' '
		default:
			return -1
		}
	}, strings.ToLower(s))

	return strings.Join(strings.Fields(kept), " ")
}

// Tokens returns the space separated tokens of an already normalized string.
func Tokens(normalized string) []string {
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}
