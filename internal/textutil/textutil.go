// Package textutil provides case-insensitive comparison helpers for
// human-entered text. All functions are pure.
package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// fold normalizes a string with Unicode case folding so that strings
// differing only in letter case, including non-ASCII letters, compare equal.
func fold(s string) string {
	return cases.Fold().String(s)
}

// EqualFold reports whether a and b are equal under Unicode case folding.
func EqualFold(a, b string) bool {
	return fold(a) == fold(b)
}

// ContainsFold reports whether needle occurs as a case-insensitive substring
// of haystack. An empty needle matches everything.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(fold(haystack), fold(needle))
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Capitalize upper-cases the first rune and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
