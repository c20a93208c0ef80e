// Package capitalize implements the single-line name transform: trim, drop
// blanks, then uppercase the first character and lowercase the rest.
package capitalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize returns s with its first character title-cased and every
// following character lowercased.
//
//	smith      = Smith
//	JOHN SMITH = John smith
//	o'BRIEN    = O'brien
//
// Casing uses the default Unicode mappings with no locale tailoring. The
// whole string is lowercased in one pass so context-sensitive mappings such
// as Final_Sigma see the first character. A leading byte that is not valid
// UTF-8 is copied through unchanged, like invalid bytes elsewhere.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError && size == 1 {
		return s[:1] + cases.Lower(language.Und).String(s[1:])
	}
	// cases.Caser is stateful, one per call.
	lowered := cases.Lower(language.Und).String(s)
	head := cases.Lower(language.Und).String(s[:size])
	rest, ok := strings.CutPrefix(lowered, head)
	if !ok {
		rest = cases.Lower(language.Und).String(s[size:])
	}
	return cases.Title(language.Und, cases.NoLower).String(string(first)) + rest
}

// NormalizeLine trims surrounding whitespace from line and capitalizes what
// remains. It reports false when nothing is left, meaning the line must be
// dropped.
func NormalizeLine(line string) (string, bool) {
	trimmed := strings.TrimFunc(line, isTrimSpace)
	if trimmed == "" {
		return "", false
	}
	return Capitalize(trimmed), true
}

// isTrimSpace is unicode.IsSpace plus the information separators U+001C to
// U+001F, which line-oriented text tools also strip.
func isTrimSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
