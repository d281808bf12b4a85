package text

import (
	"strings"
	"unicode"
)

// Normalize lower-cases the input, drops every character outside
// [a-z0-9] and whitespace, and collapses whitespace runs into single
// spaces. This is the canonical preprocessing applied to every title and
// description, at training time and at inference time alike: the trained
// vocabulary is only valid against text that went through this exact
// transformation, so any change here invalidates all persisted models.
func Normalize(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize normalizes the input and splits it on whitespace.
func Tokenize(s string) []string {
	return strings.Fields(Normalize(s))
}

// Combine joins a title and an optional description into the single text
// that gets vectorized.
func Combine(title, description string) string {
	if description == "" {
		return title
	}
	return title + " " + description
}
