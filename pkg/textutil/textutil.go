package textutil

import (
	"strings"
	"unicode"
)

// Tokenize splits text into maximal runs of non-whitespace characters, plus an
// explicit "\n" token for every newline, in source order.
func Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range text {
		switch {
		case r == '\n':
			flush()
			tokens = append(tokens, "\n")
		case unicode.IsSpace(r):
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return tokens
}

// Normalize lowercases a token and strips every character that is not a letter
// or a digit. Accented letters are kept. Pure punctuation normalizes to "".
func Normalize(token string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(token) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
