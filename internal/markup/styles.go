package markup

import (
	"regexp"
	"strings"
)

// DefaultStyle is used for text before the first style label.
const DefaultStyle = "Regular"

// StyledText is a run of text spoken with one speech style.
type StyledText struct {
	Style string
	Text  string
}

var styleRe = regexp.MustCompile(`\{([^{}]*)\}`)

var stripTagRe = regexp.MustCompile(`(?i)<(?:pitch|volume|velocity|silencio)\s+-?\d+(?:\.\d+)?\s*>`)

// ParseStyles splits annotated text into styled sections. A {Style} label
// switches the style for the text that follows it; whitespace-only sections
// are dropped.
func ParseStyles(text string) []StyledText {
	current := DefaultStyle
	last := 0

	var out []StyledText
	for _, loc := range styleRe.FindAllStringSubmatchIndex(text, -1) {
		if t := strings.TrimSpace(text[last:loc[0]]); t != "" {
			out = append(out, StyledText{Style: current, Text: t})
		}
		current = strings.TrimSpace(text[loc[2]:loc[3]])
		last = loc[1]
	}
	if t := strings.TrimSpace(text[last:]); t != "" {
		out = append(out, StyledText{Style: current, Text: t})
	}
	return out
}

// Strip removes markers, tags and style labels so the annotated source can be
// fed to the aligner as plain reference text. Line structure is preserved.
func Strip(text string) string {
	text = markerRe.ReplaceAllString(text, "")
	text = stripTagRe.ReplaceAllString(text, "")
	text = styleRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
