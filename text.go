package browseruse

import (
	"regexp"
	"strings"
)

var excessBlankLines = regexp.MustCompile(`\n{3,}`)

// NormalizeMarkdown collapses runs of three or more newlines to a single
// blank line and trims leading and trailing whitespace.
func NormalizeMarkdown(s string) string {
	return strings.TrimSpace(excessBlankLines.ReplaceAllString(s, "\n\n"))
}

// TruncateText shortens s to at most max characters, replacing the tail
// with "..." when it does not fit. Lengths are measured in runes so
// multibyte text never splits mid-character.
func TruncateText(s string, max int) string {
	if max <= 3 {
		max = 3
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
