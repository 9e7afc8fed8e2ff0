package scan

import (
	"regexp"
	"strings"
)

// candidatePattern matches a word immediately followed by spaces and a colon.
var candidatePattern = regexp.MustCompile(`\b([a-zA-Z0-9]+) *:`)

// ExtractBraced returns the concatenation of every {...} region in text,
// braces included. Nesting is tracked with a depth counter; an unclosed "{"
// captures the rest of text, and a "}" outside any region is dropped.
func ExtractBraced(text string) string {
	var (
		sb    strings.Builder
		depth int
	)

	for i := range len(text) {
		c := text[i]
		if c == '{' {
			depth++
		}

		if depth >= 1 {
			sb.WriteByte(c)
		}

		if c == '}' && depth > 0 {
			depth--
		}
	}

	return sb.String()
}

// Candidates returns every word followed by a colon in text, in order of
// occurrence. Duplicates are kept.
func Candidates(text string) []string {
	matches := candidatePattern.FindAllStringSubmatch(text, -1)

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}

	return names
}
