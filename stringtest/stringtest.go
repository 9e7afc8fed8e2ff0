// Package stringtest builds multi-line test inputs and expected outputs with
// explicit line endings.
package stringtest

import "strings"

// Lines terminates each of ss with LF and concatenates them.
//
// Example:
//
//	in := stringtest.Lines(
//		"// <JSON>",
//		`{"title": {"labels": ["Labels"]}}`,
//		"// </JSON>",
//	) // -> "// <JSON>\n{...}\n// </JSON>\n"
func Lines(ss ...string) string {
	var sb strings.Builder
	for _, s := range ss {
		sb.WriteString(s)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// CRLF converts the LF line endings of s to CRLF. Existing CRLF endings are
// kept as they are.
func CRLF(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	return strings.ReplaceAll(s, "\n", "\r\n")
}
