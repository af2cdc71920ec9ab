// Package render produces Graphviz DOT documents from SPIR-V functions.
package render

import "strings"

// dotEscape escapes a string for use in DOT HTML labels.
func dotEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// dotQuote returns s as a DOT double-quoted string. Only backslash and the
// double quote are escaped; all other bytes, including non-ASCII text, are
// written unchanged.
func dotQuote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}
