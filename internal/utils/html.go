package utils

import "strings"

// htmlEscaper replaces the five characters with special meaning in HTML.
// All replacements happen in a single pass over the input; replacement
// output is never rescanned.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML returns s with &, <, >, " and ' replaced by their HTML
// entities, making the result safe to interpolate into HTML text or
// attribute values.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
