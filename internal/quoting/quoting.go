// Package quoting provides SQL string-literal escaping for generated SQL.
package quoting

import "strings"

// EscapeString escapes a string for embedding in a single-quoted SQL
// literal by doubling single quotes. Generated SQL here only ever targets
// the bundled read-only practice dataset; user queries run verbatim.
func EscapeString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// Literal wraps s in single quotes after escaping.
func Literal(s string) string {
	return "'" + EscapeString(s) + "'"
}
