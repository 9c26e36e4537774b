// internal/app/system/search/search.go
package search

import "strings"

// Match reports whether the query matches any of the candidate fields.
// The query is trimmed and compared case-insensitively as a substring;
// a blank query matches everything.
func Match(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Filter returns the rows whose fields match the query. fields extracts the
// searchable text from a row. A blank query returns the input unchanged.
func Filter[T any](rows []T, query string, fields func(T) []string) []T {
	if strings.TrimSpace(query) == "" {
		return rows
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if Match(query, fields(row)...) {
			out = append(out, row)
		}
	}
	return out
}
