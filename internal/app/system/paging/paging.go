// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// VisitsPageSize is the number of rows per page on the visits list.
const VisitsPageSize = 15

// ParsePage extracts the human-friendly "page" query parameter (1-based).
// Returns 1 if not present or invalid.
func ParsePage(r *http.Request) int {
	s := query.Get(r, "page")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// PageCount returns the number of pages needed for total items, minimum 1
// so the pager always has something to render.
func PageCount(total, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	n := (total + pageSize - 1) / pageSize
	if n < 1 {
		n = 1
	}
	return n
}

// Slice returns the rows for a 1-based page. A page past the end yields an
// empty slice rather than clamping back to the last page.
func Slice[T any](rows []T, page, pageSize int) []T {
	if page < 1 || pageSize <= 0 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(rows) {
		return nil
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// Range holds computed display range values for a paginated list.
type Range struct {
	Start int // 1-based start index (0 if no results)
	End   int // 1-based end index (0 if no results)
}

// ComputeRange calculates the "showing X–Y of Z" values for a page.
func ComputeRange(page, shown, pageSize int) Range {
	if shown == 0 {
		return Range{}
	}
	start := (page-1)*pageSize + 1
	return Range{Start: start, End: start + shown - 1}
}
