package paging

import (
	"net/http/httptest"
	"testing"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		url  string
		want int
	}{
		{"/visits", 1},
		{"/visits?page=3", 3},
		{"/visits?page=0", 1},
		{"/visits?page=-2", 1},
		{"/visits?page=abc", 1},
	}
	for _, tt := range tests {
		r := httptest.NewRequest("GET", tt.url, nil)
		if got := ParsePage(r); got != tt.want {
			t.Errorf("ParsePage(%q) = %d, want %d", tt.url, got, tt.want)
		}
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 15, 1},
		{1, 15, 1},
		{15, 15, 1},
		{16, 15, 2},
		{45, 15, 3},
		{46, 15, 4},
	}
	for _, tt := range tests {
		if got := PageCount(tt.total, tt.size); got != tt.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.want)
		}
	}
}

func TestSlice(t *testing.T) {
	rows := make([]int, 20)
	for i := range rows {
		rows[i] = i
	}

	first := Slice(rows, 1, 15)
	if len(first) != 15 || first[0] != 0 || first[14] != 14 {
		t.Errorf("page 1 = %v", first)
	}

	second := Slice(rows, 2, 15)
	if len(second) != 5 || second[0] != 15 {
		t.Errorf("page 2 = %v", second)
	}

	// Past the end is empty, not the last page.
	if out := Slice(rows, 3, 15); len(out) != 0 {
		t.Errorf("page 3 = %v, want empty", out)
	}
	if out := Slice([]int{}, 1, 15); len(out) != 0 {
		t.Errorf("empty rows page 1 = %v, want empty", out)
	}
}

func TestComputeRange(t *testing.T) {
	if r := ComputeRange(2, 5, 15); r.Start != 16 || r.End != 20 {
		t.Errorf("got %+v, want 16-20", r)
	}
	if r := ComputeRange(1, 0, 15); r.Start != 0 || r.End != 0 {
		t.Errorf("got %+v, want zero range", r)
	}
}
