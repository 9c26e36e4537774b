package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/dspcoder123/admin-panel/internal/app/system/htmlsanitize"
)

func TestStripTags_Empty(t *testing.T) {
	if got := htmlsanitize.StripTags(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestStripTags_PlainText(t *testing.T) {
	if got := htmlsanitize.StripTags("Hello, World!"); got != "Hello, World!" {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestStripTags_RemovesMarkup(t *testing.T) {
	input := "<p><strong>Bold</strong> and <em>italic</em></p>"
	got := htmlsanitize.StripTags(input)
	if strings.Contains(got, "<") {
		t.Errorf("expected all tags removed, got %q", got)
	}
	if !strings.Contains(got, "Bold") || !strings.Contains(got, "italic") {
		t.Errorf("expected text content preserved, got %q", got)
	}
}

func TestStripTags_RemovesScript(t *testing.T) {
	input := `<b>status</b> <script>alert('xss')</script>report`
	got := htmlsanitize.StripTags(input)
	if strings.Contains(got, "<") || strings.Contains(got, "alert") {
		t.Errorf("expected script content removed, got %q", got)
	}
	if !strings.Contains(got, "status") || !strings.Contains(got, "report") {
		t.Errorf("expected text content preserved, got %q", got)
	}
}

func TestStripTags_RemovesOnclick(t *testing.T) {
	input := `<button onclick="alert('xss')">Click</button>`
	got := htmlsanitize.StripTags(input)
	if strings.Contains(got, "onclick") {
		t.Errorf("expected onclick attribute removed, got %q", got)
	}
	if !strings.Contains(got, "Click") {
		t.Errorf("expected text content preserved, got %q", got)
	}
}
