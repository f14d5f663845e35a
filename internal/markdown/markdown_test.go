package markdown

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	tp := New()

	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"plain text", "hello feed", "hello feed"},
		{"emphasis", "really *good* ramen", "<em>good</em>"},
		{"code span", "try `go test`", "<code>go test</code>"},
		{"strikethrough", "~~old news~~", "<del>old news</del>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tp.Render(tt.input)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("Render(%q) = %q, expected to contain %q", tt.input, got, tt.contains)
			}
		})
	}
}

func TestRender_StripsScripts(t *testing.T) {
	tp := New()

	got := tp.Render(`<script>alert("x")</script>nice post`)
	if strings.Contains(got, "<script>") {
		t.Errorf("script tags must be stripped, got %q", got)
	}
	if !strings.Contains(got, "nice post") {
		t.Errorf("text content should survive sanitization, got %q", got)
	}
}
