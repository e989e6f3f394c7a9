package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/trending/pkg/trending"
)

func TestPrintRepositories(t *testing.T) {
	repos := make([]trending.Repository, 12)
	for i := range repos {
		repos[i] = trending.Repository{Name: "owner/repo", URL: "https://github.com/owner/repo", Stars: "1"}
	}

	var buf bytes.Buffer
	printRepositories(&buf, "go", repos)
	out := buf.String()

	if !strings.Contains(out, "  1. owner/repo") {
		t.Errorf("single-digit index should be padded:\n%s", out)
	}
	if !strings.Contains(out, " 12. owner/repo") {
		t.Errorf("missing last index:\n%s", out)
	}
	if got := strings.Count(out, "https://github.com/owner/repo"); got != 12 {
		t.Errorf("printed %d URLs, want 12", got)
	}
}

func TestStarLine(t *testing.T) {
	tests := []struct {
		name string
		repo trending.Repository
		want string
	}{
		{"stars only", trending.Repository{Stars: "1,234"}, "★ 1,234 stars"},
		{"missing stars", trending.Repository{}, "★ n/a stars"},
		{"with details", trending.Repository{Stars: "5", StarsToday: "2 stars today", Language: "Go"}, "★ 5 stars · 2 stars today · Go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := starLine(tt.repo); got != tt.want {
				t.Errorf("starLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescriptionPlaceholder(t *testing.T) {
	if got := description(trending.Repository{}); got != noDescription {
		t.Errorf("description() = %q, want %q", got, noDescription)
	}
	if got := description(trending.Repository{Description: "x"}); got != "x" {
		t.Errorf("description() = %q, want %q", got, "x")
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, nil); err != nil {
		t.Fatalf("writeJSON() error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("writeJSON(nil) = %q, want []", got)
	}
}
