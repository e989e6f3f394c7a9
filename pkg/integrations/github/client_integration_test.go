//go:build integration

package github

import (
	"context"
	"testing"
	"time"

	errs "github.com/matzehuels/trending/pkg/errors"
)

func TestTrending_Integration(t *testing.T) {
	client := NewClient(Options{Timeout: 30 * time.Second})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tests := []struct {
		name     string
		language string
		wantCode errs.Code
	}{
		{name: "go", language: "go"},
		{name: "python", language: "python"},
		{name: "unknown language", language: "doesnotexist123", wantCode: errs.ErrCodeLanguageNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos, err := client.Trending(ctx, tt.language)
			if tt.wantCode != "" {
				if !errs.Is(err, tt.wantCode) {
					t.Errorf("Trending() error = %v, want %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Trending() error: %v", err)
			}
			if len(repos) == 0 {
				t.Error("expected at least one trending repository")
			}
			for _, r := range repos {
				if r.Name == "" || r.URL == "" {
					t.Errorf("incomplete record: %+v", r)
				}
			}
		})
	}
}
