package search

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestFindGitRoot(t *testing.T) {
	repo := filepath.Join(t.TempDir(), "repo")
	fs := afero.NewOsFs()
	writeFiles(t, fs, map[string]string{
		filepath.Join(repo, ".git", "HEAD"):          "ref: refs/heads/main\n",
		filepath.Join(repo, "src", "pkg", "main.go"): "package main\n",
	})

	tests := []struct {
		name   string
		start  string
		want   string
		wantOK bool
	}{
		{"repo root", repo, repo, true},
		{"nested directory", filepath.Join(repo, "src", "pkg"), repo, true},
		{"file inside repo", filepath.Join(repo, "src", "pkg", "main.go"), repo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindGitRoot(fs, tt.start)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("FindGitRoot(%q) = %q, %v, want %q, %v", tt.start, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFindGitRootOutsideRepository(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{"/work/notes/a.txt": "x\n"})

	if root, ok := FindGitRoot(fs, "/work/notes"); ok {
		t.Errorf("expected no repository, got %q", root)
	}
}
