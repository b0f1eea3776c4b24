package search

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// FindGitRoot finds the git repository root directory starting from the given path
func FindGitRoot(fs afero.Fs, startPath string) (string, bool) {
	path, err := filepath.Abs(startPath)
	if err != nil {
		return "", false
	}
	if info, err := fs.Stat(path); err == nil && !info.IsDir() {
		path = filepath.Dir(path)
	}

	for {
		gitDir := filepath.Join(path, ".git")
		if info, err := fs.Stat(gitDir); err == nil && info.IsDir() {
			return path, true
		}

		// Check if we've reached the filesystem root
		parent := filepath.Dir(path)
		if parent == path {
			break
		}
		path = parent
	}

	return "", false
}
