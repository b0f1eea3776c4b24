package editor

import (
	"os/exec"
	"slices"
	"testing"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		editor   Editor
		wantPath string
		wantArgs []string
	}{
		{EditorCode, "code", []string{"--goto", "a/b.go:3:7"}},
		{EditorCursor, "cursor", []string{"--goto", "a/b.go:3:7"}},
		{"code --reuse-window", "code", []string{"--reuse-window", "--goto", "a/b.go:3:7"}},
		{EditorVim, "vim", []string{"+3", "a/b.go"}},
		{"/usr/local/bin/nvim", "/usr/local/bin/nvim", []string{"+3", "a/b.go"}},
		{"emacs -nw", "emacs", []string{"-nw", "+3", "a/b.go"}},
		{"nano", "nano", []string{"+3,7", "a/b.go"}},
		{"subl", "subl", []string{"a/b.go:3:7"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.editor), func(t *testing.T) {
			cmd, err := Command(tt.editor, "a/b.go", 3, 7)
			if err != nil {
				t.Fatalf("Command() error = %v", err)
			}
			// cmd.Args[0] is the name as given
			if cmd.Args[0] != tt.wantPath {
				t.Errorf("command = %q, want %q", cmd.Args[0], tt.wantPath)
			}
			if got := cmd.Args[1:]; !slices.Equal(got, tt.wantArgs) {
				t.Errorf("args = %q, want %q", got, tt.wantArgs)
			}
		})
	}
}

func TestCommandNoEditor(t *testing.T) {
	if _, err := Command("  ", "a.go", 1, 1); err == nil {
		t.Error("expected error for empty editor")
	}
}

func TestIsTerminal(t *testing.T) {
	tests := map[Editor]bool{
		EditorCode:   false,
		EditorCursor: false,
		EditorVim:    true,
		EditorNvim:   true,
		"hx":         true,
		"zed --wait": false,
	}
	for ed, want := range tests {
		if got := ed.IsTerminal(); got != want {
			t.Errorf("%q.IsTerminal() = %v, want %v", ed, got, want)
		}
	}
}

func TestDetect(t *testing.T) {
	origLookPath := lookPath
	t.Cleanup(func() { lookPath = origLookPath })

	available := map[string]bool{}
	lookPath = func(file string) (string, error) {
		if available[file] {
			return "/usr/bin/" + file, nil
		}
		return "", exec.ErrNotFound
	}

	t.Run("visual wins", func(t *testing.T) {
		t.Setenv("VISUAL", "hx")
		t.Setenv("EDITOR", "vim")
		if ed, err := Detect(); err != nil || ed != "hx" {
			t.Errorf("Detect() = %q, %v, want hx", ed, err)
		}
	})

	t.Run("editor env", func(t *testing.T) {
		t.Setenv("VISUAL", "")
		t.Setenv("EDITOR", "nano")
		if ed, err := Detect(); err != nil || ed != "nano" {
			t.Errorf("Detect() = %q, %v, want nano", ed, err)
		}
	})

	t.Run("path lookup order", func(t *testing.T) {
		t.Setenv("VISUAL", "")
		t.Setenv("EDITOR", "")
		available["code"] = true
		available["vim"] = true
		t.Cleanup(func() { clear(available) })

		if ed, err := Detect(); err != nil || ed != EditorCode {
			t.Errorf("Detect() = %q, %v, want code", ed, err)
		}
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Setenv("VISUAL", "")
		t.Setenv("EDITOR", "")
		if ed, err := Detect(); err == nil {
			t.Errorf("expected an error, got editor %q", ed)
		}
	})
}
