package editor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Editor represents an editor command, optionally with arguments ("code -n")
type Editor string

const (
	EditorCursor Editor = "cursor"
	EditorCode   Editor = "code"
	EditorNvim   Editor = "nvim"
	EditorVim    Editor = "vim"
)

// lookPath is replaced in tests
var lookPath = exec.LookPath

// Detect detects which editor is available.
// $VISUAL and $EDITOR win over anything found on PATH.
func Detect() (Editor, error) {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return Editor(v), nil
		}
	}

	for _, ed := range []Editor{EditorCursor, EditorCode, EditorNvim, EditorVim} {
		if _, err := lookPath(string(ed)); err == nil {
			return ed, nil
		}
	}

	return "", fmt.Errorf("no editor found (set $EDITOR or install cursor, code, nvim or vim)")
}

// Name returns the base name of the editor executable
func (e Editor) Name() string {
	fields := strings.Fields(string(e))
	if len(fields) == 0 {
		return ""
	}
	return filepath.Base(fields[0])
}

// IsTerminal reports whether the editor takes over the terminal
func (e Editor) IsTerminal() bool {
	switch e.Name() {
	case "cursor", "code", "code-insiders", "codium", "subl", "zed":
		return false
	default:
		return true
	}
}

// Command builds the command that opens file at the 1-based line and column
func Command(e Editor, file string, line, column int) (*exec.Cmd, error) {
	fields := strings.Fields(string(e))
	if len(fields) == 0 {
		return nil, fmt.Errorf("no editor configured")
	}
	name, args := fields[0], fields[1:]

	switch e.Name() {
	case "cursor", "code", "code-insiders", "codium":
		args = append(args, "--goto", fmt.Sprintf("%s:%d:%d", file, line, column))
	case "subl", "zed":
		args = append(args, fmt.Sprintf("%s:%d:%d", file, line, column))
	case "nano", "micro":
		args = append(args, fmt.Sprintf("+%d,%d", line, column), file)
	default:
		// vi family, emacs, helix and most others accept +line
		args = append(args, fmt.Sprintf("+%d", line), file)
	}

	return exec.Command(name, args...), nil
}

// Start opens file in a GUI editor without waiting for it to exit
func Start(e Editor, file string, line, column int) error {
	cmd, err := Command(e, file, line, column)
	if err != nil {
		return err
	}
	// Discard output to prevent any interference with the terminal
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", e.Name(), err)
	}
	go cmd.Wait()

	return nil
}
