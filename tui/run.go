package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the Bubble Tea program and blocks until the user quits.
// An error opening the editor is returned after the screen is restored.
func Run(ctx context.Context, opts Options) error {
	program := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	if m, ok := final.(*Model); ok && m.EditorErr() != nil {
		return fmt.Errorf("failed to open editor: %w", m.EditorErr())
	}
	return nil
}
