package search

import (
	"bufio"
	"fmt"
	"io"
)

// Print writes one "<file>(<line>): <text>" line per match, in set order
func Print(w io.Writer, rs ResultSet) error {
	bw := bufio.NewWriter(w)
	for _, m := range rs {
		if _, err := fmt.Fprintf(bw, "%s(%d): %s\n", m.File, m.Line, m.Text); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}
