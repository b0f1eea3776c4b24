package search

import "strings"

const (
	highlightPrefix = "\x1b[6;30;42m"
	highlightReset  = "\x1b[0m"
)

// Highlighter wraps pattern occurrences in a pair of markers
type Highlighter struct {
	Prefix string
	Reset  string
}

var (
	// DefaultHighlighter renders matches black on green
	DefaultHighlighter = Highlighter{Prefix: highlightPrefix, Reset: highlightReset}

	// PlainHighlighter leaves lines untouched
	PlainHighlighter = Highlighter{}
)

// Highlight replaces every literal occurrence of pattern in line with its marked form.
// An empty pattern marks every rune boundary, both ends included.
func (h Highlighter) Highlight(line, pattern string) string {
	if h.Prefix == "" && h.Reset == "" {
		return line
	}
	return strings.ReplaceAll(line, pattern, h.Prefix+pattern+h.Reset)
}

// Strip removes the markers added by Highlight.
// Lines that contained the markers before highlighting lose them too; use
// Match.Source for the exact line.
func (h Highlighter) Strip(text string) string {
	if h.Prefix != "" {
		text = strings.ReplaceAll(text, h.Prefix, "")
	}
	if h.Reset != "" {
		text = strings.ReplaceAll(text, h.Reset, "")
	}
	return text
}
