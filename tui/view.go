package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/takaishi/minigrep/search"
)

var (
	// Header styles
	headerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	searchIconStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	queryInputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("236"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	scopeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("62")).
			Bold(true).
			Padding(0, 1)

	scopeInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Padding(0, 1)

	// Result styles
	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedResultStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("25"))

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("2")).
			Bold(true)

	fileInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Align(lipgloss.Right).
			PaddingLeft(1)

	// Preview styles
	previewHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Bold(true)

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	lineNumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(6).
			Align(lipgloss.Right)

	hitLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("25"))

	hitLineNumberStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("25")).
				Width(6).
				Align(lipgloss.Right)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// renderView renders the entire UI
func renderView(m *Model) string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	// Header (3 lines + border), results list, preview takes the rest
	const headerHeight = 4
	previewHeight := max(m.height-headerHeight-visibleResults-2, 5)

	sections := []string{
		renderHeader(m),
		renderResults(m),
		renderPreview(m, previewHeight),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the query, the scope tabs and the status line
func renderHeader(m *Model) string {
	icon := searchIconStyle.Render(">")
	queryDisplay := queryInputStyle.Render(m.query + "█")

	var projectTab, directoryTab string
	if m.searchScope == ScopeProject {
		projectTab = scopeStyle.Render("In Project")
		directoryTab = scopeInactiveStyle.Render("In Directory")
	} else {
		projectTab = scopeInactiveStyle.Render("In Project")
		directoryTab = scopeStyle.Render("In Directory")
	}

	// Only show project tab if git repository is detected
	scopeTabs := directoryTab
	if m.gitRoot != "" {
		scopeTabs = lipgloss.JoinHorizontal(lipgloss.Left, projectTab, " ", directoryTab)
	}

	headerLine := lipgloss.JoinHorizontal(lipgloss.Left,
		icon+" ",
		queryDisplay,
		"  ",
		scopeTabs,
	)
	statusLine := statusStyle.Render(renderStatus(m))

	header := lipgloss.JoinVertical(lipgloss.Left, headerLine, statusLine)
	return headerStyle.Width(m.width - 2).Render(header)
}

// renderStatus renders the status information
func renderStatus(m *Model) string {
	if m.isSearching {
		return "Searching " + m.searchRoot() + "..."
	}
	if m.searchError != nil {
		return fmt.Sprintf("Error: %s", m.searchError.Error())
	}
	if m.editorErr != nil {
		return fmt.Sprintf("Error: %s", m.editorErr.Error())
	}
	if len(m.searchResults) == 0 {
		return "No matches found"
	}

	matchCount := len(m.searchResults)
	fileCount := m.searchResults.Files()

	status := fmt.Sprintf("%d matches in %d files", matchCount, fileCount)
	if matchCount == 1 {
		status = "1 match in 1 file"
	} else if fileCount == 1 {
		status = fmt.Sprintf("%d matches in 1 file", matchCount)
	}
	if m.skipped > 0 {
		status += fmt.Sprintf(" (%d unreadable skipped)", m.skipped)
	}
	return status
}

// renderResults renders the visible window of the results list
func renderResults(m *Model) string {
	if len(m.searchResults) == 0 {
		return ""
	}

	availableWidth := m.width - 4 // Reserve space for borders

	startIdx := m.resultsOffset
	endIdx := min(startIdx+visibleResults, len(m.searchResults))

	var lines []string
	for i := startIdx; i < endIdx; i++ {
		line := formatResult(m.query, m.searchResults[i], availableWidth)
		if i == m.selectedIndex {
			line = selectedResultStyle.Render(line)
		} else {
			line = resultStyle.Render(line)
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// formatResult lays a result out as: code snippet | file(line)
func formatResult(query string, result search.Match, width int) string {
	fileInfo := fmt.Sprintf("%s(%d)", filepath.Base(result.File), result.Line)

	fileInfoAreaWidth := min(30, width/3)
	fileInfoAreaWidth = max(fileInfoAreaWidth, 25)

	codeWidth := width - fileInfoAreaWidth
	if codeWidth < 10 {
		codeWidth = 10
		fileInfoAreaWidth = max(width-codeWidth, 0)
	}

	codeSnippet := highlightQuery(query, result.Raw(), codeWidth)
	codeSnippetStyled := lipgloss.NewStyle().Width(codeWidth).Render(codeSnippet)
	fileInfoFormatted := fileInfoStyle.Width(fileInfoAreaWidth).Render(fileInfo)

	resultLine := lipgloss.JoinHorizontal(lipgloss.Left, codeSnippetStyled, fileInfoFormatted)
	return lipgloss.NewStyle().Width(width).Render(resultLine)
}

// highlightQuery truncates text to maxWidth runes and highlights every
// literal, case-sensitive occurrence of query that is still visible.
func highlightQuery(query, text string, maxWidth int) string {
	text = truncate(strings.TrimRight(text, " \t"), maxWidth)
	if query == "" {
		return text
	}

	var b strings.Builder
	for {
		idx := strings.Index(text, query)
		if idx < 0 {
			b.WriteString(text)
			break
		}
		b.WriteString(text[:idx])
		b.WriteString(highlightStyle.Render(query))
		text = text[idx+len(query):]
	}
	return b.String()
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:max(n, 0)])
	}
	return string(runes[:n-3]) + "..."
}

// renderPreview renders the lines around the selected match
func renderPreview(m *Model, maxHeight int) string {
	if m.previewError != nil {
		return errorStyle.Render("Error loading preview: " + m.previewError.Error())
	}
	if m.preview == nil {
		return ""
	}

	lines := []string{previewHeaderStyle.Render(m.preview.File)}

	availableWidth := m.width - 10 // Reserve space for line numbers and borders
	for i, line := range m.preview.Lines {
		if len(lines) >= maxHeight-1 {
			break
		}

		lineNumStr := fmt.Sprintf("%4d", m.preview.LineNumber(i))
		if i == m.preview.HitLine {
			lineNumStr = hitLineNumberStyle.Render(lineNumStr)
			line = hitLineStyle.Render(highlightQuery(m.query, line, availableWidth))
		} else {
			lineNumStr = lineNumberStyle.Render(lineNumStr)
			line = truncate(line, availableWidth)
		}

		lines = append(lines, fmt.Sprintf("%s | %s", lineNumStr, line))
	}

	previewContent := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return previewStyle.Width(m.width - 2).Render(previewContent)
}
