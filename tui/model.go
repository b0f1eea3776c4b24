package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/takaishi/minigrep/editor"
	"github.com/takaishi/minigrep/preview"
	"github.com/takaishi/minigrep/search"
)

const (
	debounceDuration = 250 * time.Millisecond
	visibleResults   = 5
)

// Scope selects the directory a query is run against
type Scope int

const (
	ScopeDirectory Scope = iota // the path given on the command line
	ScopeProject                // the enclosing git repository
)

// Options configures a Model
type Options struct {
	Fs       afero.Fs
	Searcher *search.Searcher
	Editor   editor.Editor
	Pattern  string
	Root     string
	Results  search.ResultSet
	Skipped  int
}

// Model represents the application state
type Model struct {
	fs afero.Fs

	// Input
	query string

	// Search state
	searcher      *search.Searcher
	searchCancel  context.CancelFunc
	searchID      int64
	searchResults search.ResultSet
	skipped       int
	selectedIndex int
	resultsOffset int // Scroll offset for results list
	isSearching   bool
	searchError   error

	// Preview state
	preview      *preview.Preview
	previewError error

	// Editor
	editor    editor.Editor
	editorErr error

	// Search scope
	searchScope Scope
	root        string // path given on the command line
	gitRoot     string // Git repository root path, empty outside a repository

	// UI dimensions
	width  int
	height int
}

// New creates a Model showing the results of an initial search
func New(opts Options) *Model {
	gitRoot, _ := search.FindGitRoot(opts.Fs, opts.Root)

	m := &Model{
		fs:            opts.Fs,
		query:         opts.Pattern,
		searcher:      opts.Searcher,
		searchResults: opts.Results,
		skipped:       opts.Skipped,
		selectedIndex: -1,
		editor:        opts.Editor,
		searchScope:   ScopeDirectory,
		root:          opts.Root,
		gitRoot:       gitRoot,
	}
	if len(m.searchResults) > 0 {
		m.selectedIndex = 0
	}
	return m
}

// Selected returns the highlighted match, if any
func (m *Model) Selected() (search.Match, bool) {
	if m.selectedIndex < 0 || m.selectedIndex >= len(m.searchResults) {
		return search.Match{}, false
	}
	return m.searchResults[m.selectedIndex], true
}

// EditorErr returns the error from opening the editor, if any
func (m *Model) EditorErr() error {
	return m.editorErr
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return m.loadPreview()
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case search.SearchResultMsg:
		return m.handleSearchResult(msg)

	case previewLoadedMsg:
		return m.handlePreviewLoaded(msg)

	case startSearchMsg:
		return m.handleStartSearch(msg)

	case editorClosedMsg:
		m.editorErr = msg.err
		return m, tea.Quit

	default:
		return m, nil
	}
}

// View renders the UI
func (m *Model) View() string {
	return renderView(m)
}

// handleKey processes keyboard input
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if scope, ok := scopeKey(msg); ok {
		return m, m.switchScope(scope)
	}

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelSearch()
		return m, tea.Quit

	case tea.KeyUp, tea.KeyCtrlP:
		if m.selectedIndex > 0 {
			m.selectedIndex--
			m.adjustScroll()
			return m, m.loadPreview()
		}
		return m, nil

	case tea.KeyDown, tea.KeyCtrlN:
		if m.selectedIndex < len(m.searchResults)-1 {
			m.selectedIndex++
			m.adjustScroll()
			return m, m.loadPreview()
		}
		return m, nil

	case tea.KeyEnter:
		return m, m.openSelected()

	case tea.KeyBackspace:
		if m.query == "" {
			return m, nil
		}
		runes := []rune(m.query)
		m.query = string(runes[:len(runes)-1])
		return m, m.triggerSearch()

	case tea.KeySpace:
		m.query += " "
		return m, m.triggerSearch()

	case tea.KeyRunes:
		if msg.Alt {
			return m, nil
		}
		m.query += string(msg.Runes)
		return m, m.triggerSearch()

	default:
		return m, nil
	}
}

// scopeKey detects alt+p / alt+d, including the characters macOS sends
// for Option+P (π) and Option+D (∂) when Option is not a Meta key.
func scopeKey(msg tea.KeyMsg) (Scope, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	switch {
	case r == 'π', msg.Alt && (r == 'p' || r == 'P'):
		return ScopeProject, true
	case r == '∂', msg.Alt && (r == 'd' || r == 'D'):
		return ScopeDirectory, true
	}
	return 0, false
}

func (m *Model) switchScope(scope Scope) tea.Cmd {
	if scope == m.searchScope {
		return nil
	}
	if scope == ScopeProject && m.gitRoot == "" {
		return nil
	}
	m.searchScope = scope
	return m.triggerSearch()
}

// searchRoot returns the directory the current scope searches
func (m *Model) searchRoot() string {
	if m.searchScope == ScopeProject && m.gitRoot != "" {
		return m.gitRoot
	}
	return m.root
}

func (m *Model) cancelSearch() {
	if m.searchCancel != nil {
		m.searchCancel()
		m.searchCancel = nil
	}
}

// triggerSearch starts a new search with debounce
func (m *Model) triggerSearch() tea.Cmd {
	m.cancelSearch()

	// Reset selection and scroll
	m.selectedIndex = -1
	m.resultsOffset = 0
	m.preview = nil
	m.previewError = nil

	// An empty query matches every line, same as on the command line
	query := m.query
	scope := m.searchScope
	return tea.Tick(debounceDuration, func(time.Time) tea.Msg {
		return startSearchMsg{Query: query, Scope: scope}
	})
}

// startSearchMsg is sent after debounce to start the actual search
type startSearchMsg struct {
	Query string
	Scope Scope
}

// handleStartSearch starts the actual search
func (m *Model) handleStartSearch(msg startSearchMsg) (tea.Model, tea.Cmd) {
	// Only start if the input hasn't changed during the debounce
	if m.query != msg.Query || m.searchScope != msg.Scope || m.searcher == nil {
		return m, nil
	}

	m.cancelSearch()
	ctx, cancel := context.WithCancel(context.Background())
	m.searchCancel = cancel
	m.isSearching = true
	m.searchError = nil

	id, resultChan := m.searcher.Search(ctx, msg.Query, m.searchRoot())
	m.searchID = id
	return m, func() tea.Msg {
		msg, ok := <-resultChan
		if !ok {
			return nil
		}
		return msg
	}
}

// handleSearchResult processes search results
func (m *Model) handleSearchResult(msg search.SearchResultMsg) (tea.Model, tea.Cmd) {
	if msg.SearchID != m.searchID {
		return m, nil
	}
	m.isSearching = false
	m.searchCancel = nil

	if msg.Error != nil {
		m.searchError = msg.Error
		m.searchResults = nil
		return m, nil
	}

	m.searchResults = msg.Results
	m.skipped = msg.Skipped
	m.searchError = nil

	// Auto-select first result if available
	if len(m.searchResults) > 0 && m.selectedIndex < 0 {
		m.selectedIndex = 0
		m.resultsOffset = 0
		return m, m.loadPreview()
	}

	return m, nil
}

// adjustScroll adjusts the scroll offset to keep selected item visible
func (m *Model) adjustScroll() {
	if len(m.searchResults) <= visibleResults {
		m.resultsOffset = 0
		return
	}

	if m.selectedIndex < m.resultsOffset {
		m.resultsOffset = m.selectedIndex
	}
	if m.selectedIndex >= m.resultsOffset+visibleResults {
		m.resultsOffset = m.selectedIndex - visibleResults + 1
	}

	maxOffset := len(m.searchResults) - visibleResults
	m.resultsOffset = min(max(m.resultsOffset, 0), maxOffset)
}

// loadPreview loads preview for the currently selected result
func (m *Model) loadPreview() tea.Cmd {
	result, ok := m.Selected()
	if !ok {
		return nil
	}

	fs := m.fs
	return func() tea.Msg {
		p, err := preview.Load(fs, result.File, result.Line)
		return previewLoadedMsg{File: result.File, Line: result.Line, Preview: p, Error: err}
	}
}

// previewLoadedMsg is sent when preview is loaded
type previewLoadedMsg struct {
	File    string
	Line    int
	Preview *preview.Preview
	Error   error
}

// handlePreviewLoaded processes loaded preview
func (m *Model) handlePreviewLoaded(msg previewLoadedMsg) (tea.Model, tea.Cmd) {
	// Drop previews for a selection that has since moved on
	if cur, ok := m.Selected(); !ok || cur.File != msg.File || cur.Line != msg.Line {
		return m, nil
	}
	if msg.Error != nil {
		m.previewError = msg.Error
		m.preview = nil
	} else {
		m.preview = msg.Preview
		m.previewError = nil
	}
	return m, nil
}

// editorClosedMsg is sent when a terminal editor exits
type editorClosedMsg struct {
	err error
}

// openSelected opens the selected match in the editor and quits
func (m *Model) openSelected() tea.Cmd {
	result, ok := m.Selected()
	if !ok {
		return nil
	}
	m.cancelSearch()

	line, column := result.Line+1, result.Column(m.query)
	if !m.editor.IsTerminal() {
		m.editorErr = editor.Start(m.editor, result.File, line, column)
		return tea.Quit
	}

	cmd, err := editor.Command(m.editor, result.File, line, column)
	if err != nil {
		m.editorErr = err
		return tea.Quit
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorClosedMsg{err: err}
	})
}
