package search

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// Searcher runs searches in the background for the interactive browser
type Searcher struct {
	fs       afero.Fs
	logger   *log.Logger
	policy   ErrorPolicy
	searchID int64
}

// NewSearcher creates a new Searcher instance
func NewSearcher(fs afero.Fs, logger *log.Logger, policy ErrorPolicy) *Searcher {
	return &Searcher{fs: fs, logger: logger, policy: policy}
}

// SearchResultMsg is sent when search results are available
type SearchResultMsg struct {
	SearchID int64
	Results  ResultSet
	Skipped  int
	Error    error
}

// Search walks root for pattern on its own goroutine and returns the search ID.
// The returned channel receives exactly one message unless ctx is cancelled first.
func (s *Searcher) Search(ctx context.Context, pattern, root string) (int64, <-chan SearchResultMsg) {
	s.searchID++
	currentID := s.searchID
	resultChan := make(chan SearchResultMsg, 1)

	engine := NewEngine(s.fs, s.logger)
	engine.Policy = s.policy

	go func() {
		defer close(resultChan)

		results, err := engine.Search(ctx, Request{Pattern: pattern, Path: root})
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			resultChan <- SearchResultMsg{
				SearchID: currentID,
				Error:    fmt.Errorf("search failed: %w", err),
			}
			return
		}
		resultChan <- SearchResultMsg{
			SearchID: currentID,
			Results:  results,
			Skipped:  engine.Skipped(),
		}
	}()

	return currentID, resultChan
}
