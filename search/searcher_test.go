package search

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

func TestSearcherSearch(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"root/a.txt":     "needle\n",
		"root/sub/b.txt": "hay\nneedle\n",
	})
	s := NewSearcher(fs, log.New(io.Discard), PolicySkip)

	firstID, _ := s.Search(context.Background(), "hay", "root")
	id, ch := s.Search(context.Background(), "needle", "root")
	if id != firstID+1 {
		t.Errorf("search IDs = %d, %d, want consecutive", firstID, id)
	}

	msg, ok := <-ch
	if !ok {
		t.Fatal("channel closed without a result")
	}
	if msg.Error != nil {
		t.Fatalf("unexpected error: %v", msg.Error)
	}
	if msg.SearchID != id {
		t.Errorf("SearchID = %d, want %d", msg.SearchID, id)
	}
	if len(msg.Results) != 2 {
		t.Errorf("expected 2 results, got %v", msg.Results)
	}
}

func TestSearcherCancelled(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{"root/a.txt": "needle\n"})
	s := NewSearcher(fs, log.New(io.Discard), PolicySkip)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ch := s.Search(ctx, "needle", "root")
	if msg, ok := <-ch; ok {
		t.Errorf("expected no message after cancellation, got %+v", msg)
	}
}

func TestSearcherStrictError(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeFiles(t, mem, map[string]string{"root/a.txt": "needle\n"})
	fs := failingFs{Fs: mem, fail: map[string]bool{"root/a.txt": true}}
	s := NewSearcher(fs, log.New(io.Discard), PolicyStrict)

	_, ch := s.Search(context.Background(), "needle", "root")
	msg := <-ch
	if msg.Error == nil {
		t.Fatal("expected an error")
	}
}
