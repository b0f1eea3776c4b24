package search

import (
	"context"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// Engine walks a path and collects the matches of every file reachable from it.
// An Engine is not safe for concurrent use; give each goroutine its own.
type Engine struct {
	Fs      afero.Fs
	Scanner *Scanner
	Logger  *log.Logger
	Policy  ErrorPolicy

	skipped int
}

// NewEngine creates an Engine over fs that skips unreadable entries
func NewEngine(fs afero.Fs, logger *log.Logger) *Engine {
	return &Engine{
		Fs:      fs,
		Scanner: NewScanner(logger),
		Logger:  logger,
		Policy:  PolicySkip,
	}
}

// Skipped returns how many entries the last search could not read
func (e *Engine) Skipped() int {
	return e.skipped
}

// Search scans req.Path if it is a file, or every file below it if it is a directory.
//
// Directories are walked depth-first with an explicit worklist. Entries are
// visited in the order the filesystem lists them and a sub-directory is
// exhausted before its next sibling, so the result order is the same as a
// recursive walk.
func (e *Engine) Search(ctx context.Context, req Request) (ResultSet, error) {
	e.skipped = 0

	var results ResultSet
	pending := []Request{req}
	for len(pending) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cur := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if !e.isDir(cur.Path) {
			matches, err := e.ScanFile(cur)
			if err != nil {
				return nil, err
			}
			results = append(results, matches...)
			continue
		}

		names, err := e.list(cur.Path)
		if err != nil {
			if err := e.report("list", cur.Path, err); err != nil {
				return nil, err
			}
			continue
		}
		e.logger().Debug("walking", "dir", cur.Path, "entries", len(names))

		for _, name := range slices.Backward(names) {
			pending = append(pending, cur.Child(joinPath(cur.Path, name)))
		}
	}
	return results, nil
}

// ScanFile opens req.Path, collects its matching lines and closes it again
func (e *Engine) ScanFile(req Request) (ResultSet, error) {
	f, err := e.Fs.Open(req.Path)
	if err != nil {
		return nil, e.report("open", req.Path, err)
	}
	defer f.Close()

	var results ResultSet
	onErr := func(err error) {
		// Read failures never abort the walk, whatever the policy.
		_ = e.report("read", req.Path, err)
	}
	for m := range e.scanner().scan(f, req, onErr) {
		results = append(results, m)
	}
	return results, nil
}

func (e *Engine) isDir(path string) bool {
	info, err := e.Fs.Stat(path)
	return err == nil && info.IsDir()
}

// list returns the entry names of dir in the order the filesystem reports them
func (e *Engine) list(dir string) ([]string, error) {
	f, err := e.Fs.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Readdirnames(-1)
}

// report applies the error policy to a failed operation
func (e *Engine) report(op, path string, err error) error {
	perr := &PathError{Op: op, Path: path, Err: err}
	if e.Policy == PolicyStrict && op != "read" {
		return perr
	}
	e.skipped++
	e.logger().Warn("skipping unreadable entry", "op", op, "path", path, "err", err)
	return nil
}

func (e *Engine) scanner() *Scanner {
	if e.Scanner == nil {
		e.Scanner = NewScanner(e.Logger)
	}
	return e.Scanner
}

func (e *Engine) logger() *log.Logger {
	if e.Logger == nil {
		return log.Default()
	}
	return e.Logger
}

// joinPath appends name to dir without cleaning dir, so result paths keep
// the shape of the path given on the command line ("./src" stays "./src/...").
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, string(os.PathSeparator)) || strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
