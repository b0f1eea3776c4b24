package config

import (
	"errors"

	"github.com/spf13/afero"
	"github.com/takaishi/minigrep/search"
)

var (
	ErrNoPattern   = errors.New("no pattern provided")
	ErrNoPath      = errors.New("no path provided")
	ErrInvalidPath = errors.New("invalid path")
)

// ArgsError is returned when the positional arguments cannot start a search
type ArgsError struct {
	Err  error
	Path string
}

func (e *ArgsError) Error() string {
	return e.Err.Error()
}

func (e *ArgsError) Unwrap() error {
	return e.Err
}

// Message returns the text shown to the user
func (e *ArgsError) Message() string {
	switch {
	case errors.Is(e.Err, ErrNoPattern):
		return "Error! No pattern provided"
	case errors.Is(e.Err, ErrNoPath):
		return "Error! No path provided"
	case errors.Is(e.Err, ErrInvalidPath):
		return "Error! Invalid path"
	default:
		return "Error! " + e.Err.Error()
	}
}

// ParseArgs turns "<pattern> <path>" into a search request.
// Arguments after the path are ignored.
func ParseArgs(fs afero.Fs, args []string) (search.Request, error) {
	if len(args) < 1 {
		return search.Request{}, &ArgsError{Err: ErrNoPattern}
	}
	if len(args) < 2 {
		return search.Request{}, &ArgsError{Err: ErrNoPath}
	}

	req := search.Request{Pattern: args[0], Path: args[1]}
	if _, err := fs.Stat(req.Path); err != nil {
		return search.Request{}, &ArgsError{Err: ErrInvalidPath, Path: req.Path}
	}
	return req, nil
}
