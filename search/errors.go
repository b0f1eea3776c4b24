package search

import "fmt"

// ErrorPolicy decides what happens when a file or directory cannot be read
type ErrorPolicy int

const (
	// PolicySkip logs the failure and continues the walk
	PolicySkip ErrorPolicy = iota
	// PolicyStrict aborts the whole search on the first open or list failure
	PolicyStrict
)

func (p ErrorPolicy) String() string {
	switch p {
	case PolicySkip:
		return "skip"
	case PolicyStrict:
		return "strict"
	default:
		return fmt.Sprintf("ErrorPolicy(%d)", int(p))
	}
}

// PathError records a failed filesystem operation during a search
type PathError struct {
	Op   string // "open", "list" or "read"
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
