package search

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Scanner reads one file's lines and yields those containing the pattern
type Scanner struct {
	Highlighter Highlighter
	Logger      *log.Logger
}

// NewScanner creates a Scanner with the default highlight markers
func NewScanner(logger *log.Logger) *Scanner {
	return &Scanner{Highlighter: DefaultHighlighter, Logger: logger}
}

// Scan returns the matching lines of r in file order.
// The sequence is single-pass: it consumes r. A read error ends it and is logged.
func (s *Scanner) Scan(r io.Reader, req Request) iter.Seq[Match] {
	return s.scan(r, req, func(err error) {
		s.logger().Warn("read failed", "path", req.Path, "err", err)
	})
}

func (s *Scanner) scan(r io.Reader, req Request, onErr func(error)) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		br := bufio.NewReader(r)
		for lineNum := 0; ; lineNum++ {
			line, err := br.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				onErr(err)
				return
			}
			if err != nil && line == "" {
				return
			}

			line = trimLineEnding(line)
			if validUTF8(line) && strings.Contains(line, req.Pattern) {
				m := Match{
					File:   req.Path,
					Line:   lineNum,
					Text:   s.Highlighter.Highlight(line, req.Pattern),
					Source: line,
				}
				if !yield(m) {
					return
				}
			}

			if err != nil {
				return
			}
		}
	}
}

func (s *Scanner) logger() *log.Logger {
	if s.Logger == nil {
		return log.Default()
	}
	return s.Logger
}

// trimLineEnding drops a trailing "\n" or "\r\n"
func trimLineEnding(line string) string {
	trimmed, ok := strings.CutSuffix(line, "\n")
	if !ok {
		return line
	}
	return strings.TrimSuffix(trimmed, "\r")
}

func validUTF8(line string) bool {
	_, _, err := transform.String(encoding.UTF8Validator, line)
	return err == nil
}
