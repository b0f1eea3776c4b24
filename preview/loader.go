package preview

import (
	"bufio"
	"fmt"

	"github.com/spf13/afero"
)

const (
	previewBefore = 5
	previewAfter  = 10

	maxLineSize = 1024 * 1024 // 1 MiB
)

// Load loads the lines around the 0-based lineNum of file
func Load(fs afero.Fs, file string, lineNum int) (*Preview, error) {
	if lineNum < 0 {
		return nil, fmt.Errorf("invalid line number: %d", lineNum)
	}

	f, err := fs.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	startLine := max(lineNum-previewBefore, 0)
	endLine := lineNum + previewAfter // inclusive

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lines := make([]string, 0, endLine-startLine+1)
	for i := 0; i <= endLine && scanner.Scan(); i++ {
		if i >= startLine {
			lines = append(lines, scanner.Text())
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if lineNum-startLine >= len(lines) {
		return nil, fmt.Errorf("line %d is past the end of %s", lineNum, file)
	}

	return &Preview{
		File:      file,
		StartLine: startLine,
		Lines:     lines,
		HitLine:   lineNum - startLine,
	}, nil
}
