package preview

// Preview represents a window of lines around a match
type Preview struct {
	File      string
	StartLine int // 0-based file line number of Lines[0]
	Lines     []string
	HitLine   int // index of the matched line within Lines
}

// LineNumber returns the 0-based file line number of Lines[i]
func (p *Preview) LineNumber(i int) int {
	return p.StartLine + i
}
