package report

// Source is an in-memory source text together with the precomputed line
// offsets needed to convert byte-offset spans into line/column positions for
// diagnostics.  Sources are immutable once constructed.
type Source struct {
	// The name of the source: usually a file path, but synthetic sources (eg.
	// macro output, test fixtures) may use any descriptive name.
	Name string

	// The full text of the source.
	Text string

	// lineStarts[n] is the byte offset at which line n (zero-indexed) starts.
	lineStarts []uint32
}

// NewSource creates a new source from a name and its full text.
func NewSource(name, text string) *Source {
	lineStarts := []uint32{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lineStarts = append(lineStarts, uint32(i+1))
		}
	}

	return &Source{
		Name:       name,
		Text:       text,
		lineStarts: lineStarts,
	}
}

// Slice returns the source text covered by the given span.  Spans which
// extend past the end of the text are clamped.
func (src *Source) Slice(span Span) string {
	start, end := span.Start, span.End
	if int(start) > len(src.Text) {
		start = uint32(len(src.Text))
	}
	if int(end) > len(src.Text) {
		end = uint32(len(src.Text))
	}

	return src.Text[start:end]
}

// LineCol converts a byte offset into a zero-indexed line and column pair.
func (src *Source) LineCol(offset uint32) (int, int) {
	// binary search for the last line start <= offset
	lo, hi := 0, len(src.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if src.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return lo, int(offset - src.lineStarts[lo])
}

// NumLines returns the number of lines in the source.
func (src *Source) NumLines() int {
	return len(src.lineStarts)
}

// Line returns the text of the zero-indexed line n without its trailing
// newline.
func (src *Source) Line(n int) string {
	if n < 0 || n >= len(src.lineStarts) {
		return ""
	}

	start := src.lineStarts[n]
	end := uint32(len(src.Text))
	if n+1 < len(src.lineStarts) {
		end = src.lineStarts[n+1] - 1
	}

	return src.Text[start:end]
}
