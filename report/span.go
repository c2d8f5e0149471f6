package report

// Span represents a half-open byte range `[Start, End)` into the source text
// of a single compilation unit.  Spans are pure values: they are built once by
// the lexer (or joined from child spans) and never mutated.  The invariant
// `Start <= End` is maintained by construction.
type Span struct {
	// The byte offset of the first byte of the spanned region.
	Start uint32

	// The byte offset one past the last byte of the spanned region.
	End uint32
}

// NewSpan creates a new span over the given byte range.
func NewSpan(start, end uint32) Span {
	return Span{Start: start, End: end}
}

// Point creates a zero-width span at a single byte offset.  Point spans are
// used for synthesized trailing tokens which have a location but no extent.
func Point(offset uint32) Span {
	return Span{Start: offset, End: offset}
}

// Join returns the smallest span covering both s and other.
func (s Span) Join(other Span) Span {
	return Span{
		Start: min(s.Start, other.Start),
		End:   max(s.End, other.End),
	}
}

// Len returns the number of bytes the span covers.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

// JoinOption joins two possibly-absent spans.  If only one operand is present,
// the result is that operand; if neither is present, the result is absent.
func JoinOption(a Span, aok bool, b Span, bok bool) (Span, bool) {
	switch {
	case aok && bok:
		return a.Join(b), true
	case aok:
		return a, true
	case bok:
		return b, true
	default:
		return Span{}, false
	}
}

// Spanned is the interface for values which always occupy a source range.
type Spanned interface {
	Span() Span
}

// OptionSpanned is the interface for values which may have no source range:
// eg. synthetic nodes produced by a macro without explicit location
// information, or empty node collections.
type OptionSpanned interface {
	OptionSpan() (Span, bool)
}
