package report

import "testing"

func TestSpanJoin(t *testing.T) {
	tests := []struct {
		a, b, want Span
	}{
		{NewSpan(0, 5), NewSpan(3, 10), NewSpan(0, 10)},
		{NewSpan(3, 10), NewSpan(0, 5), NewSpan(0, 10)},
		{NewSpan(0, 2), NewSpan(8, 9), NewSpan(0, 9)},
		{NewSpan(4, 4), NewSpan(4, 4), NewSpan(4, 4)},
		{NewSpan(2, 6), NewSpan(3, 4), NewSpan(2, 6)},
	}

	for _, tt := range tests {
		if got := tt.a.Join(tt.b); got != tt.want {
			t.Errorf("(%v).Join(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSpanJoinCoverage(t *testing.T) {
	a, b, c := NewSpan(5, 9), NewSpan(0, 3), NewSpan(7, 20)

	// commutative w.r.t. coverage
	if a.Join(b) != b.Join(a) {
		t.Errorf("join is not commutative: %v vs %v", a.Join(b), b.Join(a))
	}

	// associative when chained
	if a.Join(b).Join(c) != a.Join(b.Join(c)) {
		t.Errorf("join is not associative: %v vs %v", a.Join(b).Join(c), a.Join(b.Join(c)))
	}

	joined := a.Join(b).Join(c)
	if joined.Start != 0 || joined.End != 20 {
		t.Errorf("chained join = %v, want [0, 20)", joined)
	}
}

func TestPoint(t *testing.T) {
	p := Point(7)
	if p.Start != 7 || p.End != 7 {
		t.Errorf("Point(7) = %v, want [7, 7)", p)
	}

	if p.Len() != 0 {
		t.Errorf("Point(7).Len() = %d, want 0", p.Len())
	}
}

func TestJoinOption(t *testing.T) {
	a, b := NewSpan(1, 4), NewSpan(6, 9)

	if got, ok := JoinOption(a, true, b, true); !ok || got != a.Join(b) {
		t.Errorf("JoinOption(a, b) = %v, %v", got, ok)
	}

	if got, ok := JoinOption(a, true, Span{}, false); !ok || got != a {
		t.Errorf("JoinOption(a, absent) = %v, %v, want a", got, ok)
	}

	if got, ok := JoinOption(Span{}, false, b, true); !ok || got != b {
		t.Errorf("JoinOption(absent, b) = %v, %v, want b", got, ok)
	}

	if _, ok := JoinOption(Span{}, false, Span{}, false); ok {
		t.Error("JoinOption(absent, absent) should be absent")
	}
}

func TestSourceLineCol(t *testing.T) {
	src := NewSource("test.rn", "fn main() {\n    1 + 2\n}\n")

	tests := []struct {
		offset    uint32
		line, col int
	}{
		{0, 0, 0},
		{3, 0, 3},
		{11, 0, 11},
		{12, 1, 0},
		{16, 1, 4},
		{22, 2, 0},
	}

	for _, tt := range tests {
		line, col := src.LineCol(tt.offset)
		if line != tt.line || col != tt.col {
			t.Errorf("LineCol(%d) = %d, %d, want %d, %d", tt.offset, line, col, tt.line, tt.col)
		}
	}

	if src.NumLines() != 4 {
		t.Errorf("NumLines() = %d, want 4", src.NumLines())
	}
}

func TestSourceSliceAndLine(t *testing.T) {
	src := NewSource("test.rn", "let x = 1;\nlet y = 2;")

	if got := src.Slice(NewSpan(4, 5)); got != "x" {
		t.Errorf("Slice([4, 5)) = %q, want %q", got, "x")
	}

	if got := src.Line(0); got != "let x = 1;" {
		t.Errorf("Line(0) = %q", got)
	}

	if got := src.Line(1); got != "let y = 2;" {
		t.Errorf("Line(1) = %q", got)
	}

	// spans past the end of the text are clamped
	if got := src.Slice(NewSpan(15, 999)); got != "y = 2;" {
		t.Errorf("clamped Slice = %q", got)
	}
}
