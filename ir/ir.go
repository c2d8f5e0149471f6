package ir

import "github.com/evelant/rune/report"

// Ir is the interface implemented by all IR expression nodes.  IR nodes are
// produced from AST subtrees the compiler marks as compile-time-constant;
// they carry their originating span so evaluation errors can point at source.
type Ir interface {
	Span() report.Span

	irNode()
}

// LitExpr is a literal constant.
type LitExpr struct {
	Sp report.Span

	// The literal's value.
	Value Value
}

// TupleExpr is a tuple constructor with a fixed ordered list of element
// sub-expressions.
type TupleExpr struct {
	Sp report.Span

	// The element expressions in evaluation order.
	Items []Ir
}

// Enumeration of binary IR operations.
const (
	OpAdd = iota
	OpSub
	OpMul
	OpDiv
)

// BinaryExpr is a binary arithmetic operation over two sub-expressions.
type BinaryExpr struct {
	Sp report.Span

	// The operation.  This must be one of the enumerated binary operations.
	Op int

	Lhs, Rhs Ir
}

// ReturnExpr is a constant-time early return.
type ReturnExpr struct {
	Sp report.Span

	// The returned expression.
	Value Ir
}

func (l *LitExpr) Span() report.Span    { return l.Sp }
func (t *TupleExpr) Span() report.Span  { return t.Sp }
func (b *BinaryExpr) Span() report.Span { return b.Sp }
func (r *ReturnExpr) Span() report.Span { return r.Sp }

func (*LitExpr) irNode()    {}
func (*TupleExpr) irNode()  {}
func (*BinaryExpr) irNode() {}
func (*ReturnExpr) irNode() {}
