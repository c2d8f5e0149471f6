package ir

import (
	"fmt"

	"github.com/evelant/rune/report"
)

// Use is the two-valued flag passed alongside every evaluation call
// indicating whether the caller will consume the produced value or is
// discarding it.  It never changes the correctness of the result; it lets
// evaluators suppress unused-value diagnostics that are only meaningful
// outside this core.
type Use int

const (
	// The produced value is discarded by the caller.
	Unused Use = iota

	// The produced value is consumed by the caller.
	Used
)

// EvalError is a genuine compile error raised during constant evaluation.
type EvalError struct {
	// The error message.
	Message string

	// The span of the IR node the error occurred at.
	Sp report.Span
}

func (e *EvalError) Error() string {
	return e.Message
}

// BreakOutcome signals a constant-time early exit carrying the produced
// value.  It travels the error channel so that evaluation unwinds, but it is
// not a compile error: the caller at the evaluation root decides whether an
// early exit is legal there.
type BreakOutcome struct {
	// The span of the construct that broke control flow.
	Sp report.Span

	// The value carried out of the evaluation.
	Value Value
}

func (b *BreakOutcome) Error() string {
	return "constant evaluation broke control flow"
}

// -----------------------------------------------------------------------------

// Interpreter reduces IR expressions to values.  Evaluation is pure and
// deterministic: it never mutates a previously produced shared value, and
// each call produces a freshly owned result even when that result shares
// child storage with other live values.
type Interpreter struct{}

// NewInterpreter creates a new IR interpreter.
func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// Eval evaluates a single IR node.  The returned error is either a
// *BreakOutcome (a constant-time control flow exit) or an *EvalError (a
// genuine compile error); both unwind the enclosing evaluation.
func (in *Interpreter) Eval(node Ir, used Use) (Value, error) {
	switch n := node.(type) {
	case *LitExpr:
		return n.Value, nil
	case *TupleExpr:
		return in.evalTuple(n, used)
	case *BinaryExpr:
		return in.evalBinary(n, used)
	case *ReturnExpr:
		value, err := in.Eval(n.Value, Used)
		if err != nil {
			return nil, err
		}

		return nil, &BreakOutcome{Sp: n.Sp, Value: value}
	default:
		return nil, &EvalError{
			Message: fmt.Sprintf("cannot evaluate `%T` at compile time", node),
			Sp:      node.Span(),
		}
	}
}

// evalTuple evaluates each element in left-to-right order, collects the
// results preserving order, and wraps them as a shared immutable sequence.
// Element evaluation order matters: elements may have compiler-visible
// diagnostic side effects even though the value computation itself is pure.
func (in *Interpreter) evalTuple(tuple *TupleExpr, used Use) (Value, error) {
	items := make([]Value, 0, len(tuple.Items))

	for _, item := range tuple.Items {
		value, err := in.Eval(item, used)
		if err != nil {
			return nil, err
		}

		items = append(items, value)
	}

	return Tuple{Items: NewShared(items)}, nil
}

// evalBinary evaluates a binary arithmetic operation over integer operands.
func (in *Interpreter) evalBinary(bin *BinaryExpr, used Use) (Value, error) {
	lhs, err := in.Eval(bin.Lhs, Used)
	if err != nil {
		return nil, err
	}

	rhs, err := in.Eval(bin.Rhs, Used)
	if err != nil {
		return nil, err
	}

	li, lok := lhs.(Integer)
	ri, rok := rhs.(Integer)
	if !lok || !rok {
		return nil, &EvalError{
			Message: "binary arithmetic requires integer operands",
			Sp:      bin.Sp,
		}
	}

	switch bin.Op {
	case OpAdd:
		return li + ri, nil
	case OpSub:
		return li - ri, nil
	case OpMul:
		return li * ri, nil
	case OpDiv:
		if ri == 0 {
			return nil, &EvalError{Message: "division by zero", Sp: bin.Sp}
		}

		return li / ri, nil
	default:
		return nil, &EvalError{
			Message: fmt.Sprintf("unknown binary operation `%d`", bin.Op),
			Sp:      bin.Sp,
		}
	}
}
