package compile

import (
	"strconv"

	"github.com/evelant/rune/ast"
	"github.com/evelant/rune/ir"
	"github.com/evelant/rune/report"
	"github.com/evelant/rune/syntax"
)

// LowerConst lowers a constant AST expression to its IR form.  This is the
// bridge the compiler uses wherever it needs a value known before code
// generation: the lowered IR is handed to the IR interpreter for reduction.
// Expressions outside the constant subset fail with a not-const error at the
// offending span.
func LowerConst(expr ast.Expr) (ir.Ir, error) {
	span, _ := expr.OptionSpan()

	switch e := expr.(type) {
	case *ast.Literal:
		value, err := lowerLiteral(e.Token)
		if err != nil {
			return nil, err
		}

		return &ir.LitExpr{Sp: span, Value: value}, nil
	case *ast.ExprGroup:
		return LowerConst(e.Expr)
	case *ast.ExprTuple:
		tuple := &ir.TupleExpr{Sp: span}
		for _, item := range e.Items {
			lowered, err := LowerConst(item.Expr)
			if err != nil {
				return nil, err
			}

			tuple.Items = append(tuple.Items, lowered)
		}

		return tuple, nil
	case *ast.ExprUnary:
		return lowerUnary(e, span)
	case *ast.ExprBinary:
		op, ok := constBinaryOps[e.Op.Kind]
		if !ok {
			return nil, NewNotConst(e.Op.Span, "operator %s is not constant", syntax.KindName(e.Op.Kind))
		}

		lhs, err := LowerConst(e.Lhs)
		if err != nil {
			return nil, err
		}

		rhs, err := LowerConst(e.Rhs)
		if err != nil {
			return nil, err
		}

		return &ir.BinaryExpr{Sp: span, Op: op, Lhs: lhs, Rhs: rhs}, nil
	default:
		return nil, NewNotConst(span, "expression is not constant")
	}
}

// constBinaryOps maps the binary operator token kinds of the constant subset
// to their IR operations.
var constBinaryOps = map[int]int{
	syntax.TOK_PLUS:  ir.OpAdd,
	syntax.TOK_MINUS: ir.OpSub,
	syntax.TOK_STAR:  ir.OpMul,
	syntax.TOK_DIV:   ir.OpDiv,
}

// lowerLiteral converts a literal token to its IR value.
func lowerLiteral(tok syntax.Token) (ir.Value, error) {
	switch tok.Kind {
	case syntax.TOK_INTLIT:
		n, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return nil, NewNotConst(tok.Span, "integer literal out of range")
		}

		return ir.Integer(n), nil
	case syntax.TOK_FLOATLIT:
		f, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, NewNotConst(tok.Span, "malformed float literal")
		}

		return ir.Float(f), nil
	case syntax.TOK_STRINGLIT:
		return ir.String(tok.Value), nil
	case syntax.TOK_CHARLIT:
		return ir.Integer(tok.Value[0]), nil
	case syntax.TOK_BOOLLIT:
		return ir.Bool(tok.Value == "true"), nil
	default:
		return nil, NewNotConst(tok.Span, "literal is not constant")
	}
}

// lowerUnary lowers a unary expression of the constant subset.  Negation is
// folded into the literal when possible so `-1` lowers to a literal rather
// than an operation.
func lowerUnary(e *ast.ExprUnary, span report.Span) (ir.Ir, error) {
	if e.Op.Kind != syntax.TOK_MINUS {
		return nil, NewNotConst(e.Op.Span, "operator %s is not constant", syntax.KindName(e.Op.Kind))
	}

	operand, err := LowerConst(e.Operand)
	if err != nil {
		return nil, err
	}

	if lit, ok := operand.(*ir.LitExpr); ok {
		switch v := lit.Value.(type) {
		case ir.Integer:
			return &ir.LitExpr{Sp: span, Value: -v}, nil
		case ir.Float:
			return &ir.LitExpr{Sp: span, Value: -v}, nil
		}
	}

	return &ir.BinaryExpr{
		Sp:  span,
		Op:  ir.OpSub,
		Lhs: &ir.LitExpr{Sp: e.Op.Span, Value: ir.Integer(0)},
		Rhs: operand,
	}, nil
}
