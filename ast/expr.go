package ast

import (
	"github.com/evelant/rune/macros"
	"github.com/evelant/rune/report"
	"github.com/evelant/rune/syntax"
)

// Expr represents an expression, simple or complex.  All expression nodes
// implement the `Expr` interface.
type Expr interface {
	Node

	exprNode()
}

// ParseExpr parses an expression.
//
// expr = let_expr | return_expr | bin_op_expr
func ParseExpr(p *syntax.Parser) (Expr, error) {
	switch p.Nth(0).Kind {
	case syntax.TOK_LET:
		return parseExprLet(p)
	case syntax.TOK_RETURN:
		return parseExprReturn(p)
	default:
		return parseBinaryExpr(p, len(precTable))
	}
}

// precTable is the operator precedence table for binary operators.  The table
// is ordered highest to lowest precedence.  All binary operators are left
// associative.
var precTable = [][]int{
	{syntax.TOK_STAR, syntax.TOK_DIV, syntax.TOK_MOD},
	{syntax.TOK_PLUS, syntax.TOK_MINUS},
	{
		syntax.TOK_EQ, syntax.TOK_NEQ,
		syntax.TOK_LT, syntax.TOK_GT, syntax.TOK_LTEQ, syntax.TOK_GTEQ,
		syntax.TOK_IS,
	},
	{syntax.TOK_AND},
	{syntax.TOK_OR},
}

// parseBinaryExpr parses a binary operator expression at or above the given
// precedence level.  Level 0 parses a unary expression; level n parses the
// operators of precTable[n-1] over operands of level n-1.
//
// bin_op_expr = unary_expr {bin_op unary_expr}
func parseBinaryExpr(p *syntax.Parser, level int) (Expr, error) {
	if level == 0 {
		return parseUnaryExpr(p)
	}

	lhs, err := parseBinaryExpr(p, level-1)
	if err != nil {
		return nil, err
	}

	for p.AtAny(precTable[level-1]...) {
		op, err := p.Next()
		if err != nil {
			return nil, err
		}

		// `is` may be followed by `not`, which forms the negated type test
		// operator rather than a distinct unary operation.
		if op.Kind == syntax.TOK_IS && p.At(syntax.TOK_NOT) {
			not, err := p.Next()
			if err != nil {
				return nil, err
			}

			rhs, err := parseBinaryExpr(p, level-1)
			if err != nil {
				return nil, err
			}

			lhs = &ExprIsNot{Lhs: lhs, Is: op, Not: not, Rhs: rhs}
			continue
		}

		rhs, err := parseBinaryExpr(p, level-1)
		if err != nil {
			return nil, err
		}

		if op.Kind == syntax.TOK_IS {
			lhs = &ExprIs{Lhs: lhs, Is: op, Rhs: rhs}
		} else {
			lhs = &ExprBinary{Lhs: lhs, Op: op, Rhs: rhs}
		}
	}

	return lhs, nil
}

// parseUnaryExpr parses a unary expression.
//
// unary_expr = ['-' | '!'] atom
func parseUnaryExpr(p *syntax.Parser) (Expr, error) {
	if p.AtAny(syntax.TOK_MINUS, syntax.TOK_BANG) {
		op, err := p.Next()
		if err != nil {
			return nil, err
		}

		operand, err := parseUnaryExpr(p)
		if err != nil {
			return nil, err
		}

		return &ExprUnary{Op: op, Operand: operand}, nil
	}

	return parseAtom(p)
}

// parseAtom parses an atomic expression.
//
// atom = 'INTLIT' | 'FLOATLIT' | 'STRINGLIT' | 'CHARLIT' | 'BOOLLIT'
//   | path ['!' macro_input] | tupled_expr
func parseAtom(p *syntax.Parser) (Expr, error) {
	switch p.Nth(0).Kind {
	case syntax.TOK_INTLIT, syntax.TOK_FLOATLIT, syntax.TOK_STRINGLIT,
		syntax.TOK_CHARLIT, syntax.TOK_BOOLLIT:
		tok, err := p.Next()
		if err != nil {
			return nil, err
		}

		return &Literal{Token: tok}, nil
	case syntax.TOK_IDENT, syntax.TOK_CRATE, syntax.TOK_SUPER, syntax.TOK_SELF:
		path, err := parsePath(p)
		if err != nil {
			return nil, err
		}

		// a `!` after a path in expression position is a macro call
		if p.At(syntax.TOK_BANG) {
			call, err := parseMacroCallWithPath(p, path)
			if err != nil {
				return nil, err
			}

			return &ExprMacroCall{Call: call}, nil
		}

		return &ExprPath{Path: path}, nil
	case syntax.TOK_LPAREN:
		return parseTupledExpr(p)
	}

	return nil, syntax.NewExpected(p.Nth(0), "expression")
}

// parseTupledExpr parses a parenthesized expression: the unit literal `()`, a
// grouped expression `(e)`, or a tuple literal `(e, ...)`.
//
// tupled_expr = '(' [expr {',' expr} [',']] ')'
func parseTupledExpr(p *syntax.Parser) (Expr, error) {
	open, err := p.Expect(syntax.TOK_LPAREN)
	if err != nil {
		return nil, err
	}

	var items []TupleItem
	sawComma := false
	for !p.At(syntax.TOK_RPAREN) {
		expr, err := ParseExpr(p)
		if err != nil {
			return nil, err
		}

		item := TupleItem{Expr: expr}
		if p.At(syntax.TOK_COMMA) {
			comma, err := p.Next()
			if err != nil {
				return nil, err
			}

			item.Comma = &comma
			sawComma = true
			items = append(items, item)
		} else {
			items = append(items, item)
			break
		}
	}

	close, err := p.Expect(syntax.TOK_RPAREN)
	if err != nil {
		return nil, err
	}

	// a single expression with no comma is a grouping, not a tuple
	if len(items) == 1 && !sawComma {
		return &ExprGroup{Open: open, Expr: items[0].Expr, Close: close}, nil
	}

	return &ExprTuple{Open: open, Items: items, Close: close}, nil
}

// -----------------------------------------------------------------------------

// Literal is a literal expression: an integer, float, string, char, or bool
// token.
type Literal struct {
	// The literal token.
	Token syntax.Token
}

func (l *Literal) OptionSpan() (report.Span, bool) {
	return l.Token.Span, true
}

func (l *Literal) ToTokens(ctx *macros.MacroContext, stream *macros.TokenStream) {
	stream.Push(l.Token)
}

func (l *Literal) exprNode() {}

// ExprPath is a reference to an item or variable by path.
type ExprPath struct {
	Path *Path
}

func (e *ExprPath) OptionSpan() (report.Span, bool) {
	return e.Path.Span(), true
}

func (e *ExprPath) ToTokens(ctx *macros.MacroContext, stream *macros.TokenStream) {
	e.Path.ToTokens(ctx, stream)
}

func (e *ExprPath) exprNode() {}

// ExprUnary is a unary operator application.
type ExprUnary struct {
	// The operator token.
	Op syntax.Token

	// The operand.
	Operand Expr
}

func (e *ExprUnary) OptionSpan() (report.Span, bool) {
	span := e.Op.Span
	if s, ok := e.Operand.OptionSpan(); ok {
		span = span.Join(s)
	}

	return span, true
}

func (e *ExprUnary) ToTokens(ctx *macros.MacroContext, stream *macros.TokenStream) {
	stream.Push(e.Op)
	e.Operand.ToTokens(ctx, stream)
}

func (e *ExprUnary) exprNode() {}

// ExprBinary is a binary operator application.
type ExprBinary struct {
	// The left-hand side of the operation.
	Lhs Expr

	// The operator token.
	Op syntax.Token

	// The right-hand side of the operation.
	Rhs Expr
}

func (e *ExprBinary) OptionSpan() (report.Span, bool) {
	return binarySpan(e.Lhs, e.Op, e.Rhs), true
}

func (e *ExprBinary) ToTokens(ctx *macros.MacroContext, stream *macros.TokenStream) {
	e.Lhs.ToTokens(ctx, stream)
	stream.Push(e.Op)
	e.Rhs.ToTokens(ctx, stream)
}

func (e *ExprBinary) exprNode() {}

// ExprIs is a type test expression: `value is Type`.
type ExprIs struct {
	// The left-hand side of the is operation.
	Lhs Expr

	// The `is` keyword.
	Is syntax.Token

	// The right-hand side of the is operation.
	Rhs Expr
}

func (e *ExprIs) OptionSpan() (report.Span, bool) {
	return binarySpan(e.Lhs, e.Is, e.Rhs), true
}

func (e *ExprIs) ToTokens(ctx *macros.MacroContext, stream *macros.TokenStream) {
	e.Lhs.ToTokens(ctx, stream)
	stream.Push(e.Is)
	e.Rhs.ToTokens(ctx, stream)
}

func (e *ExprIs) exprNode() {}

// ExprIsNot is a negated type test expression: `value is not Type`.
type ExprIsNot struct {
	// The left-hand side of the is operation.
	Lhs Expr

	// The `is` keyword.
	Is syntax.Token

	// The `not` keyword.
	Not syntax.Token

	// The right-hand side of the is operation.
	Rhs Expr
}

func (e *ExprIsNot) OptionSpan() (report.Span, bool) {
	return binarySpan(e.Lhs, e.Is, e.Rhs), true
}

func (e *ExprIsNot) ToTokens(ctx *macros.MacroContext, stream *macros.TokenStream) {
	e.Lhs.ToTokens(ctx, stream)
	stream.Push(e.Is)
	stream.Push(e.Not)
	e.Rhs.ToTokens(ctx, stream)
}

func (e *ExprIsNot) exprNode() {}

// binarySpan joins the spans of a binary expression's operands and operator.
func binarySpan(lhs Expr, op syntax.Token, rhs Expr) report.Span {
	span := op.Span
	if s, ok := lhs.OptionSpan(); ok {
		span = span.Join(s)
	}

	if s, ok := rhs.OptionSpan(); ok {
		span = span.Join(s)
	}

	return span
}

// ExprGroup is a parenthesized expression.
type ExprGroup struct {
	// The `(` token.
	Open syntax.Token

	// The grouped expression.
	Expr Expr

	// The `)` token.
	Close syntax.Token
}

func (e *ExprGroup) OptionSpan() (report.Span, bool) {
	return e.Open.Span.Join(e.Close.Span), true
}

func (e *ExprGroup) ToTokens(ctx *macros.MacroContext, stream *macros.TokenStream) {
	stream.Push(e.Open)
	e.Expr.ToTokens(ctx, stream)
	stream.Push(e.Close)
}

func (e *ExprGroup) exprNode() {}

// ExprTuple is a tuple literal, including the unit literal `()`.
type ExprTuple struct {
	// The `(` token.
	Open syntax.Token

	// The tuple elements.
	Items []TupleItem

	// The `)` token.
	Close syntax.Token
}

// TupleItem is a single tuple element together with the comma that follows
// it, if one was present.
type TupleItem struct {
	Expr  Expr
	Comma *syntax.Token
}

func (e *ExprTuple) OptionSpan() (report.Span, bool) {
	return e.Open.Span.Join(e.Close.Span), true
}

func (e *ExprTuple) ToTokens(ctx *macros.MacroContext, stream *macros.TokenStream) {
	stream.Push(e.Open)
	for _, item := range e.Items {
		item.Expr.ToTokens(ctx, stream)
		if item.Comma != nil {
			stream.Push(*item.Comma)
		}
	}

	stream.Push(e.Close)
}

func (e *ExprTuple) exprNode() {}

// ExprLet is a variable binding expression.
type ExprLet struct {
	// The `let` keyword.
	Let syntax.Token

	// The bound name.
	Name syntax.Token

	// The `=` token.
	Eq syntax.Token

	// The bound value.
	Value Expr
}

// parseExprLet parses a let binding.
//
// let_expr = 'let' 'IDENTIFIER' '=' expr
func parseExprLet(p *syntax.Parser) (*ExprLet, error) {
	let := &ExprLet{}

	var err error
	if let.Let, err = p.Expect(syntax.TOK_LET); err != nil {
		return nil, err
	}

	if let.Name, err = p.Expect(syntax.TOK_IDENT); err != nil {
		return nil, err
	}

	if let.Eq, err = p.Expect(syntax.TOK_ASSIGN); err != nil {
		return nil, err
	}

	if let.Value, err = ParseExpr(p); err != nil {
		return nil, err
	}

	return let, nil
}

func (e *ExprLet) OptionSpan() (report.Span, bool) {
	span := e.Let.Span.Join(e.Eq.Span)
	if s, ok := e.Value.OptionSpan(); ok {
		span = span.Join(s)
	}

	return span, true
}

func (e *ExprLet) ToTokens(ctx *macros.MacroContext, stream *macros.TokenStream) {
	stream.Push(e.Let)
	stream.Push(e.Name)
	stream.Push(e.Eq)
	e.Value.ToTokens(ctx, stream)
}

func (e *ExprLet) exprNode() {}

// ExprReturn is an early return expression.
type ExprReturn struct {
	// The `return` keyword.
	Return syntax.Token

	// The returned value, if any.
	Value Expr
}

// parseExprReturn parses a return expression.  The return value is only
// parsed if the next token can begin an expression.
//
// return_expr = 'return' [expr]
func parseExprReturn(p *syntax.Parser) (*ExprReturn, error) {
	ret, err := p.Expect(syntax.TOK_RETURN)
	if err != nil {
		return nil, err
	}

	e := &ExprReturn{Return: ret}
	if peekExpr(p) {
		if e.Value, err = ParseExpr(p); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// peekExpr returns whether the upcoming token can begin an expression.
func peekExpr(p *syntax.Parser) bool {
	return p.AtAny(
		syntax.TOK_INTLIT, syntax.TOK_FLOATLIT, syntax.TOK_STRINGLIT,
		syntax.TOK_CHARLIT, syntax.TOK_BOOLLIT,
		syntax.TOK_IDENT, syntax.TOK_CRATE, syntax.TOK_SUPER, syntax.TOK_SELF,
		syntax.TOK_LPAREN, syntax.TOK_MINUS, syntax.TOK_BANG,
		syntax.TOK_LET, syntax.TOK_RETURN,
	)
}

func (e *ExprReturn) OptionSpan() (report.Span, bool) {
	span := e.Return.Span
	if e.Value != nil {
		if s, ok := e.Value.OptionSpan(); ok {
			span = span.Join(s)
		}
	}

	return span, true
}

func (e *ExprReturn) ToTokens(ctx *macros.MacroContext, stream *macros.TokenStream) {
	stream.Push(e.Return)
	if e.Value != nil {
		e.Value.ToTokens(ctx, stream)
	}
}

func (e *ExprReturn) exprNode() {}

// ExprMacroCall is a macro call in expression position.
type ExprMacroCall struct {
	// The macro call itself.
	Call *MacroCall
}

func (e *ExprMacroCall) OptionSpan() (report.Span, bool) {
	return e.Call.Span(), true
}

func (e *ExprMacroCall) ToTokens(ctx *macros.MacroContext, stream *macros.TokenStream) {
	e.Call.ToTokens(ctx, stream)
}

func (e *ExprMacroCall) exprNode() {}
