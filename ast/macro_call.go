package ast

import (
	"github.com/evelant/rune/macros"
	"github.com/evelant/rune/report"
	"github.com/evelant/rune/syntax"
)

// MacroCall is a macro call: a path, a `!`, and a delimited group of raw
// input tokens.  The input tokens are deliberately unparsed: they are handed
// to the registered native handler verbatim, and only the handler's output is
// reparsed into the node type the call site expects.
type MacroCall struct {
	// The path naming the macro.  The path may be relative to the enclosing
	// item scope; it is resolved during expansion.
	Path *Path

	// The `!` token.
	Bang syntax.Token

	// The opening delimiter: one of `(`, `[`, `{`.
	Open syntax.Token

	// The raw tokens between the delimiters.
	Input *macros.TokenStream

	// The closing delimiter.
	Close syntax.Token
}

// openDelims maps opening delimiter kinds to their closing counterparts.
var openDelims = map[int]int{
	syntax.TOK_LPAREN:   syntax.TOK_RPAREN,
	syntax.TOK_LBRACKET: syntax.TOK_RBRACKET,
	syntax.TOK_LBRACE:   syntax.TOK_RBRACE,
}

// parseMacroCallWithPath parses a macro call whose path has already been
// consumed.
//
// macro_call = path '!' ('(' {token} ')' | '[' {token} ']' | '{' {token} '}')
func parseMacroCallWithPath(p *syntax.Parser, path *Path) (*MacroCall, error) {
	call := &MacroCall{Path: path, Input: macros.NewTokenStream()}

	var err error
	if call.Bang, err = p.Expect(syntax.TOK_BANG); err != nil {
		return nil, err
	}

	if !p.AtAny(syntax.TOK_LPAREN, syntax.TOK_LBRACKET, syntax.TOK_LBRACE) {
		return nil, syntax.NewExpected(p.Nth(0), "macro delimiter")
	}

	if call.Open, err = p.Next(); err != nil {
		return nil, err
	}

	closeKind := openDelims[call.Open.Kind]

	// collect the raw input, balancing every kind of nested delimiter
	depth := 0
	for depth > 0 || p.Nth(0).Kind != closeKind {
		tok, err := p.Next()
		if err != nil {
			return nil, err
		}

		if _, ok := openDelims[tok.Kind]; ok {
			depth++
		} else if tok.Kind == syntax.TOK_RPAREN ||
			tok.Kind == syntax.TOK_RBRACKET ||
			tok.Kind == syntax.TOK_RBRACE {
			depth--
		}

		call.Input.Push(tok)
	}

	if call.Close, err = p.Expect(closeKind); err != nil {
		return nil, err
	}

	return call, nil
}

// Span returns the span covering the whole macro call.
func (call *MacroCall) Span() report.Span {
	return call.Path.Span().Join(call.Close.Span)
}

func (call *MacroCall) OptionSpan() (report.Span, bool) {
	return call.Span(), true
}

func (call *MacroCall) ToTokens(ctx *macros.MacroContext, stream *macros.TokenStream) {
	call.Path.ToTokens(ctx, stream)
	stream.Push(call.Bang)
	stream.Push(call.Open)
	stream.Extend(call.Input)
	stream.Push(call.Close)
}
