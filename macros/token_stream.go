// Package macros contains the exchange types threaded between the parser and
// native macro handlers: the token stream handlers read and write, and the
// transient context through which the compiler scopes span information around
// each handler invocation.
package macros

import (
	"github.com/evelant/rune/report"
	"github.com/evelant/rune/syntax"
)

// TokenStream is an ordered, append-only sequence of tokens.  Token streams
// are produced either by tokenizing source text or by an AST node re-emitting
// itself ("quoting").  Order is semantically significant: reparsing a stream
// must reproduce an equivalent AST.
type TokenStream struct {
	toks []syntax.Token
}

// NewTokenStream creates a token stream over the given tokens.
func NewTokenStream(toks ...syntax.Token) *TokenStream {
	return &TokenStream{toks: toks}
}

// Push appends a token to the end of the stream.
func (ts *TokenStream) Push(tok syntax.Token) {
	ts.toks = append(ts.toks, tok)
}

// Extend appends all the tokens of another stream to the end of the stream.
func (ts *TokenStream) Extend(other *TokenStream) {
	ts.toks = append(ts.toks, other.toks...)
}

// Len returns the number of tokens in the stream.
func (ts *TokenStream) Len() int {
	return len(ts.toks)
}

// Tokens returns the tokens of the stream in order.  The returned slice must
// not be mutated.
func (ts *TokenStream) Tokens() []syntax.Token {
	return ts.toks
}

// OptionSpan returns the span covering every token in the stream, or reports
// absence for an empty stream.
func (ts *TokenStream) OptionSpan() (report.Span, bool) {
	if len(ts.toks) == 0 {
		return report.Span{}, false
	}

	span := ts.toks[0].Span
	for _, tok := range ts.toks[1:] {
		span = span.Join(tok.Span)
	}

	return span, true
}

// Parser returns a fresh parser positioned at the start of the stream.
func (ts *TokenStream) Parser() *syntax.Parser {
	return syntax.NewParser(ts.toks)
}
