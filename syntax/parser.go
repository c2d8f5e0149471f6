package syntax

import (
	"github.com/evelant/rune/report"
	"github.com/evelant/rune/util"
)

// Parser is a cursor over a token sequence supporting bounded lookahead.  It
// is the engine underneath every AST node parser: composite parsers decide
// which grammar alternative applies by peeking at upcoming tokens (Nth, At)
// and then consume tokens (Next, Expect) to build their node.  Peeking never
// consumes; consuming never backtracks.  On a parse failure, the cursor is
// left wherever the failure occurred: callers that need to try an alternative
// must peek before consuming.
type Parser struct {
	// The tokens the parser is moving over.
	toks []Token

	// The parser's position within the tokens.
	pos int

	// The token returned once the sequence is exhausted.  Token sequences
	// produced by the lexer end with an explicit EOF token; sequences produced
	// by macro output do not, so the parser synthesizes one at the end offset
	// of the last token.
	eof Token
}

// NewParser creates a new parser over the given tokens.
func NewParser(toks []Token) *Parser {
	var eofSpan report.Span
	if len(toks) > 0 {
		eofSpan = report.Point(toks[len(toks)-1].Span.End)
	}

	return &Parser{
		toks: toks,
		eof:  Token{Kind: TOK_EOF, Span: eofSpan},
	}
}

// NewParserFromSource tokenizes an entire source and returns a parser over the
// resulting tokens.
func NewParserFromSource(src *report.Source) (*Parser, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}

	return NewParser(toks), nil
}

// Nth returns the token n positions ahead of the cursor without consuming
// anything.  Past the end of the sequence it returns the EOF token.
func (p *Parser) Nth(n int) Token {
	if p.pos+n < len(p.toks) {
		return p.toks[p.pos+n]
	}

	return p.eof
}

// At returns true if the parser is positioned on a token of a given kind.
func (p *Parser) At(kind int) bool {
	return p.Nth(0).Kind == kind
}

// AtAny returns true if the parser's current token kind is one of the given
// kinds.
func (p *Parser) AtAny(kinds ...int) bool {
	return util.Contains(kinds, p.Nth(0).Kind)
}

// Next unconditionally consumes and returns the next token, failing if the
// sequence is exhausted mid-construction.
func (p *Parser) Next() (Token, error) {
	tok := p.Nth(0)
	if tok.Kind == TOK_EOF {
		return tok, NewUnexpectedEOF(tok.Span)
	}

	p.pos++
	return tok, nil
}

// Expect consumes and returns the next token if it is of the given kind and
// fails with an expectation error otherwise.
func (p *Parser) Expect(kind int) (Token, error) {
	if p.At(kind) {
		return p.Next()
	}

	return Token{}, NewExpected(p.Nth(0), KindName(kind))
}

// ParseEOF fails unless the token sequence is fully consumed.  It is used to
// guarantee that a file or a macro's output leaves no trailing garbage.
func (p *Parser) ParseEOF() error {
	if !p.At(TOK_EOF) {
		return NewExpected(p.Nth(0), "end of input")
	}

	return nil
}

// EOFSpan returns the zero-width span at the end of the token sequence.
func (p *Parser) EOFSpan() report.Span {
	return p.eof.Span
}
