package ast

import (
	"github.com/evelant/rune/macros"
	"github.com/evelant/rune/report"
	"github.com/evelant/rune/syntax"
)

// Block is a braced sequence of expressions.  Expressions are separated by
// semicolons; a block whose final expression has no trailing semicolon
// produces that expression's value.
type Block struct {
	// The `{` token.
	Open syntax.Token

	// The expressions in the block with their trailing semicolons.
	Exprs []BlockEntry

	// The `}` token.
	Close syntax.Token
}

// BlockEntry is a single expression in a block together with its trailing
// semicolon, if one was present.
type BlockEntry struct {
	Expr Expr
	Semi *syntax.Token
}

// parseBlock parses a block.
//
// block = '{' {expr ';'} [expr] '}'
func parseBlock(p *syntax.Parser) (*Block, error) {
	block := &Block{}

	var err error
	if block.Open, err = p.Expect(syntax.TOK_LBRACE); err != nil {
		return nil, err
	}

	for !p.At(syntax.TOK_RBRACE) {
		expr, err := ParseExpr(p)
		if err != nil {
			return nil, err
		}

		entry := BlockEntry{Expr: expr}
		if p.At(syntax.TOK_SEMI) {
			semi, err := p.Next()
			if err != nil {
				return nil, err
			}

			entry.Semi = &semi
			block.Exprs = append(block.Exprs, entry)
		} else {
			// only the final expression may omit its semicolon
			block.Exprs = append(block.Exprs, entry)
			break
		}
	}

	if block.Close, err = p.Expect(syntax.TOK_RBRACE); err != nil {
		return nil, err
	}

	return block, nil
}

// Span returns the span covering the whole block.
func (b *Block) Span() report.Span {
	return b.Open.Span.Join(b.Close.Span)
}

func (b *Block) OptionSpan() (report.Span, bool) {
	return b.Span(), true
}

func (b *Block) ToTokens(ctx *macros.MacroContext, stream *macros.TokenStream) {
	stream.Push(b.Open)
	for _, entry := range b.Exprs {
		entry.Expr.ToTokens(ctx, stream)
		if entry.Semi != nil {
			stream.Push(*entry.Semi)
		}
	}

	stream.Push(b.Close)
}
