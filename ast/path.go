package ast

import (
	"strings"

	"github.com/evelant/rune/macros"
	"github.com/evelant/rune/report"
	"github.com/evelant/rune/syntax"
	"github.com/evelant/rune/util"
)

// Path is a `::`-separated item path: eg. `std::math::cos`.  The first
// segment may be one of the path keywords `crate`, `super`, or `self`.
type Path struct {
	// The first segment of the path.
	First syntax.Token

	// The remaining segments, each preceded by a `::` token.
	Rest []PathSegment
}

// PathSegment is a single `:: ident` pair in a path.
type PathSegment struct {
	ColonColon syntax.Token
	Ident      syntax.Token
}

// peekPath returns whether the upcoming token can begin a path.
func peekPath(p *syntax.Parser) bool {
	return p.AtAny(syntax.TOK_IDENT, syntax.TOK_CRATE, syntax.TOK_SUPER, syntax.TOK_SELF)
}

// parsePath parses a path.
//
// path = ('IDENTIFIER' | 'crate' | 'super' | 'self') {'::' 'IDENTIFIER'}
func parsePath(p *syntax.Parser) (*Path, error) {
	if !peekPath(p) {
		return nil, syntax.NewExpected(p.Nth(0), "path")
	}

	first, err := p.Next()
	if err != nil {
		return nil, err
	}

	path := &Path{First: first}
	for p.At(syntax.TOK_COLONCOLON) {
		colons, err := p.Next()
		if err != nil {
			return nil, err
		}

		ident, err := p.Expect(syntax.TOK_IDENT)
		if err != nil {
			return nil, err
		}

		path.Rest = append(path.Rest, PathSegment{ColonColon: colons, Ident: ident})
	}

	return path, nil
}

// Span returns the span covering the whole path.
func (path *Path) Span() report.Span {
	span := path.First.Span
	if len(path.Rest) > 0 {
		span = span.Join(path.Rest[len(path.Rest)-1].Ident.Span)
	}

	return span
}

func (path *Path) OptionSpan() (report.Span, bool) {
	return path.Span(), true
}

func (path *Path) ToTokens(ctx *macros.MacroContext, stream *macros.TokenStream) {
	stream.Push(path.First)
	for _, seg := range path.Rest {
		stream.Push(seg.ColonColon)
		stream.Push(seg.Ident)
	}
}

// Segments returns the path's segment names in order.
func (path *Path) Segments() []string {
	return append(
		[]string{path.First.Value},
		util.Map(path.Rest, func(seg PathSegment) string { return seg.Ident.Value })...,
	)
}

// String returns the `::`-joined form of the path.
func (path *Path) String() string {
	return strings.Join(path.Segments(), "::")
}
