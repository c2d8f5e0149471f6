// Package ast defines the syntax tree of the Rune language.  Every node is
// polymorphic over two symmetric capabilities: it can be parsed from a token
// cursor, and it can re-emit itself as an equivalent token sequence
// ("quoting").  The second capability is what allows macro-generated code to
// be spliced back into the tree: a handler's output stream is reparsed into
// the node type the call site expects.
//
// Nodes own their children outright: the tree is a strict ownership hierarchy
// with no sharing and no cycles.
package ast

import (
	"github.com/evelant/rune/macros"
	"github.com/evelant/rune/report"
	"github.com/evelant/rune/syntax"
)

// Node is the interface implemented by all AST nodes.
type Node interface {
	report.OptionSpanned

	// ToTokens emits the node as an equivalent token sequence into the given
	// stream.  Tokens the node took from the source keep their original spans;
	// synthesized tokens are stamped from the macro context.
	ToTokens(ctx *macros.MacroContext, stream *macros.TokenStream)
}

// ParseFn is the signature shared by every node parse entry point.  A parse
// function consumes tokens from the cursor to build its node; on failure the
// cursor is left where the failure occurred.
type ParseFn[T Node] func(p *syntax.Parser) (T, error)

// ParseText tokenizes a whole source, parses it as a file, and requires that
// every token is consumed.
func ParseText(src *report.Source) (*File, error) {
	p, err := syntax.NewParserFromSource(src)
	if err != nil {
		return nil, err
	}

	file, err := ParseFile(p)
	if err != nil {
		return nil, err
	}

	if err := p.ParseEOF(); err != nil {
		return nil, err
	}

	return file, nil
}
