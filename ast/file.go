package ast

import (
	"github.com/evelant/rune/macros"
	"github.com/evelant/rune/report"
	"github.com/evelant/rune/syntax"
)

// File is a fully parsed source file.
type File struct {
	// The optional top-level shebang line.
	Shebang *Shebang

	// The file-level `#![...]` attributes.  These are only accepted at the
	// very top of the file, before any item.
	Attributes []*Attribute

	// All the items in the file, each with its optional trailing semicolon.
	Items []FileItem
}

// FileItem is a single item in a file together with its trailing semicolon, if
// one was present.
type FileItem struct {
	Item Item
	Semi *syntax.Token
}

// ParseFile parses a file.  It does not require the token sequence to be
// fully consumed: when parsing a whole file rather than a fragment, that is
// the caller's responsibility (see ParseText).
//
// file = [shebang] {inner_attribute} {item [';']}
func ParseFile(p *syntax.Parser) (*File, error) {
	file := &File{}

	// The shebang is peeked exactly once, at the very start.
	if p.At(syntax.TOK_SHEBANG) {
		shebang, err := parseShebang(p)
		if err != nil {
			return nil, err
		}

		file.Shebang = shebang
	}

	// File-level attributes are only allowed at the top of the file: once an
	// item-level construct appears, no further ones are accepted.
	for peekInnerAttribute(p) {
		attr, err := parseAttribute(p)
		if err != nil {
			return nil, err
		}

		file.Attributes = append(file.Attributes, attr)
	}

	// Each iteration speculatively parses the (attributes, visibility, path)
	// prefix of an item, then decides whether an item actually follows.
	attrs, err := parseOuterAttributes(p)
	if err != nil {
		return nil, err
	}

	vis, err := parseVisibility(p)
	if err != nil {
		return nil, err
	}

	path, err := parseOptionalItemPath(p)
	if err != nil {
		return nil, err
	}

	for path != nil || peekItem(p) {
		item, err := parseItemWithMeta(p, attrs, vis, path)
		if err != nil {
			return nil, err
		}

		// An item takes a trailing `;` either because its own grammar mandates
		// one or because one is optionally present.
		var semi *syntax.Token
		if item.NeedsSemiColon() || p.At(syntax.TOK_SEMI) {
			tok, err := p.Expect(syntax.TOK_SEMI)
			if err != nil {
				return nil, err
			}

			semi = &tok
		}

		file.Items = append(file.Items, FileItem{Item: item, Semi: semi})

		if attrs, err = parseOuterAttributes(p); err != nil {
			return nil, err
		}

		if vis, err = parseVisibility(p); err != nil {
			return nil, err
		}

		if path, err = parseOptionalItemPath(p); err != nil {
			return nil, err
		}
	}

	// A file must not end with dangling attributes or visibility that attach
	// to nothing.  Attributes are checked before visibility.
	if span, ok := attributesSpan(attrs); ok {
		return nil, syntax.NewUnsupported(span, "attributes")
	}

	if span, ok := vis.OptionSpan(); ok {
		return nil, syntax.NewUnsupported(span, "visibility")
	}

	return file, nil
}

func (f *File) OptionSpan() (report.Span, bool) {
	var span report.Span
	ok := false

	if f.Shebang != nil {
		span, ok = f.Shebang.Span, true
	}

	if s, sok := attributesSpan(f.Attributes); sok {
		span, ok = report.JoinOption(span, ok, s, true)
	}

	for _, entry := range f.Items {
		if s, sok := entry.Item.OptionSpan(); sok {
			span, ok = report.JoinOption(span, ok, s, true)
		}

		if entry.Semi != nil {
			span, ok = report.JoinOption(span, ok, entry.Semi.Span, true)
		}
	}

	return span, ok
}

func (f *File) ToTokens(ctx *macros.MacroContext, stream *macros.TokenStream) {
	if f.Shebang != nil {
		f.Shebang.ToTokens(ctx, stream)
	}

	for _, attr := range f.Attributes {
		attr.ToTokens(ctx, stream)
	}

	for _, entry := range f.Items {
		entry.Item.ToTokens(ctx, stream)
		if entry.Semi != nil {
			stream.Push(*entry.Semi)
		}
	}
}

// -----------------------------------------------------------------------------

// Shebang is the `#!...` line at the very top of a file.
type Shebang struct {
	// The span of the whole shebang line.
	Span report.Span

	// The text of the line after the `#!` marker.
	Source string
}

// parseShebang parses a shebang token into its node.
func parseShebang(p *syntax.Parser) (*Shebang, error) {
	tok, err := p.Expect(syntax.TOK_SHEBANG)
	if err != nil {
		return nil, err
	}

	return &Shebang{Span: tok.Span, Source: tok.Value}, nil
}

func (s *Shebang) OptionSpan() (report.Span, bool) {
	return s.Span, true
}

func (s *Shebang) ToTokens(ctx *macros.MacroContext, stream *macros.TokenStream) {
	stream.Push(syntax.Token{
		Kind:  syntax.TOK_SHEBANG,
		Value: s.Source,
		Span:  s.Span,
	})
}

// -----------------------------------------------------------------------------

// Attribute is a `#[...]` or `#![...]` attribute.  The tokens between the
// brackets are kept raw: attributes are opaque to the parser and are only
// interpreted by later compilation passes.
type Attribute struct {
	// The leading `#` token.
	Pound syntax.Token

	// The `!` token of an inner (file-level) attribute.  Nil for outer
	// attributes.
	Bang *syntax.Token

	// The `[` token.
	Open syntax.Token

	// The raw tokens between the brackets.  Bracket pairs inside the
	// attribute are balanced but otherwise uninterpreted.
	Input []syntax.Token

	// The `]` token.
	Close syntax.Token
}

// peekOuterAttribute returns whether the upcoming tokens begin an outer
// attribute: `#` `[`.
func peekOuterAttribute(p *syntax.Parser) bool {
	return p.At(syntax.TOK_POUND) && p.Nth(1).Kind == syntax.TOK_LBRACKET
}

// peekInnerAttribute returns whether the upcoming tokens begin an inner
// attribute: `#` `!` `[`.
func peekInnerAttribute(p *syntax.Parser) bool {
	return p.At(syntax.TOK_POUND) &&
		p.Nth(1).Kind == syntax.TOK_BANG &&
		p.Nth(2).Kind == syntax.TOK_LBRACKET
}

// parseAttribute parses an outer or inner attribute.
//
// attribute = '#' ['!'] '[' {token} ']'
func parseAttribute(p *syntax.Parser) (*Attribute, error) {
	pound, err := p.Expect(syntax.TOK_POUND)
	if err != nil {
		return nil, err
	}

	attr := &Attribute{Pound: pound}

	if p.At(syntax.TOK_BANG) {
		bang, err := p.Next()
		if err != nil {
			return nil, err
		}

		attr.Bang = &bang
	}

	if attr.Open, err = p.Expect(syntax.TOK_LBRACKET); err != nil {
		return nil, err
	}

	// collect the raw attribute body, balancing nested brackets
	depth := 0
	for depth > 0 || !p.At(syntax.TOK_RBRACKET) {
		tok, err := p.Next()
		if err != nil {
			return nil, err
		}

		switch tok.Kind {
		case syntax.TOK_LBRACKET:
			depth++
		case syntax.TOK_RBRACKET:
			depth--
		}

		attr.Input = append(attr.Input, tok)
	}

	if attr.Close, err = p.Expect(syntax.TOK_RBRACKET); err != nil {
		return nil, err
	}

	return attr, nil
}

// parseOuterAttributes parses zero or more outer attributes.
func parseOuterAttributes(p *syntax.Parser) ([]*Attribute, error) {
	var attrs []*Attribute
	for peekOuterAttribute(p) {
		attr, err := parseAttribute(p)
		if err != nil {
			return nil, err
		}

		attrs = append(attrs, attr)
	}

	return attrs, nil
}

// attributesSpan returns the joined span of a (possibly empty) attribute
// list.
func attributesSpan(attrs []*Attribute) (report.Span, bool) {
	var span report.Span
	ok := false

	for _, attr := range attrs {
		s, _ := attr.OptionSpan()
		span, ok = report.JoinOption(span, ok, s, true)
	}

	return span, ok
}

func (a *Attribute) OptionSpan() (report.Span, bool) {
	return a.Pound.Span.Join(a.Close.Span), true
}

func (a *Attribute) ToTokens(ctx *macros.MacroContext, stream *macros.TokenStream) {
	stream.Push(a.Pound)
	if a.Bang != nil {
		stream.Push(*a.Bang)
	}

	stream.Push(a.Open)
	for _, tok := range a.Input {
		stream.Push(tok)
	}

	stream.Push(a.Close)
}

// -----------------------------------------------------------------------------

// Visibility is the visibility marker preceding an item.  The zero value (no
// `pub` token) is inherited (private) visibility, which occupies no source
// range.
type Visibility struct {
	// The `pub` token, or nil for inherited visibility.
	Pub *syntax.Token
}

// parseVisibility parses an optional visibility marker.
//
// visibility = ['pub']
func parseVisibility(p *syntax.Parser) (*Visibility, error) {
	if p.At(syntax.TOK_PUB) {
		tok, err := p.Next()
		if err != nil {
			return nil, err
		}

		return &Visibility{Pub: &tok}, nil
	}

	return &Visibility{}, nil
}

// IsPublic returns whether the visibility marker makes the item public.
func (v *Visibility) IsPublic() bool {
	return v.Pub != nil
}

func (v *Visibility) OptionSpan() (report.Span, bool) {
	if v.Pub != nil {
		return v.Pub.Span, true
	}

	return report.Span{}, false
}

func (v *Visibility) ToTokens(ctx *macros.MacroContext, stream *macros.TokenStream) {
	if v.Pub != nil {
		stream.Push(*v.Pub)
	}
}
