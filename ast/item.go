package ast

import (
	"github.com/evelant/rune/macros"
	"github.com/evelant/rune/report"
	"github.com/evelant/rune/syntax"
)

// Item is the interface implemented by all top-level items.
type Item interface {
	Node

	// NeedsSemiColon returns whether the item's own grammar mandates a
	// trailing semicolon.
	NeedsSemiColon() bool

	itemNode()
}

// peekItem returns whether the upcoming token can begin an item, assuming any
// attribute/visibility prefix has already been consumed.
func peekItem(p *syntax.Parser) bool {
	return p.AtAny(syntax.TOK_FN, syntax.TOK_USE, syntax.TOK_CONST)
}

// parseOptionalItemPath parses the optional leading path of an item-position
// macro call, returning nil when no path is present.
func parseOptionalItemPath(p *syntax.Parser) (*Path, error) {
	if !peekPath(p) {
		return nil, nil
	}

	return parsePath(p)
}

// ParseItem parses a single item, including its attribute and visibility
// prefix.
func ParseItem(p *syntax.Parser) (Item, error) {
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

	return parseItemWithMeta(p, attrs, vis, path)
}

// parseItemWithMeta parses a full item using an already-consumed
// attribute/visibility/path prefix.  A non-nil path means the item is a
// macro call in item position.
//
// item = item_fn | item_use | item_const | path '!' macro_input
func parseItemWithMeta(p *syntax.Parser, attrs []*Attribute, vis *Visibility, path *Path) (Item, error) {
	if path != nil {
		call, err := parseMacroCallWithPath(p, path)
		if err != nil {
			return nil, err
		}

		return &ItemMacroCall{Attributes: attrs, Visibility: vis, Call: call}, nil
	}

	switch p.Nth(0).Kind {
	case syntax.TOK_FN:
		return parseItemFn(p, attrs, vis)
	case syntax.TOK_USE:
		return parseItemUse(p, attrs, vis)
	case syntax.TOK_CONST:
		return parseItemConst(p, attrs, vis)
	default:
		return nil, syntax.NewExpected(p.Nth(0), "item")
	}
}

// itemMetaSpan joins the spans of an item's attribute/visibility prefix with
// the spans of its own tokens.
func itemMetaSpan(attrs []*Attribute, vis *Visibility, first, last report.Span) report.Span {
	span := first.Join(last)
	if s, ok := attributesSpan(attrs); ok {
		span = span.Join(s)
	}

	if s, ok := vis.OptionSpan(); ok {
		span = span.Join(s)
	}

	return span
}

// itemMetaToTokens emits an item's attribute/visibility prefix.
func itemMetaToTokens(ctx *macros.MacroContext, stream *macros.TokenStream, attrs []*Attribute, vis *Visibility) {
	for _, attr := range attrs {
		attr.ToTokens(ctx, stream)
	}

	vis.ToTokens(ctx, stream)
}

// -----------------------------------------------------------------------------

// ItemFn is a function declaration.
type ItemFn struct {
	Attributes []*Attribute
	Visibility *Visibility

	// The `fn` keyword.
	Fn syntax.Token

	// The name of the function.
	Name syntax.Token

	// The `(` token.
	Open syntax.Token

	// The function arguments.
	Args []FnArg

	// The `)` token.
	Close syntax.Token

	// The function body.
	Body *Block
}

// FnArg is a single function argument together with the comma that follows
// it, if one was present.
type FnArg struct {
	Name  syntax.Token
	Comma *syntax.Token
}

// parseItemFn parses a function item.
//
// item_fn = 'fn' 'IDENTIFIER' '(' [arg {',' arg} [',']] ')' block
func parseItemFn(p *syntax.Parser, attrs []*Attribute, vis *Visibility) (*ItemFn, error) {
	fn := &ItemFn{Attributes: attrs, Visibility: vis}

	var err error
	if fn.Fn, err = p.Expect(syntax.TOK_FN); err != nil {
		return nil, err
	}

	if fn.Name, err = p.Expect(syntax.TOK_IDENT); err != nil {
		return nil, err
	}

	if fn.Open, err = p.Expect(syntax.TOK_LPAREN); err != nil {
		return nil, err
	}

	for !p.At(syntax.TOK_RPAREN) {
		name, err := p.Expect(syntax.TOK_IDENT)
		if err != nil {
			return nil, err
		}

		arg := FnArg{Name: name}
		if p.At(syntax.TOK_COMMA) {
			comma, err := p.Next()
			if err != nil {
				return nil, err
			}

			arg.Comma = &comma
			fn.Args = append(fn.Args, arg)
		} else {
			fn.Args = append(fn.Args, arg)
			break
		}
	}

	if fn.Close, err = p.Expect(syntax.TOK_RPAREN); err != nil {
		return nil, err
	}

	if fn.Body, err = parseBlock(p); err != nil {
		return nil, err
	}

	return fn, nil
}

func (fn *ItemFn) NeedsSemiColon() bool {
	return false
}

func (fn *ItemFn) OptionSpan() (report.Span, bool) {
	return itemMetaSpan(fn.Attributes, fn.Visibility, fn.Fn.Span, fn.Body.Span()), true
}

func (fn *ItemFn) ToTokens(ctx *macros.MacroContext, stream *macros.TokenStream) {
	itemMetaToTokens(ctx, stream, fn.Attributes, fn.Visibility)

	stream.Push(fn.Fn)
	stream.Push(fn.Name)
	stream.Push(fn.Open)
	for _, arg := range fn.Args {
		stream.Push(arg.Name)
		if arg.Comma != nil {
			stream.Push(*arg.Comma)
		}
	}

	stream.Push(fn.Close)
	fn.Body.ToTokens(ctx, stream)
}

func (fn *ItemFn) itemNode() {}

// -----------------------------------------------------------------------------

// ItemUse is a `use` import declaration.
type ItemUse struct {
	Attributes []*Attribute
	Visibility *Visibility

	// The `use` keyword.
	Use syntax.Token

	// The imported path.
	Path *Path
}

// parseItemUse parses a use item.
//
// item_use = 'use' path
func parseItemUse(p *syntax.Parser, attrs []*Attribute, vis *Visibility) (*ItemUse, error) {
	use, err := p.Expect(syntax.TOK_USE)
	if err != nil {
		return nil, err
	}

	path, err := parsePath(p)
	if err != nil {
		return nil, err
	}

	return &ItemUse{Attributes: attrs, Visibility: vis, Use: use, Path: path}, nil
}

func (u *ItemUse) NeedsSemiColon() bool {
	return true
}

func (u *ItemUse) OptionSpan() (report.Span, bool) {
	return itemMetaSpan(u.Attributes, u.Visibility, u.Use.Span, u.Path.Span()), true
}

func (u *ItemUse) ToTokens(ctx *macros.MacroContext, stream *macros.TokenStream) {
	itemMetaToTokens(ctx, stream, u.Attributes, u.Visibility)
	stream.Push(u.Use)
	u.Path.ToTokens(ctx, stream)
}

func (u *ItemUse) itemNode() {}

// -----------------------------------------------------------------------------

// ItemConst is a compile-time constant declaration.
type ItemConst struct {
	Attributes []*Attribute
	Visibility *Visibility

	// The `const` keyword.
	Const syntax.Token

	// The name of the constant.
	Name syntax.Token

	// The `=` token.
	Eq syntax.Token

	// The constant initializer expression.
	Value Expr
}

// parseItemConst parses a constant item.
//
// item_const = 'const' 'IDENTIFIER' '=' expr
func parseItemConst(p *syntax.Parser, attrs []*Attribute, vis *Visibility) (*ItemConst, error) {
	c := &ItemConst{Attributes: attrs, Visibility: vis}

	var err error
	if c.Const, err = p.Expect(syntax.TOK_CONST); err != nil {
		return nil, err
	}

	if c.Name, err = p.Expect(syntax.TOK_IDENT); err != nil {
		return nil, err
	}

	if c.Eq, err = p.Expect(syntax.TOK_ASSIGN); err != nil {
		return nil, err
	}

	if c.Value, err = ParseExpr(p); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *ItemConst) NeedsSemiColon() bool {
	return true
}

func (c *ItemConst) OptionSpan() (report.Span, bool) {
	end := c.Eq.Span
	if s, ok := c.Value.OptionSpan(); ok {
		end = s
	}

	return itemMetaSpan(c.Attributes, c.Visibility, c.Const.Span, end), true
}

func (c *ItemConst) ToTokens(ctx *macros.MacroContext, stream *macros.TokenStream) {
	itemMetaToTokens(ctx, stream, c.Attributes, c.Visibility)
	stream.Push(c.Const)
	stream.Push(c.Name)
	stream.Push(c.Eq)
	c.Value.ToTokens(ctx, stream)
}

func (c *ItemConst) itemNode() {}

// -----------------------------------------------------------------------------

// ItemMacroCall is a macro call in item position.
type ItemMacroCall struct {
	Attributes []*Attribute
	Visibility *Visibility

	// The macro call itself.
	Call *MacroCall
}

func (m *ItemMacroCall) NeedsSemiColon() bool {
	return true
}

func (m *ItemMacroCall) OptionSpan() (report.Span, bool) {
	return itemMetaSpan(m.Attributes, m.Visibility, m.Call.Span(), m.Call.Span()), true
}

func (m *ItemMacroCall) ToTokens(ctx *macros.MacroContext, stream *macros.TokenStream) {
	itemMetaToTokens(ctx, stream, m.Attributes, m.Visibility)
	m.Call.ToTokens(ctx, stream)
}

func (m *ItemMacroCall) itemNode() {}
