package compile

import "github.com/evelant/rune/macros"

// MacroHandler is the signature of a native macro handler.  The handler
// receives the macro context and the raw tokens between the call's delimiters
// and returns an opaque output.  A conforming handler returns a
// *macros.TokenStream; any other produced type is a handler-contract
// violation detected at the expansion boundary.
type MacroHandler func(ctx *macros.MacroContext, input *macros.TokenStream) (interface{}, error)

// Context is the compilation context: it owns the registry of native macro
// handlers installed for a compilation, keyed by the content hash of their
// item path.
type Context struct {
	macros map[Hash]MacroHandler
}

// NewContext creates an empty compilation context.
func NewContext() *Context {
	return &Context{macros: make(map[Hash]MacroHandler)}
}

// RegisterMacro installs a native macro handler under the given item path.
func (c *Context) RegisterMacro(item Item, handler MacroHandler) {
	c.macros[TypeHash(item)] = handler
}

// LookupMacro looks up the registered handler for an item hash.
func (c *Context) LookupMacro(hash Hash) (MacroHandler, bool) {
	handler, ok := c.macros[hash]
	return handler, ok
}
