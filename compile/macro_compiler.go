package compile

import (
	"errors"
	"fmt"

	"github.com/evelant/rune/ast"
	"github.com/evelant/rune/macros"
	"github.com/evelant/rune/report"
	"github.com/evelant/rune/syntax"
)

// MacroCompiler expands macro calls at compile time.  One macro compiler
// exists per item scope being compiled; expansion is a plain synchronous call
// on the compile pass's single logical call stack.
type MacroCompiler struct {
	// The item scope the macro call occurs in.  Call-site paths are resolved
	// relative to this item.
	Item Item

	// The macro context threaded through handler invocations.
	MacroCtx *macros.MacroContext

	// The options of the current compilation.
	Options *Options

	// The compilation context holding the macro registry.
	Context *Context

	// The compilation unit used to resolve call-site paths.
	Unit *Unit
}

// EvalMacro compiles the given macro call into the fragment type the call
// site expects: the handler's output token stream is reparsed with the given
// parse entry point and must be fully consumed.
//
// Handler failures are reclassified at this boundary: a failure that unwraps
// to a parse error propagates directly as a parse error so diagnostics point
// at the original malformed tokens; any other failure becomes a
// macro-call-failed error carrying the call span, since handler-internal
// errors are not assumed to carry their own location.
func EvalMacro[T ast.Node](mc *MacroCompiler, call *ast.MacroCall, parse ast.ParseFn[T]) (T, error) {
	var zero T
	span := call.Span()

	if !mc.Options.Macros {
		return zero, NewExperimental(span, "macros must be enabled with `-O macros=true`")
	}

	item, err := mc.Unit.ConvertPath(mc.Item, call.Path)
	if err != nil {
		return zero, err
	}

	hash := TypeHash(item)
	handler, ok := mc.Context.LookupMacro(hash)
	if !ok {
		return zero, NewMissingMacro(span, item)
	}

	// The handler runs with the context's default span set to the call span
	// and its end span set to a zero-width point at the call's end offset;
	// both are reset on every exit path.
	output, err, tooDeep := mc.MacroCtx.Invoke(span, report.Point(span.End), func() (interface{}, error) {
		return handler(mc.MacroCtx, call.Input)
	})

	if tooDeep {
		return zero, NewMacroDepthExceeded(span, macros.MaxDepth)
	}

	if err != nil {
		var parseErr *syntax.ParseError
		if errors.As(err, &parseErr) {
			return zero, parseErr
		}

		return zero, NewMacroCallFailed(span, err)
	}

	stream, ok := output.(*macros.TokenStream)
	if !ok {
		return zero, NewMacroCallFailed(span, fmt.Errorf(
			"failed to convert macro result, expected `*macros.TokenStream`, got `%T`", output,
		))
	}

	p := stream.Parser()
	node, err := parse(p)
	if err != nil {
		return zero, err
	}

	// a macro may not emit a well-typed prefix followed by trailing garbage
	if err := p.ParseEOF(); err != nil {
		return zero, err
	}

	return node, nil
}
