package macros

import (
	"strings"

	"github.com/evelant/rune/report"
	"github.com/evelant/rune/syntax"
)

// MaxDepth is the maximum nesting depth of macro expansions.  A handler may
// itself drive compilation of its input and thereby trigger nested expansions;
// the depth limit turns runaway recursion into an ordinary compile error
// instead of unbounded stack growth.
const MaxDepth = 64

// MacroContext is the transient state threading a macro invocation.  It holds
// the default span stamped onto tokens a handler produces without an explicit
// location, and the end span: a zero-width span fixed at the end of the call
// site, used for synthesized trailing tokens.  Both fields are set immediately
// before a handler is invoked and restored immediately after, on every exit
// path.
type MacroContext struct {
	defaultSpan report.Span
	end         report.Span
	depth       int
}

// NewMacroContext creates a fresh macro context for a top-level compile pass.
func NewMacroContext() *MacroContext {
	return &MacroContext{}
}

// DefaultSpan returns the span of the macro call site currently being
// expanded.  Outside an expansion this is the empty span.
func (mc *MacroContext) DefaultSpan() report.Span {
	return mc.defaultSpan
}

// EndSpan returns the zero-width span at the end of the macro call site
// currently being expanded.
func (mc *MacroContext) EndSpan() report.Span {
	return mc.end
}

// Depth returns the current macro expansion nesting depth.
func (mc *MacroContext) Depth() int {
	return mc.depth
}

// Invoke runs f with the context's spans set for the call site being expanded.
// The previous spans are restored on every exit path, success or failure, and
// the expansion depth is tracked across nested invocations.  If the depth
// limit is exceeded, f is not called and tooDeep is returned true.
func (mc *MacroContext) Invoke(
	callSpan, endSpan report.Span,
	f func() (interface{}, error),
) (result interface{}, err error, tooDeep bool) {
	if mc.depth >= MaxDepth {
		return nil, nil, true
	}

	prevDefault, prevEnd := mc.defaultSpan, mc.end

	mc.defaultSpan = callSpan
	mc.end = endSpan
	mc.depth++

	defer func() {
		mc.defaultSpan = prevDefault
		mc.end = prevEnd
		mc.depth--
	}()

	result, err = f()
	return result, err, false
}

// -----------------------------------------------------------------------------
// Token constructors for native macro handlers.  Every produced token is
// stamped with the context's default span so macro-generated code inherits a
// sensible location.

// Ident produces an identifier token.
func (mc *MacroContext) Ident(name string) syntax.Token {
	return syntax.Token{Kind: syntax.TOK_IDENT, Value: name, Span: mc.defaultSpan}
}

// Lit produces a literal token of the given kind.
func (mc *MacroContext) Lit(kind int, value string) syntax.Token {
	return syntax.Token{Kind: kind, Value: value, Span: mc.defaultSpan}
}

// Punct produces a punctuation or keyword token of the given kind.
func (mc *MacroContext) Punct(kind int) syntax.Token {
	return syntax.Token{
		Kind:  kind,
		Value: strings.Trim(syntax.KindName(kind), "`"),
		Span:  mc.defaultSpan,
	}
}

// EndPunct produces a punctuation token located at the end of the call site:
// eg. a synthesized trailing semicolon.
func (mc *MacroContext) EndPunct(kind int) syntax.Token {
	tok := mc.Punct(kind)
	tok.Span = mc.end
	return tok
}
