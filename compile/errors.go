package compile

import (
	"fmt"

	"github.com/evelant/rune/report"
)

// Enumeration of compile error kinds.
const (
	// Use of a feature that must be enabled explicitly.
	ErrExperimental = iota

	// A path could not be resolved to an absolute item.
	ErrResolve

	// A resolved item path has no registered macro handler.
	ErrMissingMacro

	// A macro handler raised a non-parse error, or returned a value of the
	// wrong shape.
	ErrMacroCallFailed

	// Macro expansion exceeded the nesting depth limit.
	ErrMacroDepthExceeded

	// An expression required to be compile-time-constant is not.
	ErrNotConst
)

// Error is a compilation error.  Parse errors are not wrapped in this type:
// they propagate as *syntax.ParseError so that macro-produced parse failures
// render through the same diagnostics path as native ones.
type Error struct {
	// The kind of the compile error.  This must be one of the enumerated
	// compile error kinds.
	Kind int

	// The error message.
	Message string

	// The span over which the error occurs.  For macro errors this is the
	// span of the call site.
	Span report.Span

	// The resolved item, for missing-macro errors.
	Item Item

	// The handler's underlying error, for macro-call-failed errors.
	Cause error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewExperimental creates a compile error for use of a disabled experimental
// feature.
func NewExperimental(span report.Span, msg string) *Error {
	return &Error{Kind: ErrExperimental, Message: msg, Span: span}
}

// NewResolve creates a compile error for a path that could not be resolved.
func NewResolve(span report.Span, msg string, args ...interface{}) *Error {
	return &Error{Kind: ErrResolve, Message: fmt.Sprintf(msg, args...), Span: span}
}

// NewMissingMacro creates a compile error for a resolved item with no
// registered macro handler.
func NewMissingMacro(span report.Span, item Item) *Error {
	return &Error{
		Kind:    ErrMissingMacro,
		Message: fmt.Sprintf("missing macro `%s`", item),
		Span:    span,
		Item:    item,
	}
}

// NewMacroCallFailed creates a compile error for a handler that raised a
// non-parse error or returned a value of the wrong shape.
func NewMacroCallFailed(span report.Span, cause error) *Error {
	return &Error{
		Kind:    ErrMacroCallFailed,
		Message: fmt.Sprintf("error while calling macro: %s", cause),
		Span:    span,
		Cause:   cause,
	}
}

// NewNotConst creates a compile error for an expression that was required to
// be compile-time-constant but is not.
func NewNotConst(span report.Span, msg string, args ...interface{}) *Error {
	return &Error{Kind: ErrNotConst, Message: fmt.Sprintf(msg, args...), Span: span}
}

// NewMacroDepthExceeded creates a compile error for an expansion that nested
// beyond the depth limit.
func NewMacroDepthExceeded(span report.Span, limit int) *Error {
	return &Error{
		Kind:    ErrMacroDepthExceeded,
		Message: fmt.Sprintf("macro expansion exceeded the nesting limit of %d", limit),
		Span:    span,
	}
}
