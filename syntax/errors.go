package syntax

import (
	"fmt"

	"github.com/evelant/rune/report"
)

// Enumeration of parse error kinds.
const (
	// An unexpected token was encountered.
	ParseUnexpectedToken = iota

	// The token source ended in the middle of a construct.
	ParseUnexpectedEOF

	// A specific construct was expected and something else was found.
	ParseExpected

	// A construct was recognized but is not supported in this position: eg.
	// attributes or visibility at the end of a file with no item to attach to.
	ParseUnsupported
)

// ParseError is the error produced whenever the parser encounters a token, or
// arrangement of tokens, that does not match the grammar.  Parse errors are
// never recovered from: they propagate to the caller of the top-level parse
// entry point.
type ParseError struct {
	// The kind of the parse error.  This must be one of the enumerated parse
	// error kinds.
	Kind int

	// The error message.
	Message string

	// The span over which the error occurs.
	Span report.Span
}

func (pe *ParseError) Error() string {
	return pe.Message
}

// NewUnexpectedToken creates a parse error for an unexpected token.
func NewUnexpectedToken(tok Token) *ParseError {
	return &ParseError{
		Kind:    ParseUnexpectedToken,
		Message: fmt.Sprintf("unexpected %s", KindName(tok.Kind)),
		Span:    tok.Span,
	}
}

// NewUnexpectedEOF creates a parse error for a token source that ended in the
// middle of a construct.
func NewUnexpectedEOF(span report.Span) *ParseError {
	return &ParseError{
		Kind:    ParseUnexpectedEOF,
		Message: "unexpected end of input",
		Span:    span,
	}
}

// NewExpected creates a parse error for a mismatch between the construct the
// grammar expected and the token that was found.
func NewExpected(tok Token, expected string) *ParseError {
	return &ParseError{
		Kind:    ParseExpected,
		Message: fmt.Sprintf("expected %s, found %s", expected, KindName(tok.Kind)),
		Span:    tok.Span,
	}
}

// NewUnsupported creates a parse error for a construct that is not supported
// in the position it occurs in.
func NewUnsupported(span report.Span, what string) *ParseError {
	return &ParseError{
		Kind:    ParseUnsupported,
		Message: fmt.Sprintf("unsupported %s", what),
		Span:    span,
	}
}
