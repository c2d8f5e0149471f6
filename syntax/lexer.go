package syntax

import (
	"strings"

	"github.com/evelant/rune/report"
)

// Lexer is responsible for tokenizing a source text.  It operates directly on
// the in-memory source and produces tokens carrying byte-offset spans.
type Lexer struct {
	src *report.Source
	pos int
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src *report.Source) *Lexer {
	return &Lexer{src: src}
}

// Tokenize lexes an entire source into a token slice.  The returned slice
// always ends with an EOF token positioned at the end of the text.
func Tokenize(src *report.Source) ([]Token, error) {
	l := NewLexer(src)

	var toks []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}

		toks = append(toks, tok)
		if tok.Kind == TOK_EOF {
			return toks, nil
		}
	}
}

// NextToken retrieves the next token from the source.  If the source has
// ended, this will be an EOF token.
func (l *Lexer) NextToken() (Token, error) {
	// A shebang is only recognized at the very start of the source and only if
	// it cannot be confused with an inner attribute `#![...]`.
	if l.pos == 0 && strings.HasPrefix(l.src.Text, "#!") && !strings.HasPrefix(l.src.Text, "#![") {
		return l.lexShebang(), nil
	}

	for l.pos < len(l.src.Text) {
		c := l.src.Text[l.pos]

		switch c {
		case '\n', '\t', ' ', '\r', '\v', '\f':
			l.pos++
		case '/':
			if tok, consumed, err := l.lexCommentOrDiv(); err != nil {
				return Token{}, err
			} else if !consumed {
				return tok, nil
			}
		case '"':
			return l.lexStringLit()
		case '\'':
			return l.lexCharLit()
		default:
			if isDecimalDigit(c) {
				return l.lexNumericLit()
			} else if isFirstIdentChar(c) {
				return l.lexIdentOrKeyword(), nil
			} else {
				return l.lexPunct()
			}
		}
	}

	return Token{Kind: TOK_EOF, Span: report.Point(uint32(l.pos))}, nil
}

// lexShebang lexes a leading `#!...` line.  The token value is the text after
// the `#!` marker up to the end of the line.
func (l *Lexer) lexShebang() Token {
	end := strings.IndexByte(l.src.Text, '\n')
	if end == -1 {
		end = len(l.src.Text)
	}

	tok := Token{
		Kind:  TOK_SHEBANG,
		Value: l.src.Text[2:end],
		Span:  report.NewSpan(0, uint32(end)),
	}

	l.pos = end
	return tok
}

// lexCommentOrDiv handles the `/` character: it either skips a line or block
// comment (returning consumed == true) or produces a division token.
func (l *Lexer) lexCommentOrDiv() (Token, bool, error) {
	start := l.pos

	if l.pos+1 < len(l.src.Text) {
		switch l.src.Text[l.pos+1] {
		case '/':
			// line comment: skip to the end of the line
			end := strings.IndexByte(l.src.Text[l.pos:], '\n')
			if end == -1 {
				l.pos = len(l.src.Text)
			} else {
				l.pos += end
			}

			return Token{}, true, nil
		case '*':
			// block comment: skip to the closing `*/`
			end := strings.Index(l.src.Text[l.pos+2:], "*/")
			if end == -1 {
				return Token{}, false, NewUnexpectedEOF(report.Point(uint32(len(l.src.Text))))
			}

			l.pos += end + 4
			return Token{}, true, nil
		}
	}

	l.pos++
	return Token{
		Kind:  TOK_DIV,
		Value: "/",
		Span:  report.NewSpan(uint32(start), uint32(l.pos)),
	}, false, nil
}

// lexStringLit lexes a double-quoted string literal.  The token value has the
// quotes trimmed off and escape sequences resolved.
func (l *Lexer) lexStringLit() (Token, error) {
	start := l.pos
	l.pos++

	var value strings.Builder
	for l.pos < len(l.src.Text) {
		c := l.src.Text[l.pos]

		switch c {
		case '"':
			l.pos++
			return Token{
				Kind:  TOK_STRINGLIT,
				Value: value.String(),
				Span:  report.NewSpan(uint32(start), uint32(l.pos)),
			}, nil
		case '\n':
			// strings may not span multiple lines
			return Token{}, &ParseError{
				Kind:    ParseUnexpectedToken,
				Message: "unterminated string literal",
				Span:    report.NewSpan(uint32(start), uint32(l.pos)),
			}
		case '\\':
			esc, err := l.lexEscape()
			if err != nil {
				return Token{}, err
			}

			value.WriteByte(esc)
		default:
			value.WriteByte(c)
			l.pos++
		}
	}

	return Token{}, &ParseError{
		Kind:    ParseUnexpectedEOF,
		Message: "unterminated string literal",
		Span:    report.NewSpan(uint32(start), uint32(l.pos)),
	}
}

// lexCharLit lexes a single-quoted character literal.
func (l *Lexer) lexCharLit() (Token, error) {
	start := l.pos
	l.pos++

	if l.pos >= len(l.src.Text) {
		return Token{}, NewUnexpectedEOF(report.Point(uint32(l.pos)))
	}

	var value byte
	if l.src.Text[l.pos] == '\\' {
		esc, err := l.lexEscape()
		if err != nil {
			return Token{}, err
		}

		value = esc
	} else {
		value = l.src.Text[l.pos]
		l.pos++
	}

	if l.pos >= len(l.src.Text) {
		return Token{}, &ParseError{
			Kind:    ParseUnexpectedEOF,
			Message: "unterminated char literal",
			Span:    report.NewSpan(uint32(start), uint32(l.pos)),
		}
	}

	// char literals hold exactly one byte: a second content byte here means
	// either a multi-character literal or a multi-byte character
	if l.src.Text[l.pos] != '\'' {
		return Token{}, &ParseError{
			Kind:    ParseUnexpectedToken,
			Message: "unsupported character in char literal",
			Span:    report.NewSpan(uint32(start), uint32(l.pos+1)),
		}
	}

	l.pos++
	return Token{
		Kind:  TOK_CHARLIT,
		Value: string(value),
		Span:  report.NewSpan(uint32(start), uint32(l.pos)),
	}, nil
}

// lexEscape lexes a backslash escape sequence and returns the escaped byte.
// The lexer must be positioned on the backslash.
func (l *Lexer) lexEscape() (byte, error) {
	l.pos++
	if l.pos >= len(l.src.Text) {
		return 0, NewUnexpectedEOF(report.Point(uint32(l.pos)))
	}

	c := l.src.Text[l.pos]
	l.pos++

	switch c {
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	case '0':
		return 0, nil
	case '\\', '\'', '"':
		return c, nil
	default:
		return 0, &ParseError{
			Kind:    ParseUnexpectedToken,
			Message: "unknown escape sequence",
			Span:    report.NewSpan(uint32(l.pos-2), uint32(l.pos)),
		}
	}
}

// lexNumericLit lexes an integer or float literal.  Underscores are allowed as
// digit separators and are stripped from the token value.
func (l *Lexer) lexNumericLit() (Token, error) {
	start := l.pos
	kind := TOK_INTLIT

	l.takeDigits()

	// a `.` only continues the literal if a digit follows: otherwise it is a
	// field access on an integer literal
	if l.pos+1 < len(l.src.Text) && l.src.Text[l.pos] == '.' && isDecimalDigit(l.src.Text[l.pos+1]) {
		kind = TOK_FLOATLIT
		l.pos++
		l.takeDigits()
	}

	if l.pos < len(l.src.Text) && (l.src.Text[l.pos] == 'e' || l.src.Text[l.pos] == 'E') {
		mark := l.pos
		l.pos++

		if l.pos < len(l.src.Text) && (l.src.Text[l.pos] == '+' || l.src.Text[l.pos] == '-') {
			l.pos++
		}

		if l.pos < len(l.src.Text) && isDecimalDigit(l.src.Text[l.pos]) {
			kind = TOK_FLOATLIT
			l.takeDigits()
		} else {
			// not an exponent: an identifier begins right after the digits
			l.pos = mark
		}
	}

	return Token{
		Kind:  kind,
		Value: strings.ReplaceAll(l.src.Text[start:l.pos], "_", ""),
		Span:  report.NewSpan(uint32(start), uint32(l.pos)),
	}, nil
}

// takeDigits consumes a run of decimal digits and underscore separators.
func (l *Lexer) takeDigits() {
	for l.pos < len(l.src.Text) && (isDecimalDigit(l.src.Text[l.pos]) || l.src.Text[l.pos] == '_') {
		l.pos++
	}
}

// keywordPatterns maps keyword strings to their token kind.
var keywordPatterns = map[string]int{
	"fn":     TOK_FN,
	"let":    TOK_LET,
	"const":  TOK_CONST,
	"use":    TOK_USE,
	"pub":    TOK_PUB,
	"if":     TOK_IF,
	"else":   TOK_ELSE,
	"return": TOK_RETURN,
	"is":     TOK_IS,
	"not":    TOK_NOT,
	"crate":  TOK_CRATE,
	"super":  TOK_SUPER,
	"self":   TOK_SELF,
}

// lexIdentOrKeyword lexes an identifier, keyword, or boolean literal.
func (l *Lexer) lexIdentOrKeyword() Token {
	start := l.pos
	for l.pos < len(l.src.Text) && isIdentChar(l.src.Text[l.pos]) {
		l.pos++
	}

	value := l.src.Text[start:l.pos]
	span := report.NewSpan(uint32(start), uint32(l.pos))

	if value == "true" || value == "false" {
		return Token{Kind: TOK_BOOLLIT, Value: value, Span: span}
	}

	if kind, ok := keywordPatterns[value]; ok {
		return Token{Kind: kind, Value: value, Span: span}
	}

	return Token{Kind: TOK_IDENT, Value: value, Span: span}
}

// symbolPatterns maps symbol strings (patterns) to their punctuation/operator
// token kind.
var symbolPatterns = map[string]int{
	"+": TOK_PLUS,
	"-": TOK_MINUS,
	"*": TOK_STAR,
	// Division is handled with comment logic.
	"%": TOK_MOD,

	"==": TOK_EQ,
	"!=": TOK_NEQ,
	"<":  TOK_LT,
	"<=": TOK_LTEQ,
	">":  TOK_GT,
	">=": TOK_GTEQ,

	"&&": TOK_AND,
	"||": TOK_OR,
	"&":  TOK_AMP,
	"|":  TOK_PIPE,
	"^":  TOK_CARET,

	"=": TOK_ASSIGN,
	"!": TOK_BANG,

	"(":  TOK_LPAREN,
	")":  TOK_RPAREN,
	"{":  TOK_LBRACE,
	"}":  TOK_RBRACE,
	"[":  TOK_LBRACKET,
	"]":  TOK_RBRACKET,
	",":  TOK_COMMA,
	".":  TOK_DOT,
	"::": TOK_COLONCOLON,
	":":  TOK_COLON,
	";":  TOK_SEMI,
	"#":  TOK_POUND,
	"->": TOK_ARROW,
}

// lexPunct lexes a punctuation or operator token using maximal munch: the two
// character form of a symbol is preferred over the one character form.
func (l *Lexer) lexPunct() (Token, error) {
	start := l.pos

	if l.pos+1 < len(l.src.Text) {
		if kind, ok := symbolPatterns[l.src.Text[l.pos:l.pos+2]]; ok {
			l.pos += 2
			return Token{
				Kind:  kind,
				Value: l.src.Text[start:l.pos],
				Span:  report.NewSpan(uint32(start), uint32(l.pos)),
			}, nil
		}
	}

	if kind, ok := symbolPatterns[l.src.Text[l.pos:l.pos+1]]; ok {
		l.pos++
		return Token{
			Kind:  kind,
			Value: l.src.Text[start:l.pos],
			Span:  report.NewSpan(uint32(start), uint32(l.pos)),
		}, nil
	}

	return Token{}, &ParseError{
		Kind:    ParseUnexpectedToken,
		Message: "unknown character",
		Span:    report.NewSpan(uint32(start), uint32(start+1)),
	}
}

// -----------------------------------------------------------------------------

func isDecimalDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isFirstIdentChar(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isFirstIdentChar(c) || isDecimalDigit(c)
}
