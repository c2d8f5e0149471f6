package syntax

import "github.com/evelant/rune/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.  This may not directly correspond to the
	// spanned source text: eg. the value of a string token has the leading
	// quotes trimmed off and escape sequences resolved for convenience.
	Value string

	// The text span over which the token exists.
	Span report.Span
}

// Enumeration of token kinds.
const (
	TOK_FN = iota
	TOK_LET
	TOK_CONST
	TOK_USE
	TOK_PUB
	TOK_IF
	TOK_ELSE
	TOK_RETURN
	TOK_IS
	TOK_NOT
	TOK_CRATE
	TOK_SUPER
	TOK_SELF

	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_DIV
	TOK_MOD

	TOK_EQ
	TOK_NEQ
	TOK_LT
	TOK_GT
	TOK_LTEQ
	TOK_GTEQ

	TOK_AND
	TOK_OR
	TOK_AMP
	TOK_PIPE
	TOK_CARET

	TOK_ASSIGN
	TOK_BANG

	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACE
	TOK_RBRACE
	TOK_LBRACKET
	TOK_RBRACKET
	TOK_COMMA
	TOK_DOT
	TOK_COLONCOLON
	TOK_COLON
	TOK_SEMI
	TOK_POUND
	TOK_ARROW

	TOK_IDENT
	TOK_INTLIT
	TOK_FLOATLIT
	TOK_STRINGLIT
	TOK_CHARLIT
	TOK_BOOLLIT

	TOK_SHEBANG
	TOK_EOF
)

// tokenKindNames maps token kinds to the human-readable names used in
// diagnostics.
var tokenKindNames = map[int]string{
	TOK_FN:     "`fn`",
	TOK_LET:    "`let`",
	TOK_CONST:  "`const`",
	TOK_USE:    "`use`",
	TOK_PUB:    "`pub`",
	TOK_IF:     "`if`",
	TOK_ELSE:   "`else`",
	TOK_RETURN: "`return`",
	TOK_IS:     "`is`",
	TOK_NOT:    "`not`",
	TOK_CRATE:  "`crate`",
	TOK_SUPER:  "`super`",
	TOK_SELF:   "`self`",

	TOK_PLUS:  "`+`",
	TOK_MINUS: "`-`",
	TOK_STAR:  "`*`",
	TOK_DIV:   "`/`",
	TOK_MOD:   "`%`",

	TOK_EQ:   "`==`",
	TOK_NEQ:  "`!=`",
	TOK_LT:   "`<`",
	TOK_GT:   "`>`",
	TOK_LTEQ: "`<=`",
	TOK_GTEQ: "`>=`",

	TOK_AND:   "`&&`",
	TOK_OR:    "`||`",
	TOK_AMP:   "`&`",
	TOK_PIPE:  "`|`",
	TOK_CARET: "`^`",

	TOK_ASSIGN: "`=`",
	TOK_BANG:   "`!`",

	TOK_LPAREN:     "`(`",
	TOK_RPAREN:     "`)`",
	TOK_LBRACE:     "`{`",
	TOK_RBRACE:     "`}`",
	TOK_LBRACKET:   "`[`",
	TOK_RBRACKET:   "`]`",
	TOK_COMMA:      "`,`",
	TOK_DOT:        "`.`",
	TOK_COLONCOLON: "`::`",
	TOK_COLON:      "`:`",
	TOK_SEMI:       "`;`",
	TOK_POUND:      "`#`",
	TOK_ARROW:      "`->`",

	TOK_IDENT:     "identifier",
	TOK_INTLIT:    "integer literal",
	TOK_FLOATLIT:  "float literal",
	TOK_STRINGLIT: "string literal",
	TOK_CHARLIT:   "char literal",
	TOK_BOOLLIT:   "bool literal",

	TOK_SHEBANG: "shebang",
	TOK_EOF:     "end of input",
}

// KindName returns the human-readable name of a token kind.
func KindName(kind int) string {
	if name, ok := tokenKindNames[kind]; ok {
		return name
	}

	return "token"
}
