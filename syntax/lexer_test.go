package syntax

import (
	"testing"

	"github.com/evelant/rune/report"
)

func tokenize(t *testing.T, text string) []Token {
	t.Helper()

	toks, err := Tokenize(report.NewSource("test.rn", text))
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %s", text, err)
	}

	return toks
}

func checkKinds(t *testing.T, toks []Token, kinds ...int) {
	t.Helper()

	if len(toks) != len(kinds) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(kinds))
	}

	for i, kind := range kinds {
		if toks[i].Kind != kind {
			t.Errorf("token %d: kind = %s, want %s", i, KindName(toks[i].Kind), KindName(kind))
		}
	}
}

func TestTokenizeSimple(t *testing.T) {
	toks := tokenize(t, "fn main() { 1 + 2; }")

	checkKinds(t, toks,
		TOK_FN, TOK_IDENT, TOK_LPAREN, TOK_RPAREN, TOK_LBRACE,
		TOK_INTLIT, TOK_PLUS, TOK_INTLIT, TOK_SEMI, TOK_RBRACE, TOK_EOF,
	)

	if toks[1].Value != "main" {
		t.Errorf("ident value = %q, want %q", toks[1].Value, "main")
	}

	// spans are half-open byte offsets into the source text
	if toks[0].Span != report.NewSpan(0, 2) {
		t.Errorf("`fn` span = %v, want [0, 2)", toks[0].Span)
	}
	if toks[5].Span != report.NewSpan(12, 13) {
		t.Errorf("`1` span = %v, want [12, 13)", toks[5].Span)
	}
	if toks[10].Span != report.Point(20) {
		t.Errorf("EOF span = %v, want [20, 20)", toks[10].Span)
	}
}

func TestTokenizeShebang(t *testing.T) {
	toks := tokenize(t, "#!rune run\nfn f() {}")

	if toks[0].Kind != TOK_SHEBANG {
		t.Fatalf("first token kind = %s, want `#!`", KindName(toks[0].Kind))
	}
	if toks[0].Value != "rune run" {
		t.Errorf("shebang value = %q, want %q", toks[0].Value, "rune run")
	}
	if toks[0].Span != report.NewSpan(0, 10) {
		t.Errorf("shebang span = %v, want [0, 10)", toks[0].Span)
	}
	if toks[1].Kind != TOK_FN {
		t.Errorf("token after shebang = %s, want `fn`", KindName(toks[1].Kind))
	}
}

func TestTokenizeInnerAttributeIsNotShebang(t *testing.T) {
	// `#![...]` at the start of a file is an inner attribute, not a shebang
	toks := tokenize(t, "#![feature]")
	checkKinds(t, toks, TOK_POUND, TOK_BANG, TOK_LBRACKET, TOK_IDENT, TOK_RBRACKET, TOK_EOF)
}

func TestTokenizeMaximalMunch(t *testing.T) {
	toks := tokenize(t, "a::b != c <= d -> e = f")

	checkKinds(t, toks,
		TOK_IDENT, TOK_COLONCOLON, TOK_IDENT, TOK_NEQ, TOK_IDENT,
		TOK_LTEQ, TOK_IDENT, TOK_ARROW, TOK_IDENT, TOK_ASSIGN, TOK_IDENT, TOK_EOF,
	)
}

func TestTokenizeNumericLits(t *testing.T) {
	tests := []struct {
		text  string
		kind  int
		value string
	}{
		{"42", TOK_INTLIT, "42"},
		{"1_000_000", TOK_INTLIT, "1000000"},
		{"3.14", TOK_FLOATLIT, "3.14"},
		{"1e9", TOK_FLOATLIT, "1e9"},
		{"2.5e-3", TOK_FLOATLIT, "2.5e-3"},
	}

	for _, tt := range tests {
		toks := tokenize(t, tt.text)
		if toks[0].Kind != tt.kind {
			t.Errorf("%q: kind = %s, want %s", tt.text, KindName(toks[0].Kind), KindName(tt.kind))
		}
		if toks[0].Value != tt.value {
			t.Errorf("%q: value = %q, want %q", tt.text, toks[0].Value, tt.value)
		}
	}

	// `1.x` is a field access on an integer literal, not a float
	toks := tokenize(t, "1.x")
	checkKinds(t, toks, TOK_INTLIT, TOK_DOT, TOK_IDENT, TOK_EOF)

	// `1else` backtracks out of a failed exponent
	toks = tokenize(t, "1else")
	checkKinds(t, toks, TOK_INTLIT, TOK_ELSE, TOK_EOF)
}

func TestTokenizeStringLit(t *testing.T) {
	toks := tokenize(t, `"hello\n\"world\""`)

	if toks[0].Kind != TOK_STRINGLIT {
		t.Fatalf("kind = %s, want string literal", KindName(toks[0].Kind))
	}
	if toks[0].Value != "hello\n\"world\"" {
		t.Errorf("value = %q", toks[0].Value)
	}
}

func TestTokenizeCharLit(t *testing.T) {
	toks := tokenize(t, `'a' '\n'`)

	checkKinds(t, toks, TOK_CHARLIT, TOK_CHARLIT, TOK_EOF)
	if toks[0].Value != "a" {
		t.Errorf("first value = %q, want %q", toks[0].Value, "a")
	}
	if toks[1].Value != "\n" {
		t.Errorf("second value = %q, want newline", toks[1].Value)
	}
}

func TestTokenizeComments(t *testing.T) {
	toks := tokenize(t, "1 // comment\n+ /* block\ncomment */ 2")
	checkKinds(t, toks, TOK_INTLIT, TOK_PLUS, TOK_INTLIT, TOK_EOF)
}

func TestTokenizeKeywordsAndBools(t *testing.T) {
	toks := tokenize(t, "is not true false crate super self selfish")

	checkKinds(t, toks,
		TOK_IS, TOK_NOT, TOK_BOOLLIT, TOK_BOOLLIT,
		TOK_CRATE, TOK_SUPER, TOK_SELF, TOK_IDENT, TOK_EOF,
	)
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		text string
		kind int
	}{
		{`"unterminated`, ParseUnexpectedEOF},
		{"\"multi\nline\"", ParseUnexpectedToken},
		{"/* open", ParseUnexpectedEOF},
		{"'ab'", ParseUnexpectedToken},
		{"'a", ParseUnexpectedEOF},
		{`"bad \q escape"`, ParseUnexpectedToken},
		{`'\q'`, ParseUnexpectedToken},
		{"$", ParseUnexpectedToken},
	}

	for _, tt := range tests {
		_, err := Tokenize(report.NewSource("test.rn", tt.text))
		if err == nil {
			t.Errorf("%q: expected error", tt.text)
			continue
		}

		perr, ok := err.(*ParseError)
		if !ok {
			t.Errorf("%q: error is %T, not *ParseError", tt.text, err)
		} else if perr.Kind != tt.kind {
			t.Errorf("%q: error kind = %d, want %d", tt.text, perr.Kind, tt.kind)
		}
	}
}

func TestTokenizeMultiByteCharLit(t *testing.T) {
	// char literals hold a single byte, so a multi-byte character cannot fit;
	// the diagnostic must say so rather than claim the literal is unterminated
	_, err := Tokenize(report.NewSource("test.rn", "'é'"))
	if err == nil {
		t.Fatal("multi-byte char literal should fail")
	}

	perr, ok := err.(*ParseError)
	if !ok || perr.Kind != ParseUnexpectedToken {
		t.Fatalf("error = %v, want an unexpected-token parse error", err)
	}
	if perr.Message != "unsupported character in char literal" {
		t.Errorf("message = %q", perr.Message)
	}
}
