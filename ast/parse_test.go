package ast

import (
	"testing"

	"github.com/evelant/rune/report"
	"github.com/evelant/rune/syntax"
)

func parseText(t *testing.T, text string) *File {
	t.Helper()

	file, err := ParseText(report.NewSource("test.rn", text))
	if err != nil {
		t.Fatalf("ParseText(%q) failed: %s", text, err)
	}

	return file
}

func parseExprText(t *testing.T, text string) Expr {
	t.Helper()

	p, err := syntax.NewParserFromSource(report.NewSource("test.rn", text))
	if err != nil {
		t.Fatalf("tokenize %q failed: %s", text, err)
	}

	expr, err := ParseExpr(p)
	if err != nil {
		t.Fatalf("ParseExpr(%q) failed: %s", text, err)
	}

	if err := p.ParseEOF(); err != nil {
		t.Fatalf("trailing tokens after %q: %s", text, err)
	}

	return expr
}

func TestParseFileStructure(t *testing.T) {
	file := parseText(t, `#!rune run
#![feature(macros)]
use std::fmt;
pub fn main(a, b) { let x = 1 + 2; x }
const MAX = 10;
#[cfg(test)] check_args!{a b c};
`)

	if file.Shebang == nil || file.Shebang.Source != "rune run" {
		t.Fatalf("shebang = %+v", file.Shebang)
	}

	if len(file.Attributes) != 1 || file.Attributes[0].Bang == nil {
		t.Fatalf("file attributes = %+v", file.Attributes)
	}

	if len(file.Items) != 4 {
		t.Fatalf("got %d items, want 4", len(file.Items))
	}

	use, ok := file.Items[0].Item.(*ItemUse)
	if !ok {
		t.Fatalf("item 0 is %T, want *ItemUse", file.Items[0].Item)
	}
	if use.Path.String() != "std::fmt" {
		t.Errorf("use path = %q", use.Path.String())
	}
	if file.Items[0].Semi == nil {
		t.Error("use item is missing its semicolon")
	}

	fn, ok := file.Items[1].Item.(*ItemFn)
	if !ok {
		t.Fatalf("item 1 is %T, want *ItemFn", file.Items[1].Item)
	}
	if fn.Name.Value != "main" || !fn.Visibility.IsPublic() || len(fn.Args) != 2 {
		t.Errorf("fn = %q, public %v, %d args", fn.Name.Value, fn.Visibility.IsPublic(), len(fn.Args))
	}
	if len(fn.Body.Exprs) != 2 {
		t.Errorf("fn body has %d exprs, want 2", len(fn.Body.Exprs))
	}
	if file.Items[1].Semi != nil {
		t.Error("fn item should not take a semicolon")
	}

	c, ok := file.Items[2].Item.(*ItemConst)
	if !ok {
		t.Fatalf("item 2 is %T, want *ItemConst", file.Items[2].Item)
	}
	if c.Name.Value != "MAX" {
		t.Errorf("const name = %q", c.Name.Value)
	}

	mac, ok := file.Items[3].Item.(*ItemMacroCall)
	if !ok {
		t.Fatalf("item 3 is %T, want *ItemMacroCall", file.Items[3].Item)
	}
	if len(mac.Attributes) != 1 {
		t.Errorf("macro item has %d attributes, want 1", len(mac.Attributes))
	}
	if mac.Call.Path.String() != "check_args" || mac.Call.Input.Len() != 3 {
		t.Errorf("macro call = %q with %d input tokens", mac.Call.Path.String(), mac.Call.Input.Len())
	}
}

func TestParseFileOrphans(t *testing.T) {
	tests := []struct {
		text string
		what string
	}{
		{"#[attr]", "unsupported attributes"},
		{"pub", "unsupported visibility"},
		{"use a; #[attr]", "unsupported attributes"},
		{"use a; pub", "unsupported visibility"},

		// attributes are reported before visibility
		{"#[attr] pub", "unsupported attributes"},
	}

	for _, tt := range tests {
		_, err := ParseText(report.NewSource("test.rn", tt.text))
		if err == nil {
			t.Errorf("%q: expected an error", tt.text)
			continue
		}

		perr, ok := err.(*syntax.ParseError)
		if !ok {
			t.Errorf("%q: error is %T, not *syntax.ParseError", tt.text, err)
			continue
		}

		if perr.Kind != syntax.ParseUnsupported || perr.Message != tt.what {
			t.Errorf("%q: error = %q (kind %d), want %q", tt.text, perr.Message, perr.Kind, tt.what)
		}
	}
}

func TestParseFileOrphanAttributeSpan(t *testing.T) {
	_, err := ParseText(report.NewSource("test.rn", "#[attr]"))

	perr, ok := err.(*syntax.ParseError)
	if !ok {
		t.Fatalf("error = %v", err)
	}

	if perr.Span != report.NewSpan(0, 7) {
		t.Errorf("orphan attribute span = %v, want [0, 7)", perr.Span)
	}
}

func TestParseFileMissingSemicolon(t *testing.T) {
	_, err := ParseText(report.NewSource("test.rn", "const A = 1 const B = 2;"))
	if err == nil {
		t.Fatal("missing semicolon after const should fail")
	}

	if perr, ok := err.(*syntax.ParseError); !ok || perr.Kind != syntax.ParseExpected {
		t.Errorf("error = %v, want an expectation error", err)
	}
}

func TestParseExprPrecedence(t *testing.T) {
	// multiplication binds tighter than addition
	e := parseExprText(t, "1 + 2 * 3")
	add, ok := e.(*ExprBinary)
	if !ok || add.Op.Kind != syntax.TOK_PLUS {
		t.Fatalf("top of `1 + 2 * 3` = %T", e)
	}
	if mul, ok := add.Rhs.(*ExprBinary); !ok || mul.Op.Kind != syntax.TOK_STAR {
		t.Errorf("rhs of `+` = %T", add.Rhs)
	}

	// same-level operators associate left
	e = parseExprText(t, "1 - 2 - 3")
	sub, ok := e.(*ExprBinary)
	if !ok || sub.Op.Kind != syntax.TOK_MINUS {
		t.Fatalf("top of `1 - 2 - 3` = %T", e)
	}
	if inner, ok := sub.Lhs.(*ExprBinary); !ok || inner.Op.Kind != syntax.TOK_MINUS {
		t.Errorf("lhs of outer `-` = %T", sub.Lhs)
	}

	// comparisons sit above arithmetic, logic above comparisons
	e = parseExprText(t, "1 + 2 < 3 && true")
	and, ok := e.(*ExprBinary)
	if !ok || and.Op.Kind != syntax.TOK_AND {
		t.Fatalf("top of the chain = %T", e)
	}
	if lt, ok := and.Lhs.(*ExprBinary); !ok || lt.Op.Kind != syntax.TOK_LT {
		t.Errorf("lhs of `&&` = %T", and.Lhs)
	}
}

func TestParseExprIs(t *testing.T) {
	if _, ok := parseExprText(t, "x is T").(*ExprIs); !ok {
		t.Error("`x is T` did not parse as a type test")
	}

	isNot, ok := parseExprText(t, "x is not T").(*ExprIsNot)
	if !ok {
		t.Fatal("`x is not T` did not parse as a negated type test")
	}
	if isNot.Not.Kind != syntax.TOK_NOT {
		t.Errorf("not token = %v", isNot.Not)
	}

	// `is` sits at comparison precedence
	e := parseExprText(t, "x + 1 is T")
	is, ok := e.(*ExprIs)
	if !ok {
		t.Fatalf("top of `x + 1 is T` = %T", e)
	}
	if _, ok := is.Lhs.(*ExprBinary); !ok {
		t.Errorf("lhs of `is` = %T", is.Lhs)
	}
}

func TestParseTupledExpr(t *testing.T) {
	if unit, ok := parseExprText(t, "()").(*ExprTuple); !ok || len(unit.Items) != 0 {
		t.Error("`()` did not parse as the empty tuple")
	}

	if _, ok := parseExprText(t, "(1 + 2)").(*ExprGroup); !ok {
		t.Error("`(1 + 2)` did not parse as a grouping")
	}

	if single, ok := parseExprText(t, "(1,)").(*ExprTuple); !ok || len(single.Items) != 1 {
		t.Error("`(1,)` did not parse as a one element tuple")
	}

	triple, ok := parseExprText(t, "(1, 2, 3)").(*ExprTuple)
	if !ok || len(triple.Items) != 3 {
		t.Fatalf("`(1, 2, 3)` = %T", parseExprText(t, "(1, 2, 3)"))
	}
	if triple.Items[2].Comma != nil {
		t.Error("final tuple element should have no trailing comma")
	}
}

func TestParseExprLetReturn(t *testing.T) {
	let, ok := parseExprText(t, "let x = 1 + 2").(*ExprLet)
	if !ok {
		t.Fatal("`let x = 1 + 2` did not parse as a binding")
	}
	if let.Name.Value != "x" {
		t.Errorf("bound name = %q", let.Name.Value)
	}

	bare, ok := parseExprText(t, "return").(*ExprReturn)
	if !ok {
		t.Fatal("`return` did not parse")
	}
	if bare.Value != nil {
		t.Error("bare return should have no value")
	}

	ret, ok := parseExprText(t, "return 5").(*ExprReturn)
	if !ok || ret.Value == nil {
		t.Fatal("`return 5` did not parse with a value")
	}
}

func TestParseExprMacroCall(t *testing.T) {
	e := parseExprText(t, "math::pow2![a (b) {c}]")

	mac, ok := e.(*ExprMacroCall)
	if !ok {
		t.Fatalf("expr = %T, want *ExprMacroCall", e)
	}

	if mac.Call.Path.String() != "math::pow2" {
		t.Errorf("macro path = %q", mac.Call.Path.String())
	}

	// nested delimiters inside the input are balanced but kept raw
	values := []string{"a", "(", "b", ")", "{", "c", "}"}
	toks := mac.Call.Input.Tokens()
	if len(toks) != len(values) {
		t.Fatalf("input has %d tokens, want %d", len(toks), len(values))
	}
	for i, want := range values {
		if toks[i].Value != want {
			t.Errorf("input token %d = %q, want %q", i, toks[i].Value, want)
		}
	}

	if span, ok := mac.OptionSpan(); !ok || span != report.NewSpan(0, 22) {
		t.Errorf("macro call span = %v, want [0, 22)", span)
	}
}

func TestParseBlockSemicolons(t *testing.T) {
	file := parseText(t, "fn f() { 1; 2 }")

	body := file.Items[0].Item.(*ItemFn).Body
	if len(body.Exprs) != 2 {
		t.Fatalf("block has %d exprs, want 2", len(body.Exprs))
	}
	if body.Exprs[0].Semi == nil {
		t.Error("first expr should keep its semicolon")
	}
	if body.Exprs[1].Semi != nil {
		t.Error("final expr has no semicolon")
	}

	// only the final expression may omit its semicolon
	if _, err := ParseText(report.NewSource("test.rn", "fn f() { 1 2 }")); err == nil {
		t.Error("`{ 1 2 }` should fail to parse")
	}
}
