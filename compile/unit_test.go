package compile

import (
	"testing"

	"github.com/evelant/rune/ast"
	"github.com/evelant/rune/report"
	"github.com/evelant/rune/syntax"
)

func pathOf(t *testing.T, text string) *ast.Path {
	t.Helper()

	p, err := syntax.NewParserFromSource(report.NewSource("test.rn", text))
	if err != nil {
		t.Fatalf("tokenize %q failed: %s", text, err)
	}

	expr, err := ast.ParseExpr(p)
	if err != nil {
		t.Fatalf("parse %q failed: %s", text, err)
	}

	return expr.(*ast.ExprPath).Path
}

func TestConvertPath(t *testing.T) {
	unit := NewUnit()
	unit.AddImport("fmt", NewItem("std", "fmt"))

	base := NewItem("mymod", "inner")

	tests := []struct {
		path string
		want string
	}{
		{"crate::helpers::assert", "helpers::assert"},
		{"super::sibling", "mymod::sibling"},
		{"self::local", "mymod::inner::local"},

		// a plain first segment consults the use aliases first
		{"fmt::println", "std::fmt::println"},

		// unaliased plain paths resolve relative to the current scope
		{"helper::run", "mymod::inner::helper::run"},
	}

	for _, tt := range tests {
		item, err := unit.ConvertPath(base, pathOf(t, tt.path))
		if err != nil {
			t.Errorf("ConvertPath(%q) failed: %s", tt.path, err)
			continue
		}

		if item.String() != tt.want {
			t.Errorf("ConvertPath(%q) = %s, want %s", tt.path, item, tt.want)
		}
	}
}

func TestConvertPathSuperAtRoot(t *testing.T) {
	unit := NewUnit()

	_, err := unit.ConvertPath(NewItem(), pathOf(t, "super::x"))
	if err == nil {
		t.Fatal("`super` at the crate root should fail to resolve")
	}

	cerr, ok := err.(*Error)
	if !ok || cerr.Kind != ErrResolve {
		t.Errorf("error = %v, want a resolution error", err)
	}
}

func TestProcessUse(t *testing.T) {
	unit := NewUnit()
	base := NewItem("mymod")

	file, err := ast.ParseText(report.NewSource("test.rn", "use crate::std::math; use math::trig;"))
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}

	for _, entry := range file.Items {
		if err := unit.ProcessUse(base, entry.Item.(*ast.ItemUse)); err != nil {
			t.Fatalf("ProcessUse failed: %s", err)
		}
	}

	// the first use introduces `math`; the second chains through it
	item, err := unit.ConvertPath(base, pathOf(t, "trig::cos"))
	if err != nil {
		t.Fatalf("ConvertPath failed: %s", err)
	}

	if item.String() != "std::math::trig::cos" {
		t.Errorf("chained alias resolved to %s", item)
	}
}
