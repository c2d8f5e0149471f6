package compile

import (
	"github.com/evelant/rune/ast"
	"github.com/evelant/rune/syntax"
)

// Unit is the compilation unit: the mutable resolver tracking items and path
// aliases for one compiled module.  A unit is a single-owner mutable resource
// threaded explicitly through the call chain of one sequential compile pass;
// it is never shared between concurrently compiled units and is never held
// across a macro handler invocation.
type Unit struct {
	// imports maps a local alias (the last segment of a `use` path) to the
	// absolute item it refers to.
	imports map[string]Item
}

// NewUnit creates an empty compilation unit.
func NewUnit() *Unit {
	return &Unit{imports: make(map[string]Item)}
}

// AddImport registers a `use` alias for an absolute item.  A later import of
// the same alias replaces the earlier one.
func (u *Unit) AddImport(alias string, item Item) {
	u.imports[alias] = item
}

// ConvertPath converts a call-site path, which may be relative to the current
// item scope, into an absolute item path.
//
// The first segment selects the resolution rule: `crate` resolves against the
// crate root, `super` against the parent of the current scope, `self` against
// the current scope itself, and a plain name first consults the unit's `use`
// aliases before resolving relative to the current scope.
func (u *Unit) ConvertPath(base Item, path *ast.Path) (Item, error) {
	rest := path.Segments()[1:]

	switch path.First.Kind {
	case syntax.TOK_CRATE:
		return NewItem().Extended(rest...), nil
	case syntax.TOK_SUPER:
		parent, ok := base.Parent()
		if !ok {
			return Item{}, NewResolve(path.First.Span, "`super` used in the crate root")
		}

		return parent.Extended(rest...), nil
	case syntax.TOK_SELF:
		return base.Extended(rest...), nil
	default:
		if item, ok := u.imports[path.First.Value]; ok {
			return item.Extended(rest...), nil
		}

		return base.Extended(path.Segments()...), nil
	}
}

// ProcessUse records the alias introduced by a `use` item.  The imported path
// is itself resolved first, so chained aliases observe earlier imports.
func (u *Unit) ProcessUse(base Item, use *ast.ItemUse) error {
	item, err := u.ConvertPath(base, use.Path)
	if err != nil {
		return err
	}

	segs := item.Segments()
	if len(segs) == 0 {
		return NewResolve(use.Path.Span(), "cannot import the crate root")
	}

	u.AddImport(segs[len(segs)-1], item)
	return nil
}
