package compile

import "testing"

func TestTypeHashDeterminism(t *testing.T) {
	a := TypeHash(NewItem("std", "math", "cos"))
	b := TypeHash(NewItem("std", "math", "cos"))

	if a != b {
		t.Errorf("identical paths hashed differently: %#x vs %#x", a, b)
	}
}

func TestTypeHashDistinctness(t *testing.T) {
	items := []Item{
		NewItem(),
		NewItem("a"),
		NewItem("a", "b"),
		NewItem("b", "a"),
		NewItem("ab"),

		// segment boundaries are part of the hashed content
		NewItem("a", "bc"),
		NewItem("ab", "c"),
		NewItem("abc"),
	}

	seen := make(map[Hash]Item)
	for _, item := range items {
		hash := TypeHash(item)
		if prev, ok := seen[hash]; ok {
			t.Errorf("items `%s` and `%s` collide on %#x", prev, item, hash)
		}

		seen[hash] = item
	}
}

func TestItemDerivation(t *testing.T) {
	root := NewItem()
	if !root.IsRoot() {
		t.Error("empty item should be the crate root")
	}
	if _, ok := root.Parent(); ok {
		t.Error("the crate root has no parent")
	}

	item := NewItem("std", "math")

	// deriving never mutates the parent item
	child := item.Extended("cos")
	if item.String() != "std::math" {
		t.Errorf("Extended mutated its receiver: %s", item)
	}
	if child.String() != "std::math::cos" {
		t.Errorf("child = %s", child)
	}

	parent, ok := child.Parent()
	if !ok || parent.String() != "std::math" {
		t.Errorf("Parent = %s, %v", parent, ok)
	}

	// sibling derivations do not alias each other's storage
	a := item.Extended("sin")
	b := item.Extended("tan")
	if a.String() != "std::math::sin" || b.String() != "std::math::tan" {
		t.Errorf("siblings alias: %s, %s", a, b)
	}
}
