// Package compile contains the compile-time services of the Rune front-end:
// the compilation unit and its path resolution, content-addressed item hashes,
// the macro registry, compiler options, and the macro compiler which expands
// macro calls into typed AST fragments.
package compile

import "strings"

// Item is an absolute item path: an ordered sequence of segment names
// identifying one item in a compilation, eg. `std::math::cos`.  Items are
// immutable values; deriving a new item never mutates its parent.
type Item struct {
	segs []string
}

// NewItem creates an item from its segment names in order.  An item with no
// segments is the crate root.
func NewItem(segs ...string) Item {
	return Item{segs: segs}
}

// Extended returns a new item with the given segments appended.
func (item Item) Extended(segs ...string) Item {
	joined := make([]string, 0, len(item.segs)+len(segs))
	joined = append(joined, item.segs...)
	joined = append(joined, segs...)

	return Item{segs: joined}
}

// Parent returns the item with the last segment removed.  The second return
// value is false if the item is already the crate root.
func (item Item) Parent() (Item, bool) {
	if len(item.segs) == 0 {
		return Item{}, false
	}

	return Item{segs: item.segs[:len(item.segs)-1]}, true
}

// IsRoot returns whether the item is the crate root.
func (item Item) IsRoot() bool {
	return len(item.segs) == 0
}

// Segments returns the item's segment names in order.  The returned slice
// must not be mutated.
func (item Item) Segments() []string {
	return item.segs
}

// String returns the `::`-joined form of the item.
func (item Item) String() string {
	return strings.Join(item.segs, "::")
}
