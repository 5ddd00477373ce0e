package mist

// Fantom is an immutable snapshot of a node's value, range, and
// neighbor references, with no back-link of its own into a live
// structure (spec.md's Extension Hierarchy design note). It is the
// return shape used wherever a caller needs a stable view of a node's
// surroundings without holding a *Node[T] that keeps mutating under
// them — Compute's map values are exactly this data, just addressed by
// Side instead of bundled into one struct.
//
// Unlike Node, whose equality is identity, two Fantom values with the
// same fields compare equal: taking a Fantom is explicitly opting into
// a value type.
type Fantom[T any] struct {
	Value                    T
	Range                    SyntaxRange
	Top, Left, Right, Bottom *Node[T]
}

// Snapshot captures n's current value, range, and neighbors into a
// Fantom. The Fantom does not track subsequent changes to n.
func (n *Node[T]) Snapshot() Fantom[T] {
	return Fantom[T]{
		Value:  n.value,
		Range:  n.rng,
		Top:    n.top,
		Left:   n.left,
		Right:  n.right,
		Bottom: n.bottom,
	}
}

// FantomEqual reports whether two Fantom snapshots are structurally
// identical: same value, range, and neighbor identities. It is a free
// function rather than a method because comparing Value requires T to
// be comparable, which Fantom itself cannot require without narrowing
// every other use of the type.
func FantomEqual[T comparable](a, b Fantom[T]) bool {
	return a.Value == b.Value &&
		a.Range == b.Range &&
		a.Top == b.Top &&
		a.Left == b.Left &&
		a.Right == b.Right &&
		a.Bottom == b.Bottom
}
