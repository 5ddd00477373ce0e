package mist

// Compute is Offer's non-mutating twin (spec.md §4.6): it runs the
// exact same case analysis but only reports what would happen,
// touching no neighbor field of this or of any existing node.
//
// On success it returns a map naming, for each side incoming would
// acquire a neighbor on, the node that would sit there; sides with no
// new neighbor are simply absent from the map. If the insertion would
// fail with a TreeClash or TreeTakeover, the result is a single-entry
// map keyed by Clashing, naming the node incoming would have collided
// with. If this's own structure is already corrupted, the result is
// an empty map: Compute never panics or returns a Go error for tree
// corruption, since it makes no promise about being able to explain a
// structure it was never able to safely traverse.
//
// A malformed range (e.g. one that would overflow) is a genuine
// precondition error and is reported as a real Go error instead, since
// it is a caller bug rather than a fact about the tree.
func (this *Node[T]) Compute(offset, length uint64, weight int64) (map[Side]*Node[T], error) {
	rng, err := NewSyntaxRange(offset, length, weight)
	if err != nil {
		return nil, err
	}

	o := plan[T](this, rng)
	switch o.kind {
	case outcomeClash, outcomeTakeover:
		return map[Side]*Node[T]{Clashing: o.node}, nil
	case outcomeCorrupted:
		return map[Side]*Node[T]{}, nil
	}
	return placementToMap(o.place), nil
}

// ComputeNode is Compute's other call form (spec.md §6): it dry-runs
// placing an already-constructed node instead of a raw
// offset/length/weight triple, without mutating either this or
// incoming.
func (this *Node[T]) ComputeNode(incoming *Node[T]) (map[Side]*Node[T], error) {
	return this.Compute(incoming.Offset(), incoming.Length(), incoming.Weight())
}

func placementToMap[T any](p *placement[T]) map[Side]*Node[T] {
	m := make(map[Side]*Node[T], 4)
	if p.top != nil {
		m[Top] = p.top
	}
	if p.left != nil {
		m[Left] = p.left
	}
	if p.right != nil {
		m[Right] = p.right
	}
	if p.bottom != nil {
		m[Bottom] = p.bottom
	}
	return m
}
