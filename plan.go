package mist

// plan.go holds the pure case analysis shared by Offer and Compute
// (spec.md §4.5/§4.6): a placement describes where an incoming range
// would attach, without touching any neighbor field. offer.go applies
// a successful placement by mutating; compute.go turns it into the
// Side-keyed map spec.md §4.6 describes. Keeping the analysis here
// once means the two families cannot drift apart.

// placement describes the neighbors an incoming node would receive.
// bottomTail, when set, is the last node of the adopted children chain
// and must have its Right severed once adopted (it previously pointed
// past the end of the run, into whatever incoming now sits next to).
type placement[T any] struct {
	top, left, right, bottom, bottomTail *Node[T]
}

type outcomeKind int

const (
	outcomeOK outcomeKind = iota
	outcomeClash
	outcomeTakeover
	outcomeCorrupted
)

// outcome is the result of planning an insertion: exactly one kind of
// success or failure, carrying the node(s) relevant to it.
type outcome[T any] struct {
	kind  outcomeKind
	place *placement[T]
	node  *Node[T]
	extra *Node[T]
	msg   string
}

func ok[T any](p *placement[T]) outcome[T] {
	return outcome[T]{kind: outcomeOK, place: p}
}

func clash[T any](with *Node[T]) outcome[T] {
	return outcome[T]{kind: outcomeClash, node: with}
}

func takeover[T any](existing *Node[T]) outcome[T] {
	return outcome[T]{kind: outcomeTakeover, node: existing}
}

func corrupted[T any](msg string, nodes ...*Node[T]) outcome[T] {
	o := outcome[T]{kind: outcomeCorrupted, msg: msg}
	if len(nodes) > 0 {
		o.node = nodes[0]
	}
	if len(nodes) > 1 {
		o.extra = nodes[1]
	}
	return o
}

// plan is the entry point mirroring Offer's top-level dispatch.
func plan[T any](this *Node[T], incoming SyntaxRange) outcome[T] {
	if err := this.checkShape(); err != nil {
		return corrupted[T]("this node violates the T-shape invariant", this)
	}
	rel := RelationOf(this.Range().Range, incoming.Range)
	switch rel {
	case Clash:
		return clash[T](this)
	case Self:
		return planSelf(this, incoming)
	case Child:
		return planChild(this, incoming)
	case Parent:
		return planParent(this, incoming)
	case Next, Previous:
		return planSibling(this, incoming, rel)
	default:
		return corrupted[T]("unreachable relation at top-level dispatch", this)
	}
}

// planSelf handles Relation == Self: incoming has this's exact range.
func planSelf[T any](this *Node[T], incoming SyntaxRange) outcome[T] {
	switch ComputePrecedence(this.Weight(), incoming.Weight) {
	case PrecedenceEqual:
		return takeover[T](this)

	case PrecedenceLower: // incoming has higher weight: nests inside this
		if this.bottom != nil && RelationOf(this.bottom.Range().Range, incoming.Range) == Self {
			return planSelf(this.bottom, incoming)
		}
		p := &placement[T]{top: this}
		if this.bottom != nil {
			p.bottom = this.bottom
			p.bottomTail = this.bottom.Tail()
		}
		return ok(p)

	default: // PrecedenceHigher: incoming has lower weight, becomes this's new parent
		p := &placement[T]{
			right:      this.right,
			bottom:     this,
			bottomTail: this,
		}
		if this.top != nil {
			p.top = this.top
		} else if this.left != nil {
			p.left = this.left
		}
		return ok(p)
	}
}

// planChild handles Relation == Child: incoming fits strictly within this.
func planChild[T any](this *Node[T], incoming SyntaxRange) outcome[T] {
	bottom := this.bottom
	if bottom == nil {
		return ok(&placement[T]{top: this})
	}

	rel := RelationOf(bottom.Range().Range, incoming.Range)
	switch rel {
	case Self:
		return planSelf(bottom, incoming)
	case Child:
		return planChild(bottom, incoming)
	case Previous:
		// incoming becomes new first child, displacing bottom rightward.
		return ok(&placement[T]{top: this, right: bottom})
	case Next:
		return planChildRun(this, bottom, incoming)
	case Parent:
		return planChildAbsorb(this, bottom, incoming)
	case Clash:
		return clash[T](bottom)
	default:
		return corrupted[T]("unexpected relation to first child", this, bottom)
	}
}

// planChildRun scans this's children rightward from bottom looking for
// where incoming settles: it may recurse into a sibling with Self or
// Child relation, absorb a contiguous run of contained siblings, or
// simply splice between two disjoint siblings.
func planChildRun[T any](this *Node[T], bottom *Node[T], incoming SyntaxRange) outcome[T] {
	cur := bottom
	var lastOuter *Node[T]
	var runFar *Node[T]
	hasRun := false

scan:
	for cur != nil {
		rel := RelationOf(cur.Range().Range, incoming.Range)
		switch rel {
		case Self:
			return planSelf(cur, incoming)
		case Child:
			return planChild(cur, incoming)
		case Next:
			lastOuter = cur
			cur = cur.right
		case Parent:
			runFar = cur
			hasRun = true
			cur = cur.right
		case Clash:
			return clash[T](cur)
		case Previous:
			break scan
		default:
			return corrupted[T]("unexpected relation while scanning children", this, cur)
		}
	}

	p := &placement[T]{right: cur}
	if lastOuter != nil {
		p.left = lastOuter
	} else {
		p.top = this
	}
	if hasRun {
		if lastOuter != nil {
			p.bottom = lastOuter.right
		} else {
			p.bottom = bottom
		}
		p.bottomTail = runFar
	}
	return ok(p)
}

// planChildAbsorb handles the case where incoming already contains the
// current first child: incoming becomes the new first child, adopting
// a contiguous run starting at bottom as its own children.
func planChildAbsorb[T any](this *Node[T], bottom *Node[T], incoming SyntaxRange) outcome[T] {
	cur := bottom
	var runEnd *Node[T]

scan:
	for cur != nil {
		rel := RelationOf(cur.Range().Range, incoming.Range)
		switch rel {
		case Parent:
			runEnd = cur
			cur = cur.right
		case Clash:
			return clash[T](cur)
		case Previous:
			break scan
		default:
			return corrupted[T]("expected contained sibling while absorbing run", this, cur)
		}
	}
	return ok(&placement[T]{
		top:        this,
		right:      cur,
		bottom:     bottom,
		bottomTail: runEnd,
	})
}

// planParent handles Relation == Parent: incoming strictly contains this.
func planParent[T any](this *Node[T], incoming SyntaxRange) outcome[T] {
	parent := this.Parent()
	if parent != nil {
		rel := RelationOf(parent.Range().Range, incoming.Range)
		switch rel {
		case Self:
			return planSelf(parent, incoming)
		case Parent:
			return planParent(parent, incoming)
		case Child:
			return planChild(parent, incoming)
		case Clash:
			return clash[T](parent)
		default:
			return corrupted[T]("unexpected relation between parent and incoming", parent, this)
		}
	}
	return planParentAtRoot(this, incoming)
}

// planParentAtRoot handles the rootless case of planParent: this has no
// parent, so the maximal contiguous run of this's top-level siblings
// (scanning both directions from this) that fits inside incoming is
// found and adopted as incoming's children.
func planParentAtRoot[T any](this *Node[T], incoming SyntaxRange) outcome[T] {
	runStart, outerLeft, o := scanRunLeft(this, incoming)
	if o.kind != outcomeOK {
		return o
	}
	runEnd, outerRight, o2 := scanRunRight(this, incoming)
	if o2.kind != outcomeOK {
		return o2
	}

	p := &placement[T]{
		right:      outerRight,
		bottom:     runStart,
		bottomTail: runEnd,
	}
	if outerLeft != nil {
		p.left = outerLeft
	}
	return ok(p)
}

func scanRunLeft[T any](from *Node[T], incoming SyntaxRange) (*Node[T], *Node[T], outcome[T]) {
	runStart := from
	cur := from
	for cur.left != nil {
		candidate := cur.left
		rel := RelationOf(candidate.Range().Range, incoming.Range)
		switch rel {
		case Parent:
			runStart = candidate
			cur = candidate
		case Next, Previous:
			return runStart, candidate, ok[T](nil)
		case Clash:
			return nil, nil, clash[T](candidate)
		default:
			return nil, nil, corrupted[T]("unexpected relation scanning left of root splice", from, candidate)
		}
	}
	return runStart, nil, ok[T](nil)
}

func scanRunRight[T any](from *Node[T], incoming SyntaxRange) (*Node[T], *Node[T], outcome[T]) {
	runEnd := from
	cur := from
	for cur.right != nil {
		candidate := cur.right
		rel := RelationOf(candidate.Range().Range, incoming.Range)
		switch rel {
		case Parent:
			runEnd = candidate
			cur = candidate
		case Next, Previous:
			return runEnd, candidate, ok[T](nil)
		case Clash:
			return nil, nil, clash[T](candidate)
		default:
			return nil, nil, corrupted[T]("unexpected relation scanning right of root splice", from, candidate)
		}
	}
	return runEnd, nil, ok[T](nil)
}

// planSibling handles a direct Next/Previous relation between this and
// incoming: incoming attaches as a sibling of this rather than a child
// or parent. It scans in the indicated direction exactly like
// planChildRun, but delegates to this's parent if the scan runs off
// the edge of this's generation without finding a boundary sibling.
func planSibling[T any](this *Node[T], incoming SyntaxRange, rel Relation) outcome[T] {
	rightward := rel == Next
	continueRel, terminateRel := Previous, Next
	if rightward {
		continueRel, terminateRel = Next, Previous
	}
	_ = terminateRel

	step := func(n *Node[T]) *Node[T] {
		if rightward {
			return n.right
		}
		return n.left
	}

	cur := step(this)
	lastOuter := this
	var runFar *Node[T]
	hasRun := false

scan:
	for cur != nil {
		r := RelationOf(cur.Range().Range, incoming.Range)
		switch {
		case r == Self:
			return planSelf(cur, incoming)
		case r == Child:
			return planChild(cur, incoming)
		case r == Parent:
			runFar = cur
			hasRun = true
			cur = step(cur)
		case r == Clash:
			return clash[T](cur)
		case r == continueRel:
			lastOuter = cur
			cur = step(cur)
		default:
			break scan
		}
	}

	if cur == nil {
		if parent := this.Parent(); parent != nil {
			return planViaParent(this, parent, incoming)
		}
	}

	var structLeft, structRight *Node[T]
	var childHead, childTail *Node[T]
	if rightward {
		structLeft, structRight = lastOuter, cur
		if hasRun {
			childHead, childTail = lastOuter.right, runFar
		}
	} else {
		structLeft, structRight = cur, lastOuter
		if hasRun {
			childHead, childTail = runFar, lastOuter.left
		}
	}

	p := &placement[T]{right: structRight}
	if structLeft != nil {
		p.left = structLeft
	}
	if hasRun {
		p.bottom = childHead
		p.bottomTail = childTail
	}
	return ok(p)
}

// planViaParent escalates an overflowing sibling-run scan to this's
// parent, whose own relation to incoming decides the next step.
func planViaParent[T any](this *Node[T], parent *Node[T], incoming SyntaxRange) outcome[T] {
	rel := RelationOf(parent.Range().Range, incoming.Range)
	switch rel {
	case Self:
		return planSelf(parent, incoming)
	case Parent:
		return planParent(parent, incoming)
	case Child:
		return planChild(parent, incoming)
	case Next, Previous:
		return planSibling(parent, incoming, rel)
	case Clash:
		return clash[T](parent)
	default:
		return corrupted[T]("unexpected relation to parent while delegating sibling overflow", parent, this)
	}
}
