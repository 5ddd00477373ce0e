package mist

// Intersection is the total, pure classification of how two half-open
// intervals [i,j) and [s,e) relate. Given i<=j and s<=e, exactly one
// variant holds (spec.md §4.1).
type Intersection int

const (
	Same Intersection = iota
	Fragment
	Container
	Start
	Ahead
	End
	Behind
	Overflow
	Underflow
	Front
	Back
	After
	Before
)

func (v Intersection) String() string {
	switch v {
	case Same:
		return "Same"
	case Fragment:
		return "Fragment"
	case Container:
		return "Container"
	case Start:
		return "Start"
	case Ahead:
		return "Ahead"
	case End:
		return "End"
	case Behind:
		return "Behind"
	case Overflow:
		return "Overflow"
	case Underflow:
		return "Underflow"
	case Front:
		return "Front"
	case Back:
		return "Back"
	case After:
		return "After"
	case Before:
		return "Before"
	default:
		return "Intersection(?)"
	}
}

// Dominance is the quotient of Intersection by orientation: it answers
// "how does the second range sit relative to the first" without regard
// to which ends coincide or on which side a disjoint range lies.
type Dominance int

const (
	Exact Dominance = iota
	Contain
	Part
	Share
	None
)

func (d Dominance) String() string {
	switch d {
	case Exact:
		return "Exact"
	case Contain:
		return "Contain"
	case Part:
		return "Part"
	case Share:
		return "Share"
	case None:
		return "None"
	default:
		return "Dominance(?)"
	}
}

// Relation is the quotient of Intersection oriented for tree
// insertion: it answers "what would the second range become to the
// first, in a tree rooted on ranges".
type Relation int

const (
	Self Relation = iota
	Parent
	Child
	Clash
	Next
	Previous
)

func (r Relation) String() string {
	switch r {
	case Self:
		return "Self"
	case Parent:
		return "Parent"
	case Child:
		return "Child"
	case Clash:
		return "Clash"
	case Next:
		return "Next"
	case Previous:
		return "Previous"
	default:
		return "Relation(?)"
	}
}

// Precedence orders two weights: Higher if the first weight is
// greater, Lower if it is smaller, Equal otherwise.
type Precedence int

const (
	PrecedenceHigher Precedence = iota
	PrecedenceLower
	PrecedenceEqual
)

func (p Precedence) String() string {
	switch p {
	case PrecedenceHigher:
		return "Higher"
	case PrecedenceLower:
		return "Lower"
	default:
		return "Equal"
	}
}

// ComputeIntersection classifies the two half-open intervals [i,j) and
// [s,e). It is total on i<=j and s<=e; callers passing i>j or s>e get
// an unspecified but deterministic result (that combination cannot
// arise from a valid Range).
func ComputeIntersection(i, j, s, e uint64) Intersection {
	switch {
	case e < i:
		return Before
	case j < s:
		return After
	case i == s && j == e:
		return Same
	case i == s && j < e:
		return Ahead
	case i == s && e < j:
		return Start
	case j == e && s < i:
		return Behind
	case j == e && i < s:
		return End
	case e == i && s < e && i < j:
		return Back
	case j == s && i < j && s < e:
		return Front
	case s < i && j < e:
		return Container
	case s < i && i < e && e < j:
		return Underflow
	case i < s && e < j:
		return Fragment
	case i < s && s < j && j < e:
		return Overflow
	default:
		// i==j==s==e with none of the above touched only happens when
		// both intervals are empty and coincident, which Same already
		// covers (i==s ∧ j==e). Reaching here means non-total input.
		return Same
	}
}

// Dominance derives the Dominance quotient from an Intersection.
func (v Intersection) Dominance() Dominance {
	switch v {
	case Same:
		return Exact
	case Container, Ahead, Behind:
		return Contain
	case Fragment, Start, End:
		return Part
	case Overflow, Underflow:
		return Share
	default:
		return None
	}
}

// Relation derives the Relation quotient from an Intersection.
func (v Intersection) Relation() Relation {
	switch v {
	case Same:
		return Self
	case Fragment, Start, End:
		return Child
	case Container, Ahead, Behind:
		return Parent
	case Overflow, Underflow:
		return Clash
	case Front, After:
		return Next
	default: // Back, Before
		return Previous
	}
}

// Opposite returns the classification of [s,e) against [i,j) given the
// classification of [i,j) against [s,e): ComputeIntersection(i,j,s,e)
// .Opposite() == ComputeIntersection(s,e,i,j).
func (v Intersection) Opposite() Intersection {
	switch v {
	case Same:
		return Same
	case Fragment:
		return Container
	case Container:
		return Fragment
	case Start:
		return Ahead
	case Ahead:
		return Start
	case End:
		return Behind
	case Behind:
		return End
	case Overflow:
		return Underflow
	case Underflow:
		return Overflow
	case Front:
		return Back
	case Back:
		return Front
	case After:
		return Before
	case Before:
		return After
	default:
		return v
	}
}

// Opposite returns the Dominance of [s,e) against [i,j) given the
// Dominance of [i,j) against [s,e).
func (d Dominance) Opposite() Dominance {
	switch d {
	case Contain:
		return Part
	case Part:
		return Contain
	default:
		return d
	}
}

// Opposite returns the Relation of [s,e) against [i,j) given the
// Relation of [i,j) against [s,e).
func (r Relation) Opposite() Relation {
	switch r {
	case Parent:
		return Child
	case Child:
		return Parent
	case Next:
		return Previous
	case Previous:
		return Next
	default:
		return r
	}
}

// ComputeDominance classifies [i,j) against [s,e) directly as a
// Dominance, without exposing the finer Intersection.
func ComputeDominance(i, j, s, e uint64) Dominance {
	return ComputeIntersection(i, j, s, e).Dominance()
}

// ComputeRelation classifies [i,j) against [s,e) directly as a
// Relation, without exposing the finer Intersection.
func ComputeRelation(i, j, s, e uint64) Relation {
	return ComputeIntersection(i, j, s, e).Relation()
}

// ComputePrecedence orders weight k (first range) against weight w
// (second range).
func ComputePrecedence(k, w int64) Precedence {
	switch {
	case k > w:
		return PrecedenceHigher
	case k < w:
		return PrecedenceLower
	default:
		return PrecedenceEqual
	}
}

// Intersect classifies r against o: Intersect(r,o) ==
// ComputeIntersection(r.Offset, r.Terminal(), o.Offset, o.Terminal()).
func Intersect(r, o Range) Intersection {
	return ComputeIntersection(r.Offset, r.Terminal(), o.Offset, o.Terminal())
}

// DominanceOf classifies r against o as a Dominance.
func DominanceOf(r, o Range) Dominance {
	return Intersect(r, o).Dominance()
}

// RelationOf classifies r against o as a Relation.
func RelationOf(r, o Range) Relation {
	return Intersect(r, o).Relation()
}

// PrecedenceOf orders a.Weight against b.Weight.
func PrecedenceOf(a, b SyntaxRange) Precedence {
	return ComputePrecedence(a.Weight, b.Weight)
}

// IntersectionWith classifies a against b directly from their fixed
// ranges, the node-accepting counterpart of Intersect/ComputeIntersection.
func (a *Node[T]) IntersectionWith(b *Node[T]) Intersection {
	return Intersect(a.rng.Range, b.rng.Range)
}

// DominanceWith classifies a against b as a Dominance.
func (a *Node[T]) DominanceWith(b *Node[T]) Dominance {
	return a.IntersectionWith(b).Dominance()
}

// RelationWith classifies a against b as a Relation.
func (a *Node[T]) RelationWith(b *Node[T]) Relation {
	return a.IntersectionWith(b).Relation()
}

// PrecedenceWith orders a's weight against b's weight.
func (a *Node[T]) PrecedenceWith(b *Node[T]) Precedence {
	return ComputePrecedence(a.rng.Weight, b.rng.Weight)
}
