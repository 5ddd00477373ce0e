// Package mist implements a Managed Index Syntax Tree: a self-ordering
// two-dimensional tree of half-open ranges over an external linear
// buffer. Nodes are inserted with Offer, which finds the unique legal
// position for a range relative to the ranges already present, or fails
// with one of the typed errors below.
package mist

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Precondition errors
var (
	// ErrInvalidRange indicates a range whose terminal (offset+length)
	// overflows uint64.
	ErrInvalidRange = errors.New("mist: invalid range: offset+length overflows")

	// ErrEmptyPath indicates an empty index path was passed to indexed access.
	ErrEmptyPath = errors.New("mist: empty index path")

	// ErrIndexOutOfRange indicates an indexed-access path referenced a
	// missing child.
	ErrIndexOutOfRange = errors.New("mist: child index out of range")

	// ErrClash is wrapped by every TreeClash; callers can test for it
	// with errors.Is without depending on the concrete type.
	ErrClash = errors.New("mist: range clashes with an existing node")

	// ErrTakeover is wrapped by every TreeTakeover.
	ErrTakeover = errors.New("mist: range and weight already occupied by an existing node")
)

// IllegalTree is the supertype of the two recoverable error kinds
// (TreeClash, TreeTakeover). Callers may reshape their input and retry.
// It is not returned on its own: precondition violations (an
// overflowing range, a bad index path) are reported with the sentinel
// errors above instead.
type IllegalTree struct {
	msg   string
	cause error

	// Nodes is the chain of offending nodes; the last entry is the
	// direct cause. Elements are *Node[T] but stored as `any` since the
	// error type itself cannot be generic over T.
	Nodes []any
}

func (e *IllegalTree) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("mist: %s: %v", e.msg, e.cause)
	}
	return "mist: " + e.msg
}

func (e *IllegalTree) Unwrap() error { return e.cause }

func newIllegalTree(msg string, cause error, nodes ...any) *IllegalTree {
	return &IllegalTree{msg: msg, cause: cause, Nodes: nodes}
}

// TreeClash reports that an incoming node has Share dominance
// (Overflow or Underflow) with an existing node along the required
// insertion path.
type TreeClash struct {
	*IllegalTree
}

func newTreeClash(nodes ...any) *TreeClash {
	return &TreeClash{newIllegalTree("range clashes with an existing node", ErrClash, nodes...)}
}

// TreeTakeover reports that an incoming node has an identical range
// and equal weight to an existing node.
type TreeTakeover struct {
	*IllegalTree
}

func newTreeTakeover(existing any) *TreeTakeover {
	return &TreeTakeover{newIllegalTree("range and weight already occupied by an existing node", ErrTakeover, existing)}
}

// CorruptedTree reports that a structural invariant (the T-shape rule,
// or an impossible containment/sibling ordering) was violated
// mid-walk. It is fatal: no recovery is attempted, and the structure
// that raised it must not be used further.
type CorruptedTree struct {
	msg   string
	Nodes []any
	stack error
}

func newCorruptedTree(msg string, nodes ...any) *CorruptedTree {
	return &CorruptedTree{
		msg:   msg,
		Nodes: nodes,
		stack: pkgerrors.WithStack(errors.New(msg)),
	}
}

func (e *CorruptedTree) Error() string {
	return fmt.Sprintf("mist: corrupted tree: %s\n%+v", e.msg, e.stack)
}

func (e *CorruptedTree) Unwrap() error { return e.stack }
