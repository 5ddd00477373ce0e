package mist

import "fmt"

// Range is a half-open interval [Offset, Offset+Length) of buffer
// indices. Offset and Length are unsigned; Length may be zero.
type Range struct {
	Offset uint64
	Length uint64
}

// NewRange constructs a Range, returning ErrInvalidRange if terminal
// would overflow. Length itself is always non-negative by type.
func NewRange(offset, length uint64) (Range, error) {
	if offset+length < offset {
		return Range{}, ErrInvalidRange
	}
	return Range{Offset: offset, Length: length}, nil
}

// Terminal returns one past the last index covered by the range:
// Offset + Length.
func (r Range) Terminal() uint64 {
	return r.Offset + r.Length
}

// Empty reports whether the range covers no indices.
func (r Range) Empty() bool {
	return r.Length == 0
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Offset, r.Terminal())
}

// SyntaxRange extends Range with a signed weight, used only to break
// ties between two nodes with identical ranges: higher weight nests
// inside lower weight.
type SyntaxRange struct {
	Range
	Weight int64
}

// NewSyntaxRange constructs a SyntaxRange.
func NewSyntaxRange(offset, length uint64, weight int64) (SyntaxRange, error) {
	r, err := NewRange(offset, length)
	if err != nil {
		return SyntaxRange{}, err
	}
	return SyntaxRange{Range: r, Weight: weight}, nil
}

func (r SyntaxRange) String() string {
	return fmt.Sprintf("%s@%d", r.Range, r.Weight)
}

// Side names one of a node's four neighbor slots, used as the key type
// for Compute's dry-run result map.
type Side int

const (
	Top Side = iota
	Left
	Right
	Bottom

	// Clashing is not a real neighbor slot: Compute uses it as the sole
	// key of its result map when the insertion would fail, so callers
	// can distinguish "would clash" from "would succeed with no
	// neighbors on some sides" without a second return value.
	Clashing
)

func (s Side) String() string {
	switch s {
	case Top:
		return "Top"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Bottom:
		return "Bottom"
	case Clashing:
		return "Clashing"
	default:
		return "Side(?)"
	}
}
