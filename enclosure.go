package mist

import "iter"

// Enclosure is one balanced pairing produced by ComputeEnclosure: Open
// and Close are the matched delimiter ranges themselves, Outer spans
// from the opener's start to the closer's end, and Inner spans the gap
// between them (what the opener and closer enclose).
type Enclosure struct {
	Open, Close, Outer, Inner Range
}

// ComputeEnclosure matches two independent streams of delimiter ranges
// — openers and closers, both already in offset order — into balanced,
// non-overlapping pairs (spec.md §4.7). It never inspects buffer
// content: opens and closes are just ranges, so the same routine
// serves single-character brackets, multi-character delimiters, or a
// combined stream pre-split by a caller into its opener and closer
// halves.
//
// A stack of unmatched openers is scanned from its most recently
// pushed end for each closer, in order: the first opener found whose
// Terminal is at or before the closer's Offset is popped and paired
// with it, wherever in the stack it sits (not just the top), so an
// outer opener can outlive several fully-matched inner pairs. A closer
// with no eligible opener is skipped, leaving it unmatched.
func ComputeEnclosure(opens, closes []Range) iter.Seq[Enclosure] {
	return func(yield func(Enclosure) bool) {
		stack := append([]Range(nil), opens...)

		for _, c := range closes {
			idx := -1
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].Terminal() <= c.Offset {
					idx = i
					break
				}
			}
			if idx == -1 {
				continue
			}
			o := stack[idx]
			stack = append(stack[:idx], stack[idx+1:]...)

			e := Enclosure{
				Open:  o,
				Close: c,
				Outer: Range{Offset: o.Offset, Length: c.Terminal() - o.Offset},
				Inner: Range{Offset: o.Terminal(), Length: c.Offset - o.Terminal()},
			}
			if !yield(e) {
				return
			}
		}
	}
}
