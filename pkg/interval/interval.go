// Package interval provides minute-interval algebra shared by the
// availability engine. Intervals are half-open [Start, End) minute offsets;
// values outside a single day (negative starts, ends past 24:00) are legal
// and handled by plain integer comparison.
package interval

import "sort"

// Span is a minute interval [Start, End).
type Span struct {
	Start int
	End   int
}

// Overlaps reports whether s and other share at least one minute.
// Touching spans (s.End == other.Start) do not overlap.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// Merge returns the minimal non-overlapping cover of the given spans,
// sorted by start. Touching spans are merged. The input slice is not
// modified; empty input yields an empty result.
func Merge(spans []Span) []Span {
	if len(spans) == 0 {
		return []Span{}
	}

	sorted := make([]Span, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	merged := make([]Span, 0, len(sorted))
	current := sorted[0]

	for _, next := range sorted[1:] {
		if next.Start <= current.End {
			if next.End > current.End {
				current.End = next.End
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}

	return append(merged, current)
}
