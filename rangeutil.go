// rangeutil.go: range-bound normalization against a collection size.
//
// Grounded on original_source/src/range.h's RangeInfo/normalizeIndex/
// normalizeRange: missing bounds default (start->0, end->n-1), a present
// negative bound is rewritten as n+bound, an out-of-[0,n) bound after
// rewriting is rejected outright (no clamping), and start > end is
// rejected — ranges never descend (spec.md §4.2).
package rill

// RangeBounds is a possibly-partial, possibly-negative range as written by
// the user (`[a..b]`, `[a..]`, `[..b]`, `[..]`).
type RangeBounds struct {
	Start, End         int
	HasStart, HasEnd bool
}

// NormalizeIndex rewrites a possibly-negative single index against a
// collection of size n. Returns (-1, false) if the index is out of range
// after rewriting.
func NormalizeIndex(index, n int) (int, bool) {
	if index < 0 {
		index = n + index
	}
	if index < 0 || index >= n {
		return -1, false
	}
	return index, true
}

// NormalizeRange resolves RangeBounds against a collection of size n into
// concrete, inclusive-both-ends [start, end] bounds. Returns ok=false if
// either bound is out of [0,n) after rewriting, or if start > end.
func NormalizeRange(n int, r RangeBounds) (start, end int, ok bool) {
	start, end = 0, n-1
	if r.HasStart {
		start = r.Start
	}
	if r.HasEnd {
		end = r.End
	}
	if start < 0 {
		start = n + start
	}
	if end < 0 {
		end = n + end
	}
	if start < 0 || start >= n || end < 0 || end >= n {
		return 0, 0, false
	}
	if start > end {
		return 0, 0, false
	}
	return start, end, true
}
