package minfree

// Find returns the smallest non-negative integer absent from numbers.
//
// The input may be unsorted and may contain duplicates and arbitrarily large
// values; it is never modified. The search runs in linear time without
// sorting: it recursively partitions the values around the midpoint of the
// window that is known to contain the answer, descending into whichever half
// has a gap.
func Find(numbers []uint64) uint64 {
	xs := distinct(numbers)
	return search(xs, Window{Start: 0, Length: uint64(len(xs))})
}

// distinct collapses the input multiset to a set in one pass. The fullness
// test in search counts elements below the pivot, which is only meaningful
// when every value occurs at most once.
func distinct(numbers []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(numbers))
	xs := make([]uint64, 0, len(numbers))
	for _, v := range numbers {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		xs = append(xs, v)
	}
	return xs
}

// search finds the smallest value absent from xs, assuming it lies in w.
//
// Invariant: xs holds exactly w.Length distinct values, every integer below
// w.Start occurs in the original input, and no value of xs at or above
// w.End() can block a remaining candidate.
func search(xs []uint64, w Window) uint64 {
	if len(xs) == 0 {
		// Everything below w.Start is present and nothing remains in range
		// to block w.Start itself.
		return w.Start
	}
	pv := w.Pivot()
	left, right := partition(xs, pv)
	leftLen := uint64(len(left))
	if w.Start+leftLen == pv {
		// Left half is full: every integer in [w.Start, pv) is present, so
		// the answer is at or above pv. The new window length is the old
		// window's capacity minus the left count, not len(right).
		return search(right, Window{Start: pv, Length: w.Length - leftLen})
	}
	// Left half has a gap.
	return search(left, Window{Start: w.Start, Length: leftLen})
}

// partition splits xs into values below pivot and values at or above it,
// preserving relative order within each side.
func partition(xs []uint64, pivot uint64) (left, right []uint64) {
	left = make([]uint64, 0, len(xs))
	right = make([]uint64, 0, len(xs))
	for _, v := range xs {
		if v < pivot {
			left = append(left, v)
		} else {
			right = append(right, v)
		}
	}
	return left, right
}
