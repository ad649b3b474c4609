package generic

import "cmp"

// Search performs a plain binary search over a sorted sequence and returns
// the index of an element equal to value, or -1 when no element matches.
// When value occurs more than once the returned index is whichever match the
// halving path lands on; use SearchFirst or SearchLast when the position
// among duplicates matters.
func Search[K cmp.Ordered](seq []K, value K) int {
	return SearchBy(seq, value, identity[K])
}

// SearchBy is Search with a key extractor: elements are projected through key
// before comparison. The sequence must be sorted by the projected key.
func SearchBy[E any, K cmp.Ordered](seq []E, value K, key func(E) K) int {
	lo, hi := 0, len(seq)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		k := key(seq[mid])
		switch {
		case value == k:
			return mid
		case value > k:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return -1
}

// SearchFirst returns the lowest index whose element equals value, or -1.
func SearchFirst[K cmp.Ordered](seq []K, value K) int {
	return SearchFirstFunc(seq, value, identity[K], 0, len(seq)-1)
}

// SearchFirstBy is SearchFirst with a key extractor.
func SearchFirstBy[E any, K cmp.Ordered](seq []E, value K, key func(E) K) int {
	return SearchFirstFunc(seq, value, key, 0, len(seq)-1)
}

// SearchFirstFunc searches seq[start..end] (inclusive) for the first
// occurrence of value under the projected key. An empty window (end < start)
// is an ordinary not-found, not an error.
func SearchFirstFunc[E any, K cmp.Ordered](seq []E, value K, key func(E) K, start, end int) int {
	lo, hi := start, end
	for lo <= hi {
		mid := lo + (hi-lo)/2
		k := key(seq[mid])
		switch {
		case value == k:
			// Accept only if no preceding element carries the same key.
			if mid == 0 || key(seq[mid-1]) < value {
				return mid
			}
			hi = mid - 1
		case value > k:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return -1
}

// SearchLast returns the highest index whose element equals value, or -1.
func SearchLast[K cmp.Ordered](seq []K, value K) int {
	return SearchLastFunc(seq, value, identity[K], 0, len(seq)-1)
}

// SearchLastBy is SearchLast with a key extractor.
func SearchLastBy[E any, K cmp.Ordered](seq []E, value K, key func(E) K) int {
	return SearchLastFunc(seq, value, key, 0, len(seq)-1)
}

// SearchLastFunc searches seq[start..end] (inclusive) for the last occurrence
// of value under the projected key. An empty window (end < start) is an
// ordinary not-found.
func SearchLastFunc[E any, K cmp.Ordered](seq []E, value K, key func(E) K, start, end int) int {
	lo, hi := start, end
	for lo <= hi {
		mid := lo + (hi-lo)/2
		k := key(seq[mid])
		switch {
		case value == k:
			// Accept only if no following element carries the same key.
			if mid == len(seq)-1 || key(seq[mid+1]) > value {
				return mid
			}
			lo = mid + 1
		case value > k:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return -1
}

func identity[K cmp.Ordered](k K) K { return k }
