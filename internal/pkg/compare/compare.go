// Package compare builds multi-key sort orders from ordered comparator
// chains, so each service's tie-break policy stays auditable as a
// plain list of keys.
package compare

import "sort"

// Comparator orders two values: negative when a sorts before b,
// positive when b sorts before a, zero when tied.
type Comparator[T any] func(a, b T) int

// Chain applies comparators in order, returning the first non-zero
// result. An empty chain reports everything equal.
func Chain[T any](cmps ...Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		for _, cmp := range cmps {
			if c := cmp(a, b); c != 0 {
				return c
			}
		}
		return 0
	}
}

// SortStable sorts s in place using cmp, keeping equal elements in
// their original order.
func SortStable[T any](s []T, cmp Comparator[T]) {
	sort.SliceStable(s, func(i, j int) bool {
		return cmp(s[i], s[j]) < 0
	})
}

// TrueFirst orders booleans with true before false
func TrueFirst(a, b bool) int {
	if a == b {
		return 0
	}
	if a {
		return -1
	}
	return 1
}

// FalseFirst orders booleans with false before true
func FalseFirst(a, b bool) int {
	return TrueFirst(b, a)
}

// IntAsc orders ints ascending
func IntAsc(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// IntDesc orders ints descending
func IntDesc(a, b int) int {
	return IntAsc(b, a)
}

// Float64Desc orders float64s descending
func Float64Desc(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}
