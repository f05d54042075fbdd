// Package overlap partitions two sorted slices into the elements unique to
// each side and the pairs of elements that compare equal.
package overlap

// Pair holds one element from each input whose keys compared equal.
type Pair[T any] struct {
	Left  T
	Right T
}

// Result is the three-way partition produced by Find. All three slices
// preserve the ascending order of the inputs.
type Result[T any] struct {
	Left  []T // present only in the left input
	Pairs []Pair[T]
	Right []T // present only in the right input
}

// Find merges two slices sorted ascending by the key that cmp compares.
// Equal keys pair up positionally, so duplicates behave like a multiset
// merge: excess duplicates on one side fall into that side's unique bucket.
// Unsorted input produces undefined partitioning, not an error.
func Find[T any](left, right []T, cmp func(a, b T) int) Result[T] {
	var res Result[T]

	// Consume from the tail of each slice so removal is O(1).
	for len(left) > 0 && len(right) > 0 {
		l, r := left[len(left)-1], right[len(right)-1]
		switch c := cmp(l, r); {
		case c == 0:
			res.Pairs = append(res.Pairs, Pair[T]{Left: l, Right: r})
			left = left[:len(left)-1]
			right = right[:len(right)-1]
		case c > 0:
			res.Left = append(res.Left, l)
			left = left[:len(left)-1]
		default:
			res.Right = append(res.Right, r)
			right = right[:len(right)-1]
		}
	}
	for i := len(left) - 1; i >= 0; i-- {
		res.Left = append(res.Left, left[i])
	}
	for i := len(right) - 1; i >= 0; i-- {
		res.Right = append(res.Right, right[i])
	}

	// Tail consumption collected everything in descending order.
	reverse(res.Left)
	reverse(res.Pairs)
	reverse(res.Right)
	return res
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
