package overlap

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFind(t *testing.T) {
	left := []string{"a", "b", "d"}
	right := []string{"b", "c", "d"}

	res := Find(left, right, strings.Compare)

	assert.Equal(t, []string{"a"}, res.Left)
	assert.Equal(t, []string{"c"}, res.Right)
	if assert.Len(t, res.Pairs, 2) {
		assert.Equal(t, "b", res.Pairs[0].Left)
		assert.Equal(t, "b", res.Pairs[0].Right)
		assert.Equal(t, "d", res.Pairs[1].Left)
		assert.Equal(t, "d", res.Pairs[1].Right)
	}
}

func TestFindEmptySides(t *testing.T) {
	res := Find(nil, []string{"a", "b"}, strings.Compare)
	assert.Empty(t, res.Left)
	assert.Empty(t, res.Pairs)
	assert.Equal(t, []string{"a", "b"}, res.Right)

	res = Find([]string{"a", "b"}, nil, strings.Compare)
	assert.Equal(t, []string{"a", "b"}, res.Left)
	assert.Empty(t, res.Pairs)
	assert.Empty(t, res.Right)
}

func TestFindDuplicates(t *testing.T) {
	// Duplicate keys pair positionally; the excess duplicate falls into the
	// unpaired bucket of its own side.
	left := []string{"a", "a", "b"}
	right := []string{"a", "c"}

	res := Find(left, right, strings.Compare)

	assert.Equal(t, []string{"a", "b"}, res.Left)
	assert.Equal(t, []string{"c"}, res.Right)
	if assert.Len(t, res.Pairs, 1) {
		assert.Equal(t, "a", res.Pairs[0].Left)
	}
}

// Every input element lands in exactly one partition, and joining the
// unique bucket with the paired elements rebuilds each input multiset.
func TestFindTotality(t *testing.T) {
	cases := []struct {
		name  string
		left  []string
		right []string
	}{
		{"disjoint", []string{"a", "b"}, []string{"c", "d"}},
		{"identical", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"interleaved", []string{"a", "c", "e"}, []string{"b", "c", "d"}},
		{"duplicates", []string{"a", "a", "a", "b"}, []string{"a", "a", "c", "c"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Find(tc.left, tc.right, strings.Compare)

			var gotLeft, gotRight []string
			gotLeft = append(gotLeft, res.Left...)
			gotRight = append(gotRight, res.Right...)
			for _, p := range res.Pairs {
				gotLeft = append(gotLeft, p.Left)
				gotRight = append(gotRight, p.Right)
			}
			sort.Strings(gotLeft)
			sort.Strings(gotRight)
			assert.Equal(t, tc.left, gotLeft)
			assert.Equal(t, tc.right, gotRight)

			// Disjointness: no key in both unique buckets.
			rightSet := make(map[string]bool)
			for _, k := range res.Right {
				rightSet[k] = true
			}
			for _, k := range res.Left {
				assert.False(t, rightSet[k], "key %q in both unique buckets", k)
			}
		})
	}
}

func TestFindPreservesAscendingOrder(t *testing.T) {
	left := []string{"a", "c", "e", "g"}
	right := []string{"b", "c", "f", "g"}

	res := Find(left, right, strings.Compare)

	assert.True(t, sort.StringsAreSorted(res.Left))
	assert.True(t, sort.StringsAreSorted(res.Right))
	var pairKeys []string
	for _, p := range res.Pairs {
		pairKeys = append(pairKeys, p.Left)
	}
	assert.True(t, sort.StringsAreSorted(pairKeys))
}
