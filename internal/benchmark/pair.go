package benchmark

import (
	"sort"
	"strings"

	"benchcmp/internal/overlap"
)

// Suite is the outcome of pairing an old run against a new run. Every input
// record lands in exactly one bucket.
type Suite struct {
	Comparisons []Comparison // measured on both sides
	OnlyOld     []Benchmark  // in old but not in new
	OnlyNew     []Benchmark  // in new but not in old
	NowFailing  []Benchmark  // measured in old, FAILED in new (new-side record)
	NowPassing  []Benchmark  // FAILED in old, measured in new (new-side record)
}

// Pair sorts both runs by name, matches them with a linear merge and
// classifies each matched pair by status. Pairs that are still failing on
// both sides carry no comparable data and are dropped. Duplicate names are
// not collapsed; they pair up positionally.
func Pair(old, new []Benchmark) Suite {
	byName := func(records []Benchmark) func(i, j int) bool {
		return func(i, j int) bool { return records[i].Name < records[j].Name }
	}
	sort.SliceStable(old, byName(old))
	sort.SliceStable(new, byName(new))

	res := overlap.Find(old, new, func(a, b Benchmark) int {
		return strings.Compare(a.Name, b.Name)
	})

	suite := Suite{OnlyOld: res.Left, OnlyNew: res.Right}
	for _, p := range res.Pairs {
		switch {
		case p.Left.Measured() && p.Right.Measured():
			suite.Comparisons = append(suite.Comparisons, Compare(p.Left, p.Right))
		case p.Left.Measured():
			suite.NowFailing = append(suite.NowFailing, p.Right)
		case p.Right.Measured():
			suite.NowPassing = append(suite.NowPassing, p.Right)
		}
	}
	return suite
}

// Names lists the record names in order, for warning output.
func Names(records []Benchmark) []string {
	names := make([]string, len(records))
	for i, b := range records {
		names[i] = b.Name
	}
	return names
}
