package benchmark

import "math"

// Comparison relates an old measurement to a new one of the same name.
// DiffNs is new minus old: positive means the new benchmark got slower (a
// regression), negative means it got faster (an improvement). That sign
// convention is fixed and everything downstream relies on it.
type Comparison struct {
	Old       Benchmark
	New       Benchmark
	DiffNs    int64
	DiffRatio float64
	Speedup   float64
}

// ShowMode selects which comparisons survive filtering.
type ShowMode int

const (
	ShowBoth ShowMode = iota
	ShowRegressions
	ShowImprovements
)

// Compare computes the delta between two measured records. When the old
// measurement is zero nanoseconds the ratio is +Inf for any slowdown and 0
// for an exact tie; the value propagates through formatting as a literal
// "+Inf" rather than panicking.
func Compare(old, new Benchmark) Comparison {
	diff := int64(new.Ns) - int64(old.Ns)
	var ratio float64
	switch {
	case old.Ns != 0:
		ratio = float64(diff) / float64(old.Ns)
	case diff > 0:
		ratio = math.Inf(1)
	case diff < 0:
		ratio = math.Inf(-1)
	}
	return Comparison{
		Old:       old,
		New:       new,
		DiffNs:    diff,
		DiffRatio: ratio,
		Speedup:   1 / (1 + ratio),
	}
}

// Regression reports whether the new benchmark is slower than the old.
func (c Comparison) Regression() bool {
	return c.DiffNs > 0
}

// PctChange is DiffRatio expressed as a percentage.
func (c Comparison) PctChange() float64 {
	return c.DiffRatio * 100
}

// Keep applies the display filters: a comparison is dropped when its
// truncated absolute percentage change falls below the threshold, or when
// the show mode excludes its direction. The threshold boundary is inclusive
// at the truncated value, and an exact-zero diff passes either show mode.
func (c Comparison) Keep(threshold float64, mode ShowMode) bool {
	if math.Trunc(math.Abs(c.PctChange())) < threshold {
		return false
	}
	switch mode {
	case ShowRegressions:
		return c.DiffNs >= 0
	case ShowImprovements:
		return c.DiffNs <= 0
	}
	return true
}
