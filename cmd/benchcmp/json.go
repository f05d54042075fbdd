package main

import (
	"encoding/json"
	"io"
	"math"

	"benchcmp/internal/benchmark"
)

// jsonFloat marshals non-finite values as quoted strings, which
// encoding/json otherwise rejects. A zero-ns old measurement produces an
// infinite ratio and that has to survive the trip into JSON.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(v)
}

type comparisonJSON struct {
	Name    string    `json:"name"`
	OldNs   uint64    `json:"old_ns"`
	NewNs   uint64    `json:"new_ns"`
	DiffNs  int64     `json:"diff_ns"`
	DiffPct jsonFloat `json:"diff_pct"`
	Speedup jsonFloat `json:"speedup"`
}

type failureJSON struct {
	Name    string `json:"name"`
	Message string `json:"message,omitempty"`
}

type reportJSON struct {
	Comparisons  []comparisonJSON `json:"comparisons"`
	MissingInNew []string         `json:"missing_in_new,omitempty"`
	MissingInOld []string         `json:"missing_in_old,omitempty"`
	NowFailing   []failureJSON    `json:"now_failing,omitempty"`
	NowPassing   []string         `json:"now_passing,omitempty"`
}

func writeJSON(w io.Writer, comps []benchmark.Comparison, suite benchmark.Suite) error {
	report := reportJSON{Comparisons: []comparisonJSON{}}
	for _, c := range comps {
		report.Comparisons = append(report.Comparisons, comparisonJSON{
			Name:    c.Old.Name,
			OldNs:   c.Old.Ns,
			NewNs:   c.New.Ns,
			DiffNs:  c.DiffNs,
			DiffPct: jsonFloat(c.PctChange()),
			Speedup: jsonFloat(c.Speedup),
		})
	}
	report.MissingInNew = benchmark.Names(suite.OnlyOld)
	report.MissingInOld = benchmark.Names(suite.OnlyNew)
	for _, b := range suite.NowFailing {
		report.NowFailing = append(report.NowFailing, failureJSON{Name: b.Name, Message: b.Failure})
	}
	report.NowPassing = benchmark.Names(suite.NowPassing)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
