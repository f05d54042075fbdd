package benchmark

// Status tags a record as a real measurement or a failed benchmark.
type Status int

const (
	StatusMeasured Status = iota
	StatusFailed
)

// Benchmark is all extractable data from a single micro-benchmark report
// line. Ns and Variance carry meaning only for StatusMeasured; Throughput
// is zero when the line reported no MB/s figure.
type Benchmark struct {
	Name       string `json:"name"`
	Ns         uint64 `json:"ns"`
	Variance   uint64 `json:"variance"`
	Throughput uint64 `json:"throughput,omitempty"`
	Status     Status `json:"-"`
	Failure    string `json:"failure,omitempty"` // panic message from the test output, if captured
}

// Measured reports whether the record holds a usable measurement.
func (b Benchmark) Measured() bool {
	return b.Status == StatusMeasured
}
