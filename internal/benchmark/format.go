package benchmark

import (
	"fmt"
	"strconv"
	"strings"
)

// FmtThousands formats n in decimal with sep inserted every three digits
// from the least-significant end.
func FmtThousands(n uint64, sep byte) string {
	s := strconv.FormatUint(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	first := len(s) % 3
	if first == 0 {
		first = 3
	}
	b.WriteString(s[:first])
	for i := first; i < len(s); i += 3 {
		b.WriteByte(sep)
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FmtSigned formats a signed count with thousands separators. The sign, if
// any, always precedes the first digit group.
func FmtSigned(n int64, sep byte) string {
	if n < 0 {
		return "-" + FmtThousands(uint64(-n), sep)
	}
	return FmtThousands(uint64(n), sep)
}

// FmtNs renders the measurement cell: grouped nanoseconds, optionally the
// variance, and the throughput when the record reported one.
func (b Benchmark) FmtNs(variance bool) string {
	var sb strings.Builder
	sb.WriteString(FmtThousands(b.Ns, ','))
	if variance {
		fmt.Fprintf(&sb, " (+/- %d)", b.Variance)
	}
	if b.Throughput != 0 {
		fmt.Fprintf(&sb, " (%d MB/s)", b.Throughput)
	}
	return sb.String()
}

// Line renders the record back into its canonical report line, the inverse
// of ParseLine for measured records.
func (b Benchmark) Line() string {
	if b.Status == StatusFailed {
		return fmt.Sprintf("test %s ... FAILED", b.Name)
	}
	line := fmt.Sprintf("test %s ... bench: %s ns/iter (+/- %s)",
		b.Name, FmtThousands(b.Ns, ','), FmtThousands(b.Variance, ','))
	if b.Throughput != 0 {
		line += fmt.Sprintf(" = %s MB/s", FmtThousands(b.Throughput, ','))
	}
	return line
}
