package benchmark

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	// test mod::name ... bench: 1,234 ns/iter (+/- 56) = 2314 MB/s
	benchRegex = regexp.MustCompile(`test\s+(\S+)\s+\.\.\.\s+bench:\s+([0-9,]+)\s+ns/iter\s+\(\+/-\s+([0-9,]+)\)(?:\s+=\s+([0-9,]+)\s+MB/s)?`)

	// test mod::name ... FAILED
	failRegex = regexp.MustCompile(`test\s+(\S+)\s+\.\.\.\s+FAILED`)

	// ---- mod::name stdout ----
	sectionRegex = regexp.MustCompile(`^---- (\S+) stdout ----`)

	// thread 'mod::name' panicked at 'something broke', src/lib.rs:42
	panicRegex = regexp.MustCompile(`thread '[^']*' panicked at '([^']*)'`)
)

// ParseLine extracts a benchmark record from a single report line. Lines
// matching neither the measured nor the failed shape return false; test
// harness output interleaves plenty of unrelated lines and the caller is
// expected to skip them.
func ParseLine(line string) (Benchmark, bool) {
	if m := benchRegex.FindStringSubmatch(line); m != nil {
		ns, ok := parseGrouped(m[2])
		if !ok {
			return Benchmark{}, false
		}
		variance, ok := parseGrouped(m[3])
		if !ok {
			return Benchmark{}, false
		}
		b := Benchmark{Name: m[1], Ns: ns, Variance: variance}
		if m[4] != "" {
			throughput, ok := parseGrouped(m[4])
			if !ok {
				return Benchmark{}, false
			}
			b.Throughput = throughput
		}
		return b, true
	}
	if m := failRegex.FindStringSubmatch(line); m != nil {
		return Benchmark{Name: m[1], Status: StatusFailed}, true
	}
	return Benchmark{}, false
}

// ParseReport scans a full benchmark report and returns its records in
// source line order. Besides the per-line shapes it tracks failure detail
// blocks: a "---- <name> stdout ----" section header opens a block, and a
// subsequent panic diagnostic inside that block attaches its message to the
// failed record of the same name.
func ParseReport(r io.Reader) ([]Benchmark, error) {
	var (
		records  []Benchmark
		messages map[string]string
		open     string
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if b, ok := ParseLine(line); ok {
			records = append(records, b)
			continue
		}
		if m := sectionRegex.FindStringSubmatch(line); m != nil {
			open = m[1]
			continue
		}
		if open != "" {
			if m := panicRegex.FindStringSubmatch(line); m != nil {
				if messages == nil {
					messages = make(map[string]string)
				}
				messages[open] = m[1]
				open = ""
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Detail blocks may appear before or after the summary lines, so the
	// messages are attached once the whole report has been walked.
	for i := range records {
		if records[i].Status == StatusFailed && records[i].Failure == "" {
			records[i].Failure = messages[records[i].Name]
		}
	}
	return records, nil
}

// parseGrouped parses an unsigned integer that may use commas as thousands
// separators.
func parseGrouped(s string) (uint64, bool) {
	n, err := strconv.ParseUint(strings.ReplaceAll(s, ",", ""), 10, 64)
	return n, err == nil
}
