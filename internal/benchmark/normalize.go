package benchmark

import (
	"regexp"
	"strings"
)

// StripFirst removes the first match of re anywhere in name. Names without
// a match come back unchanged.
func StripFirst(re *regexp.Regexp, name string) string {
	if loc := re.FindStringIndex(name); loc != nil {
		return name[:loc[0]] + name[loc[1]:]
	}
	return name
}

// StripNames rewrites every record name in place using StripFirst. A nil
// pattern is a no-op.
func StripNames(records []Benchmark, re *regexp.Regexp) {
	if re == nil {
		return
	}
	for i := range records {
		records[i].Name = StripFirst(re, records[i].Name)
	}
}

// SplitByPrefix routes records from a single combined report into an old
// and a new set by name prefix, stripping the prefix from each routed name.
// Records matching neither prefix belong to neither side and are dropped.
func SplitByPrefix(records []Benchmark, oldPrefix, newPrefix string) (old, new []Benchmark) {
	for _, b := range records {
		switch {
		case strings.HasPrefix(b.Name, oldPrefix):
			b.Name = b.Name[len(oldPrefix):]
			old = append(old, b)
		case strings.HasPrefix(b.Name, newPrefix):
			b.Name = b.Name[len(newPrefix):]
			new = append(new, b)
		}
	}
	return old, new
}
