package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderNames(t *testing.T) {
	tests := []struct {
		name    string
		oldArg  string
		newArg  string
		wantOld string
		wantNew string
	}{
		{"empty falls back to defaults", "", "v2.txt", "old", "v2.txt"},
		{"both empty", "", "", "old", "new"},
		{"bare names unchanged", "before", "after", "before", "after"},
		{"single component path unchanged", "old.txt", "runs/new.txt", "old.txt", "runs/new.txt"},
		{
			"shortest differentiating suffix",
			"target/release-v1/bench.txt",
			"target/release-v2/bench.txt",
			"release-v1/bench.txt",
			"release-v2/bench.txt",
		},
		{
			"differing filename only",
			"runs/monday.txt",
			"runs/friday.txt",
			"monday.txt",
			"friday.txt",
		},
		{"identical paths", "a/b/c.txt", "a/b/c.txt", "a/b/c.txt", "a/b/c.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotOld, gotNew := headerNames(tt.oldArg, tt.newArg)
			assert.Equal(t, tt.wantOld, gotOld)
			assert.Equal(t, tt.wantNew, gotNew)
		})
	}
}

func TestHeaderNamesSymmetric(t *testing.T) {
	a, b := headerNames("x/old/bench.txt", "x/new/bench.txt")
	c, d := headerNames("x/new/bench.txt", "x/old/bench.txt")
	assert.Equal(t, a, d)
	assert.Equal(t, b, c)
}
