package main

import (
	"path/filepath"
	"strings"
)

// headerNames derives the two column-header labels from the old and new
// arguments. Empty arguments become "old" and "new". When both look like
// multi-component paths the labels shrink to the shortest path suffix that
// still tells them apart, so comparing target/a/bench.txt against
// target/b/bench.txt yields headers a/bench.txt and b/bench.txt.
func headerNames(oldArg, newArg string) (string, string) {
	if oldArg == "" {
		oldArg = "old"
	}
	if newArg == "" {
		newArg = "new"
	}

	oldParts := splitPath(oldArg)
	newParts := splitPath(newArg)
	if len(oldParts) <= 1 || len(newParts) <= 1 {
		return oldArg, newArg
	}

	var uold, unew []string
	for i, j := len(oldParts)-1, len(newParts)-1; i >= 0 && j >= 0; i, j = i-1, j-1 {
		uold = append([]string{oldParts[i]}, uold...)
		unew = append([]string{newParts[j]}, unew...)
		if oldParts[i] != newParts[j] {
			break
		}
	}
	if len(uold) == 0 || len(unew) == 0 {
		return oldArg, newArg
	}
	return filepath.Join(uold...), filepath.Join(unew...)
}

func splitPath(p string) []string {
	var parts []string
	for _, c := range strings.Split(filepath.ToSlash(p), "/") {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return parts
}
