package main

import (
	"fmt"
	"os"
	"runtime/debug"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n\nStack trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	Execute()
}
