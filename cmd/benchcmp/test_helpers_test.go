package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// executeCommand executes the root command with args and returns everything
// written to its combined out/err streams.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	return executeCommandWithStdin(root, strings.NewReader(""), args...)
}

func executeCommandWithStdin(root *cobra.Command, stdin io.Reader, args ...string) (string, error) {
	resetFlags(root)
	oldExit := exit
	exit = func(code int) {
		if code != 0 {
			panic(fmt.Sprintf("exit-%d", code))
		}
	}
	defer func() { exit = oldExit }()
	defer func() {
		if r := recover(); r != nil {
			if s, ok := r.(string); ok && strings.HasPrefix(s, "exit-") {
				return
			}
			panic(r)
		}
	}()

	root.SetArgs(args)
	b := new(bytes.Buffer)
	root.SetOut(b)
	root.SetErr(b)
	root.SetIn(stdin)
	err := root.Execute()
	return b.String(), err
}

// resetFlags resets all flags to their default values between runs.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// forceTerminalStdin pins stdin detection to "terminal" so two-argument
// invocations take the two-file path regardless of the test environment.
func forceTerminalStdin(t *testing.T) {
	t.Helper()
	old := stdinIsPipe
	stdinIsPipe = func() bool { return false }
	t.Cleanup(func() { stdinIsPipe = old })
}
