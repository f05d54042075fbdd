package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"benchcmp/internal/benchmark"
	"benchcmp/internal/config"
	"benchcmp/internal/ui"
)

// stdinIsPipe reports whether benchmark output is being piped in. Variable
// so tests can force either form.
var stdinIsPipe = func() bool {
	fi, err := os.Stdin.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice == 0
}

func runCompare(cmd *cobra.Command, args []string) error {
	settings := config.FromViper()
	if err := settings.Validate(); err != nil {
		return err
	}

	oldArg, newArg := args[0], args[1]

	var (
		oldRecs, newRecs []benchmark.Benchmark
		err              error
	)
	switch {
	case len(args) == 3:
		oldRecs, newRecs, err = loadSplit(cmd, oldArg, newArg, args[2])
	case stdinIsPipe():
		oldRecs, newRecs, err = loadSplit(cmd, oldArg, newArg, "-")
	default:
		oldRecs, newRecs, err = loadFiles(oldArg, newArg)
	}
	if err != nil {
		return err
	}
	slog.Debug("parsed benchmark records", "old", len(oldRecs), "new", len(newRecs))

	benchmark.StripNames(oldRecs, settings.StripOldPattern)
	benchmark.StripNames(newRecs, settings.StripNewPattern)

	suite := benchmark.Pair(oldRecs, newRecs)

	var kept []benchmark.Comparison
	for _, c := range suite.Comparisons {
		if c.Keep(settings.Threshold, settings.ShowMode()) {
			kept = append(kept, c)
		}
	}

	if settings.JSON {
		return writeJSON(cmd.OutOrStdout(), kept, suite)
	}

	nameOld, nameNew := headerNames(oldArg, newArg)
	if err := writeTable(cmd, settings, nameOld, nameNew, kept, suite); err != nil {
		return err
	}
	writeWarnings(cmd.ErrOrStderr(), settings, suite)
	return nil
}

// loadFiles parses the two-file form: one report per side.
func loadFiles(oldPath, newPath string) (old, new []benchmark.Benchmark, err error) {
	old, err = parseFile(oldPath)
	if err != nil {
		return nil, nil, err
	}
	new, err = parseFile(newPath)
	if err != nil {
		return nil, nil, err
	}
	return old, new, nil
}

// loadSplit parses the single-file form and routes records by name prefix.
// A file argument of "-" reads from stdin.
func loadSplit(cmd *cobra.Command, oldPrefix, newPrefix, file string) (old, new []benchmark.Benchmark, err error) {
	var records []benchmark.Benchmark
	if file == "-" {
		records, err = benchmark.ParseReport(cmd.InOrStdin())
		if err != nil {
			err = fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		records, err = parseFile(file)
	}
	if err != nil {
		return nil, nil, err
	}
	old, new = benchmark.SplitByPrefix(records, oldPrefix, newPrefix)
	return old, new, nil
}

func parseFile(path string) ([]benchmark.Benchmark, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	records, err := benchmark.ParseReport(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}

func writeTable(cmd *cobra.Command, settings config.Settings, nameOld, nameNew string, comps []benchmark.Comparison, suite benchmark.Suite) error {
	rows := []ui.Row{{
		Kind: ui.RowHeader,
		Cells: []string{
			"name",
			nameOld + " ns/iter",
			nameNew + " ns/iter",
			"diff ns/iter",
			"diff %",
			"speedup",
		},
	}}

	for _, c := range comps {
		kind := ui.RowImprovement
		if c.Regression() {
			kind = ui.RowRegression
		} else if c.DiffNs == 0 {
			kind = ui.RowPlain
		}
		rows = append(rows, ui.Row{
			Kind: kind,
			Cells: []string{
				c.Old.Name,
				c.Old.FmtNs(settings.Variance),
				c.New.FmtNs(settings.Variance),
				benchmark.FmtSigned(c.DiffNs, ','),
				fmt.Sprintf("%.2f%%", c.PctChange()),
				fmt.Sprintf("x %.2f", c.Speedup),
			},
		})
	}

	if settings.IncludeMissing {
		for _, b := range suite.OnlyOld {
			rows = append(rows, ui.Row{Cells: []string{b.Name, b.FmtNs(settings.Variance), "n/a", "n/a", "n/a", "n/a"}})
		}
		for _, b := range suite.OnlyNew {
			rows = append(rows, ui.Row{Cells: []string{b.Name, "n/a", b.FmtNs(settings.Variance), "n/a", "n/a", "n/a"}})
		}
	}

	if len(rows) == 1 {
		fmt.Fprintln(cmd.ErrOrStderr(), "WARNING: nothing to output")
		return nil
	}

	styles := ui.NewStyles(cmd.OutOrStdout(), settings.Color)
	return ui.RenderTable(cmd.OutOrStdout(), styles, rows)
}

// writeWarnings reports the records that never made it into the table:
// unpaired benchmarks (unless --include-missing already put them in the
// table) and status transitions between the two runs.
func writeWarnings(w io.Writer, settings config.Settings, suite benchmark.Suite) {
	if !settings.IncludeMissing {
		if len(suite.OnlyOld) > 0 {
			fmt.Fprintf(w, "WARNING: benchmarks in old but not in new: %s\n",
				strings.Join(benchmark.Names(suite.OnlyOld), ", "))
		}
		if len(suite.OnlyNew) > 0 {
			fmt.Fprintf(w, "WARNING: benchmarks in new but not in old: %s\n",
				strings.Join(benchmark.Names(suite.OnlyNew), ", "))
		}
	}
	for _, b := range suite.NowFailing {
		if b.Failure != "" {
			fmt.Fprintf(w, "WARNING: benchmark regressed to failure: %s (panicked at '%s')\n", b.Name, b.Failure)
		} else {
			fmt.Fprintf(w, "WARNING: benchmark regressed to failure: %s\n", b.Name)
		}
	}
	for _, b := range suite.NowPassing {
		fmt.Fprintf(w, "NOTE: benchmark no longer fails: %s\n", b.Name)
	}
}
