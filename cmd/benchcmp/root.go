package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"benchcmp/internal/telemetry"
)

var exit = os.Exit
var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "benchcmp [flags] <old> <new> [file]",
	Short: "Compare micro-benchmark results",
	Long: `benchcmp compares two sets of micro-benchmark results and reports the
per-benchmark change in time per iteration.

With two file arguments, each file is parsed as a benchmark report and the
benchmarks common to both are compared.

With two name prefixes and one file argument, a single combined report is
split on the prefixes: benchmarks whose name starts with the first prefix
form the old set and those starting with the second form the new set, with
the prefix stripped before matching. Benchmarks matching neither prefix are
ignored. A file argument of - reads the combined report from stdin, and
piping a report in makes the third argument optional.`,
	Version:       "1.0.0",
	Args:          cobra.RangeArgs(2, 3),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCompare,
}

// Execute runs the root command. Called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .benchcmp.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	flags := rootCmd.Flags()
	flags.Float64("threshold", 0, "Show only comparisons whose percentage change reaches this threshold")
	flags.Bool("variance", false, "Show the variance of each benchmark")
	flags.Bool("improvements", false, "Show only improvements")
	flags.Bool("regressions", false, "Show only regressions")
	flags.Bool("include-missing", false, "Show benchmarks found in only one input as table rows instead of warnings")
	flags.String("strip-old", "", "Strip the first match of this regex from every old benchmark name")
	flags.String("strip-new", "", "Strip the first match of this regex from every new benchmark name")
	flags.String("color", "auto", "Color table rows: never, always or auto")
	flags.Bool("json", false, "Emit machine-readable JSON instead of a table")

	viper.BindPFlag("threshold", flags.Lookup("threshold"))
	viper.BindPFlag("variance", flags.Lookup("variance"))
	viper.BindPFlag("improvements", flags.Lookup("improvements"))
	viper.BindPFlag("regressions", flags.Lookup("regressions"))
	viper.BindPFlag("include-missing", flags.Lookup("include-missing"))
	viper.BindPFlag("strip-old", flags.Lookup("strip-old"))
	viper.BindPFlag("strip-new", flags.Lookup("strip-new"))
	viper.BindPFlag("color", flags.Lookup("color"))
	viper.BindPFlag("json", flags.Lookup("json"))
}

// initConfig reads in the config file and environment variables if set.
func initConfig() {
	// .env is optional; ignore a missing file.
	godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".benchcmp")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("BENCHCMP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// No config file is fine; flags and defaults cover everything.
	viper.ReadInConfig()

	telemetry.InitLogger(viper.GetBool("verbose"))
}
