package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/viper"

	"benchcmp/internal/benchmark"
)

// Color output modes.
const (
	ColorNever  = "never"
	ColorAlways = "always"
	ColorAuto   = "auto"
)

// Settings carries every knob the comparison pipeline consumes.
type Settings struct {
	Threshold      float64
	Variance       bool
	Improvements   bool
	Regressions    bool
	IncludeMissing bool
	Color          string
	StripOld       string
	StripNew       string
	JSON           bool

	// Compiled by Validate.
	StripOldPattern *regexp.Regexp
	StripNewPattern *regexp.Regexp
}

// FromViper assembles Settings from the bound flags, environment and config
// file. Call after viper has loaded its sources.
func FromViper() Settings {
	return Settings{
		Threshold:      viper.GetFloat64("threshold"),
		Variance:       viper.GetBool("variance"),
		Improvements:   viper.GetBool("improvements"),
		Regressions:    viper.GetBool("regressions"),
		IncludeMissing: viper.GetBool("include-missing"),
		Color:          viper.GetString("color"),
		StripOld:       viper.GetString("strip-old"),
		StripNew:       viper.GetString("strip-new"),
		JSON:           viper.GetBool("json"),
	}
}

// Validate checks value ranges and compiles the strip patterns. Any invalid
// value is a configuration error and nothing is parsed or compared before
// this passes.
func (s *Settings) Validate() error {
	var errs []string

	if s.Threshold < 0 {
		errs = append(errs, fmt.Sprintf("threshold must be non-negative, got: %v", s.Threshold))
	}
	if s.Improvements && s.Regressions {
		errs = append(errs, "--improvements and --regressions are mutually exclusive")
	}
	switch s.Color {
	case ColorNever, ColorAlways, ColorAuto:
	default:
		errs = append(errs, fmt.Sprintf("color must be one of never, always, auto, got: %q", s.Color))
	}
	if s.StripOld != "" {
		re, err := regexp.Compile(s.StripOld)
		if err != nil {
			errs = append(errs, fmt.Sprintf("invalid strip-old pattern %q: %v", s.StripOld, err))
		} else {
			s.StripOldPattern = re
		}
	}
	if s.StripNew != "" {
		re, err := regexp.Compile(s.StripNew)
		if err != nil {
			errs = append(errs, fmt.Sprintf("invalid strip-new pattern %q: %v", s.StripNew, err))
		} else {
			s.StripNewPattern = re
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// ShowMode maps the improvements/regressions switches onto the comparison
// filter mode.
func (s Settings) ShowMode() benchmark.ShowMode {
	switch {
	case s.Improvements:
		return benchmark.ShowImprovements
	case s.Regressions:
		return benchmark.ShowRegressions
	}
	return benchmark.ShowBoth
}
