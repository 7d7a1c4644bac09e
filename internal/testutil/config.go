// Package testutil provides shared helpers for the fixture generator tests:
// intensity-scaled configuration, a rapid wrapper and generators, tree
// inspection helpers and a fault-injecting backend.
package testutil

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// TestIntensity represents the thoroughness level of test execution.
type TestIntensity int

const (
	// IntensityQuick keeps property tests small for fast local feedback.
	IntensityQuick TestIntensity = iota
	// IntensityThorough runs more iterations over larger trees, for CI.
	IntensityThorough
)

// String returns the string representation of the test intensity.
func (ti TestIntensity) String() string {
	switch ti {
	case IntensityQuick:
		return "quick"
	case IntensityThorough:
		return "thorough"
	default:
		return "unknown"
	}
}

// TestConfig holds the limits property tests draw their inputs from.
type TestConfig struct {
	Intensity TestIntensity

	// Number of iterations for property tests
	IterationCount int

	// Upper bound for --total-series in generated runs
	MaxSeries int

	// Upper bound for --total-samples in generated runs
	MaxSamples int

	// Timeout for individual tests
	Timeout time.Duration

	VerboseOutput bool
}

// GetTestConfig reads TEST_INTENSITY, TEST_QUICK and VERBOSE_TESTS.
// TEST_QUICK takes precedence; the default is quick mode.
func GetTestConfig() TestConfig {
	config := TestConfig{Intensity: IntensityQuick}

	if !ParseBool(os.Getenv("TEST_QUICK")) {
		config.Intensity = ParseIntensity(os.Getenv("TEST_INTENSITY"))
	}

	switch config.Intensity {
	case IntensityQuick:
		config.IterationCount = 10
		config.MaxSeries = 3
		config.MaxSamples = 3
		config.Timeout = 30 * time.Second
	case IntensityThorough:
		config.IterationCount = 100
		config.MaxSeries = 6
		config.MaxSamples = 8
		config.Timeout = 5 * time.Minute
	}

	config.VerboseOutput = ParseBool(os.Getenv("VERBOSE_TESTS"))

	return config
}

// String summarizes the configuration for test logs.
func (c TestConfig) String() string {
	return fmt.Sprintf("intensity=%s, iterations=%d, maxSeries=%d, maxSamples=%d, timeout=%s, verbose=%v",
		c.Intensity, c.IterationCount, c.MaxSeries, c.MaxSamples, c.Timeout, c.VerboseOutput)
}

// ParseIntensity parses a string into a TestIntensity value.
// Returns IntensityQuick for invalid or empty strings.
func ParseIntensity(s string) TestIntensity {
	if strings.EqualFold(strings.TrimSpace(s), "thorough") {
		return IntensityThorough
	}
	return IntensityQuick
}

// ParseBool accepts "1", "true" and "yes" (case-insensitive) as true.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
