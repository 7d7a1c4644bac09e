package testutil

import (
	"flag"
	"strconv"
	"testing"

	"pgregory.net/rapid"
)

// RapidCheck runs rapid.Check with the iteration count of the current
// intensity. rapid reads its check count from the -rapid.checks flag, which is
// overridden until the test finishes.
func RapidCheck(t *testing.T, fn func(*rapid.T)) {
	t.Helper()

	config := GetTestConfig()
	if checks := flag.Lookup("rapid.checks"); checks != nil {
		previous := checks.Value.String()
		if err := checks.Value.Set(strconv.Itoa(config.IterationCount)); err != nil {
			t.Fatalf("Cannot set rapid.checks to %d: %v", config.IterationCount, err)
		}
		t.Cleanup(func() { _ = checks.Value.Set(previous) })
	}

	if config.VerboseOutput {
		t.Logf("Property test configured: %s", config)
	}

	rapid.Check(t, fn)
}

// RapidSeed draws an rng seed. Zero is excluded because the command line
// treats it as "seed from the clock".
func RapidSeed() *rapid.Generator[uint64] {
	return rapid.Uint64Min(1)
}

// RapidSeriesCount draws a --total-series value in [0, MaxSeries].
func RapidSeriesCount(config TestConfig) *rapid.Generator[int] {
	return rapid.IntRange(0, config.MaxSeries)
}

// RapidSampleCount draws a --total-samples value in [0, MaxSamples].
func RapidSampleCount(config TestConfig) *rapid.Generator[int] {
	return rapid.IntRange(0, config.MaxSamples)
}
