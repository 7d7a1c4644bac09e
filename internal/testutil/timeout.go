package testutil

import (
	"testing"
	"time"
)

// ShouldSkipSlowTest reports whether slow tests should be skipped: quick mode
// combined with -short.
func ShouldSkipSlowTest() bool {
	return GetTestConfig().Intensity == IntensityQuick && testing.Short()
}

// SkipIfSlow skips the test if we're in quick mode and testing.Short() is true.
// Use it for property tests that write many fixture trees to disk.
func SkipIfSlow(t *testing.T, reason string) {
	t.Helper()

	if ShouldSkipSlowTest() {
		t.Skipf("Skipping slow test in quick mode: %s", reason)
	}
}

// RequireWithinBudget fails the test if more than the configured Timeout has
// passed since start. Generation is sequential and small, so blowing the
// budget means a series grew far beyond what its options ask for.
func RequireWithinBudget(t testing.TB, start time.Time) {
	t.Helper()

	budget := GetTestConfig().Timeout
	if elapsed := time.Since(start); elapsed > budget {
		t.Fatalf("Test took %s, budget is %s", elapsed.Round(time.Millisecond), budget)
	}
}
