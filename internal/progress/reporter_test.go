package progress

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{999999, "999,999"},
		{1000000, "1,000,000"},
		{-1234, "-1,234"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatNumber(tt.input), "FormatNumber(%d)", tt.input)
	}
}

// Stripping the separators always gives back the plain decimal rendering.
func TestFormatNumberRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, math.MaxInt32).Draw(rt, "n")
		got := FormatNumber(n)

		if plain := strings.ReplaceAll(got, ",", ""); plain != strconv.Itoa(n) {
			rt.Fatalf("FormatNumber(%d) = %q", n, got)
		}
		for i, group := range strings.Split(got, ",") {
			if i > 0 && len(group) != 3 {
				rt.Fatalf("FormatNumber(%d) = %q has a short group", n, got)
			}
		}
	})
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"milliseconds", 250 * time.Millisecond, "250ms"},
		{"seconds", 1500 * time.Millisecond, "1.50s"},
		{"minutes", 2*time.Minute + 5*time.Second, "2m 5s"},
		{"hours", time.Hour + 3*time.Minute + 4*time.Second, "1h 3m 4s"},
		{"negative", -time.Second, "0s"},
		{"unknown", time.Duration(math.MaxInt64), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatDuration(tt.duration))
		})
	}
}

func TestSeriesDone(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, 2)

	r.SeriesDone("series_0", 111)
	r.SeriesDone("series_1", 1234)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[1/2]")
	assert.Contains(t, lines[0], "series_0")
	assert.Contains(t, lines[0], "111 files (111 total)")
	assert.Contains(t, lines[1], "[2/2]")
	assert.Contains(t, lines[1], "1,234 files (1,345 total)")
}

func TestFinish(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, 3)

	r.Finish(Summary{Root: "tests", Seed: 98765, Series: 3, Created: 333, Reset: true, Deleted: 42, OnDisk: 320})

	out := buf.String()
	assert.Contains(t, out, "Fixtures generated")
	assert.Contains(t, out, "tests")
	assert.Contains(t, out, "333")
	assert.Contains(t, out, "98765")
	assert.Contains(t, out, "Reset removed")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "Files on disk")
	assert.Contains(t, out, "320")
	assert.NotContains(t, out, "--reset", "no hint when the tree was reset")
	assert.NotContains(t, out, "\x1b[", "a buffer is not a terminal, so no escape codes")
}

func TestFinishWithoutResetOrInventory(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, 1)

	r.Finish(Summary{Root: "tests", Series: 1, Created: 10, OnDisk: -1})

	out := buf.String()
	assert.NotContains(t, out, "Reset removed")
	assert.NotContains(t, out, "Files on disk")
	assert.NotContains(t, out, "--reset")
}

func TestFinishHintsAtLeftovers(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, 1)

	r.Finish(Summary{Root: "tests", Series: 1, Created: 10, OnDisk: 15})

	assert.Contains(t, buf.String(), "--reset")
}
