// Package progress reports fixture generation progress on a writer (stderr in
// the CLI). Stdout belongs to the generated path list, so nothing here ever
// writes there.
package progress

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("39")  // Blue
	colorSuccess = lipgloss.Color("42")  // Green
	colorWarning = lipgloss.Color("214") // Orange
	colorMuted   = lipgloss.Color("240") // Dark gray
)

// Summary holds the final figures of one run.
type Summary struct {
	Root    string // output directory
	Seed    uint64 // random seed, for reproducing the tree
	Series  int    // series directories generated
	Created int    // file creations, repeats included
	Reset   bool   // whether --reset ran
	Deleted int    // entries removed by the reset
	OnDisk  int    // distinct files below Root after the run; negative if unknown
}

// Reporter prints one line per finished series and a boxed summary at the end.
type Reporter struct {
	out         io.Writer
	totalSeries int
	doneSeries  int
	created     int
	startTime   time.Time

	label   lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
	title   lipgloss.Style
	box     lipgloss.Style
}

// NewReporter creates a Reporter writing to out. Colors are only emitted when
// out is a terminal.
func NewReporter(out io.Writer, totalSeries int) *Reporter {
	r := lipgloss.NewRenderer(out)

	return &Reporter{
		out:         out,
		totalSeries: totalSeries,
		startTime:   time.Now(),

		label:   r.NewStyle().Foreground(colorMuted),
		value:   r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(colorMuted),
		warning: r.NewStyle().Foreground(colorWarning),
		title: r.NewStyle().
			Bold(true).
			Foreground(colorSuccess),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1),
	}
}

// SeriesDone records a finished series and prints its progress line.
func (r *Reporter) SeriesDone(series string, created int) {
	r.doneSeries++
	r.created += created

	fmt.Fprintf(r.out, "%s %s %s\n",
		r.muted.Render(fmt.Sprintf("[%d/%d]", r.doneSeries, r.totalSeries)),
		series,
		r.muted.Render(fmt.Sprintf("%s files (%s total)", FormatNumber(created), FormatNumber(r.created))),
	)
}

// Finish prints the final summary box. It should be called once, after the
// last series.
func (r *Reporter) Finish(s Summary) {
	elapsed := time.Since(r.startTime)

	rows := [][2]string{
		{"Directory", s.Root},
		{"Seed", fmt.Sprintf("%d", s.Seed)},
		{"Series", FormatNumber(s.Series)},
		{"Files created", FormatNumber(s.Created)},
	}
	if s.Reset {
		rows = append(rows, [2]string{"Reset removed", FormatNumber(s.Deleted)})
	}
	if s.OnDisk >= 0 {
		rows = append(rows, [2]string{"Files on disk", FormatNumber(s.OnDisk)})
	}
	rows = append(rows, [2]string{"Elapsed", formatDuration(elapsed)})

	width := 0
	for _, row := range rows {
		width = max(width, len(row[0]))
	}

	lines := []string{r.title.Render("Fixtures generated")}
	for _, row := range rows {
		lines = append(lines, r.label.Render(fmt.Sprintf("%-*s", width+1, row[0]+":"))+" "+r.value.Render(row[1]))
	}

	// Collisions overwrite, so only a surplus points at files from earlier runs.
	if !s.Reset && s.OnDisk > s.Created {
		lines = append(lines, r.warning.Render("Existing files were kept; run with --reset for a clean tree"))
	}

	fmt.Fprintln(r.out, r.box.Render(strings.Join(lines, "\n")))
}

// FormatNumber formats a number with thousands separators (commas).
func FormatNumber(n int) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	str := fmt.Sprintf("%d", n)
	if len(str) <= 3 {
		return str
	}

	var b strings.Builder
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// formatDuration formats a duration as "Xh Ym Zs", "Ym Zs", "Z.ZZs" or "Zms".
// Returns "unknown" for math.MaxInt64 and "0s" for negative durations.
func formatDuration(d time.Duration) string {
	if d >= time.Duration(math.MaxInt64) {
		return "unknown"
	}
	if d < 0 {
		return "0s"
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}
