package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/lifegrid/internal/domain"
)

// Glyphs used by the text grid.
const (
	GlyphPast   = "█"
	GlyphToday  = "◆"
	GlyphFuture = "·"
)

const progressWidth = 40

// ConsoleFormatter renders the full text report with the day grid.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(snap *domain.Snapshot) ([]byte, error) {
	var buf bytes.Buffer

	writeHeader(&buf)
	if snap.Ready() {
		writeStats(&buf, snap)
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, ProgressBar(snap.Statistics, progressWidth))
	} else {
		fmt.Fprintln(&buf, NotReadyLine)
	}

	if snap.Grid != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Legend: %s Days lived   %s Today   %s Days remaining\n", GlyphPast, GlyphToday, GlyphFuture)
		fmt.Fprintln(&buf)
		writeGrid(&buf, snap.Grid)
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, RowCaption)
		fmt.Fprintf(&buf, "Based on %d-year life expectancy • %s total days\n",
			snap.Grid.LifeExpectancy, FormatCount(snap.Grid.TotalDays))
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, Quote)
	fmt.Fprintln(&buf, Reminder)
	if snap.Ready() {
		fmt.Fprintln(&buf, ValueLine)
		fmt.Fprintln(&buf, SummaryLine(snap.Statistics.PercentageLived))
	}
	return buf.Bytes(), nil
}

// ConsoleLiteFormatter prints the statistics block only.
type ConsoleLiteFormatter struct{}

func (c ConsoleLiteFormatter) Name() string { return "console-lite" }

func (c ConsoleLiteFormatter) Format(snap *domain.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if !snap.Ready() {
		fmt.Fprintln(&buf, NotReadyLine)
		return buf.Bytes(), nil
	}
	writeStats(&buf, snap)
	fmt.Fprintln(&buf, SummaryLine(snap.Statistics.PercentageLived))
	return buf.Bytes(), nil
}

func writeHeader(buf *bytes.Buffer) {
	fmt.Fprintln(buf, "LIFEGRID")
	fmt.Fprintln(buf, Tagline)
	fmt.Fprintln(buf, strings.Repeat("=", 61))
}

// StatLine is one labelled figure of the statistics block.
type StatLine struct {
	Label string
	Value string
}

// StatLines returns the six headline figures in display order.
func StatLines(s domain.Statistics) []StatLine {
	return []StatLine{
		{"Current Age", fmt.Sprintf("%d", s.CurrentAge)},
		{"Days Lived", FormatCount(s.DaysPassed)},
		{"Days Remaining", FormatCount(s.DaysRemaining)},
		{"Weeks Lived", FormatCount(s.WeeksLived)},
		{"Months Lived", FormatCount(s.MonthsLived)},
		{"Life Lived", s.PercentDisplay() + "%"},
	}
}

func writeStats(buf *bytes.Buffer, snap *domain.Snapshot) {
	p := snap.Profile
	if p.Name != "" {
		fmt.Fprintf(buf, "%-16s %s\n", "Name:", p.Name)
	}
	if p.BirthDate != nil {
		fmt.Fprintf(buf, "%-16s %s\n", "Birth Date:", p.BirthDate.Format("2006-01-02"))
	}
	fmt.Fprintf(buf, "%-16s %s\n", "As Of:", snap.Now.Format("2006-01-02"))
	for _, l := range StatLines(snap.Statistics) {
		fmt.Fprintf(buf, "%-16s %s\n", l.Label+":", l.Value)
	}
}

// ProgressBar draws a fixed-width bar followed by "<pct>% Complete".
// The filled part never exceeds width.
func ProgressBar(s domain.Statistics, width int) string {
	filled := int(s.ProgressFraction()*float64(width) + 0.5)
	filled = min(max(filled, 0), width)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "] " +
		s.PercentDisplay() + "% Complete"
}

// writeGrid prints one line per 52 cells. The margin carries the age at
// each 365-day boundary that falls inside the row.
func writeGrid(buf *bytes.Buffer, g *domain.DayGrid) {
	today, hasToday := g.TodayIndex()
	var line strings.Builder
	for row := 0; row < g.Rows; row++ {
		line.Reset()
		line.WriteString(rowLabel(row, g.Columns))
		for _, c := range g.RowCells(row) {
			switch {
			case hasToday && c.Index == today:
				line.WriteString(GlyphToday)
			case c.IsPast:
				line.WriteString(GlyphPast)
			default:
				line.WriteString(GlyphFuture)
			}
		}
		buf.WriteString(strings.TrimRight(line.String(), " "))
		buf.WriteByte('\n')
	}
}

func rowLabel(row, cols int) string {
	start := row * cols
	end := start + cols - 1
	year := (start + domain.DaysPerYear - 1) / domain.DaysPerYear
	if year > 0 && year*domain.DaysPerYear <= end {
		return fmt.Sprintf("%4d ", year)
	}
	return "     "
}
