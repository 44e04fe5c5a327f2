package components

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/lifegrid/internal/domain"
	"github.com/rgehrsitz/lifegrid/internal/output"
	"github.com/rgehrsitz/lifegrid/internal/tui/tuistyles"
)

// RenderGrid draws the day grid one terminal line per grid row. Consecutive
// cells of the same state are styled as one run.
func RenderGrid(g *domain.DayGrid) string {
	if g == nil {
		return ""
	}
	today, hasToday := g.TodayIndex()

	var b strings.Builder
	for row := 0; row < g.Rows; row++ {
		cells := g.RowCells(row)
		if len(cells) == 0 {
			continue
		}
		b.WriteString(tuistyles.GridLabelStyle.Render(rowLabel(row, g.Columns)))

		past, todayAt := 0, -1
		for i, c := range cells {
			if hasToday && c.Index == today {
				todayAt = i
				break
			}
			if c.IsPast {
				past++
			}
		}

		if past > 0 {
			b.WriteString(tuistyles.GridPastStyle.Render(strings.Repeat(output.GlyphPast, past)))
		}
		rest := len(cells) - past
		if todayAt >= 0 {
			b.WriteString(tuistyles.GridTodayStyle.Render(output.GlyphToday))
			rest--
		}
		if rest > 0 {
			b.WriteString(tuistyles.GridFutureStyle.Render(strings.Repeat(output.GlyphFuture, rest)))
		}
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// GridRowOf returns the grid row holding day index i.
func GridRowOf(g *domain.DayGrid, i int) int {
	if g == nil || g.Columns == 0 {
		return 0
	}
	return i / g.Columns
}

// GridLegend is the one-line key for RenderGrid.
func GridLegend() string {
	return tuistyles.GridPastStyle.Render(output.GlyphPast) + " Days lived   " +
		tuistyles.GridTodayStyle.Render(output.GlyphToday) + " Today   " +
		tuistyles.GridFutureStyle.Render(output.GlyphFuture) + " Days remaining"
}

func rowLabel(row, cols int) string {
	start := row * cols
	year := (start + domain.DaysPerYear - 1) / domain.DaysPerYear
	if year > 0 && year*domain.DaysPerYear < start+cols {
		return fmt.Sprintf("%4d ", year)
	}
	return "     "
}
