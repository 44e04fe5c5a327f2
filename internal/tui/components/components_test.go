package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rgehrsitz/lifegrid/internal/calculation"
	"github.com/rgehrsitz/lifegrid/internal/domain"
	"github.com/rgehrsitz/lifegrid/internal/output"
)

func TestRenderGrid(t *testing.T) {
	assert.Empty(t, RenderGrid(nil))

	g := calculation.GenerateDayGrid(50, 10)
	out := RenderGrid(&g)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, g.Rows)
	assert.Equal(t, 10, strings.Count(out, output.GlyphPast))
	assert.Equal(t, 1, strings.Count(out, output.GlyphToday))
	assert.Equal(t, g.TotalDays-11, strings.Count(out, output.GlyphFuture))
}

func TestRenderGrid_LifespanComplete(t *testing.T) {
	g := calculation.GenerateDayGrid(50, 1_000_000)
	out := RenderGrid(&g)

	assert.Equal(t, g.TotalDays, strings.Count(out, output.GlyphPast))
	assert.Zero(t, strings.Count(out, output.GlyphToday))
}

func TestRowLabel(t *testing.T) {
	assert.Equal(t, "     ", rowLabel(0, 52))
	assert.Equal(t, "   1 ", rowLabel(7, 52))
	assert.Equal(t, "     ", rowLabel(8, 52))
}

func TestGridRowOf(t *testing.T) {
	g := calculation.GenerateDayGrid(50, 0)
	assert.Equal(t, 0, GridRowOf(&g, 51))
	assert.Equal(t, 1, GridRowOf(&g, 52))
	assert.Equal(t, 0, GridRowOf(nil, 1000))
}

func TestParameterSlider(t *testing.T) {
	s := NewParameterSlider("Life expectancy", 200, 50, 120, 1).
		WithPresets(domain.LifeExpectancyOptions)
	assert.Equal(t, 120, s.Value)
	assert.False(t, s.Increment())

	s.SetValue(10)
	assert.Equal(t, 50, s.Value)
	assert.False(t, s.Decrement())
	assert.True(t, s.Increment())
	assert.Equal(t, 51, s.Value)

	s.SetValue(75)
	assert.Equal(t, "Global average", s.Description())
	assert.True(t, s.CyclePreset())
	assert.Equal(t, 80, s.Value)

	s.SetValue(95)
	assert.True(t, s.CyclePreset())
	assert.Equal(t, 70, s.Value)

	s.SetValue(73)
	assert.Empty(t, s.Description())
	assert.Contains(t, s.Render(), "73 years")
}

func TestParameterSlider_NoPresets(t *testing.T) {
	s := NewParameterSlider("x", 60, 50, 120, 5)
	assert.False(t, s.CyclePreset())
	assert.InDelta(t, 10.0/70.0, s.Percentage(), 1e-9)
}

func TestProgressBar(t *testing.T) {
	birth := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	stats := calculation.ComputeStatistics(&birth, 80, birth.AddDate(0, 0, 10000))

	bar := NewProgressBar(stats).WithWidth(40)
	assert.Equal(t, 14, bar.Filled())
	assert.Contains(t, bar.Render(), "34.2% Complete")

	done := calculation.ComputeStatistics(&birth, 50, time.Date(2200, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 40, NewProgressBar(done).WithWidth(40).Filled())
}

func TestMetricGrid(t *testing.T) {
	assert.Empty(t, MetricGrid(nil, 3))

	cards := []*MetricCard{
		NewMetricCard("Days Lived", "10"),
		NewMetricCard("Weeks Lived", "1"),
		NewMetricCard("Months Lived", "0"),
	}
	out := MetricGrid(cards, 2)
	assert.Contains(t, out, "Days Lived")
	assert.Contains(t, out, "Months Lived")
	assert.Contains(t, NewMetricCard("Days Lived", "10").RenderCompact(), "Days Lived:")
}
