package calculation

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var hundredPercent = decimal.NewFromInt(100)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		now   time.Time
		want  int
	}{
		{"same instant", date(2000, 1, 1), date(2000, 1, 1), 0},
		{"ten days", date(2000, 1, 1), date(2000, 1, 11), 10},
		{"partial day floors", date(2000, 1, 1), date(2000, 1, 11).Add(23 * time.Hour), 10},
		{"one leap year", date(2000, 1, 1), date(2001, 1, 1), 366},
		{"future birth clamps", date(2030, 1, 1), date(2000, 1, 1), 0},
		{"three centuries", date(1700, 1, 1), date(2024, 1, 1), 118338},
		{"time of day ignored", date(2000, 1, 1).Add(22 * time.Hour), date(2000, 1, 2).Add(time.Hour), 1},
		{"now east of UTC", date(2024, 5, 1), time.Date(2024, 5, 10, 8, 0, 0, 0, time.FixedZone("JST", 9*3600)), 9},
		{"now west of UTC", date(2024, 5, 1), time.Date(2024, 5, 9, 22, 0, 0, 0, time.FixedZone("PDT", -7*3600)), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.birth, tt.now))
		})
	}
}

func TestTotalDays(t *testing.T) {
	assert.Equal(t, 18250, TotalDays(50))
	assert.Equal(t, 27375, TotalDays(75))
	assert.Equal(t, 43800, TotalDays(120))
	assert.Equal(t, 0, TotalDays(0))
	assert.Equal(t, 0, TotalDays(-5))
	assert.Equal(t, 365000, TotalDays(1000))
	assert.Equal(t, 0, TotalDays(1001))
	assert.Equal(t, 0, TotalDays(math.MaxInt))
	assert.Equal(t, 0, TotalDays(math.MaxInt/365+1))
	assert.Equal(t, 0, TotalDays(math.MinInt))
}

func TestComputeStatistics_HugeLifeExpectancy(t *testing.T) {
	for _, years := range []int{10_000_000, math.MaxInt / 365, math.MaxInt/365 + 1, math.MaxInt} {
		stats := ComputeStatistics(timePtr(date(2000, 1, 1)), years, date(2024, 1, 1))

		assert.Equal(t, 0, stats.TotalDays, "years=%d", years)
		assert.Equal(t, 0, stats.DaysPassed, "years=%d", years)
		assert.Equal(t, 0, stats.DaysRemaining, "years=%d", years)
		assert.Equal(t, 0, stats.LifeExpectancy, "years=%d", years)
		assert.True(t, stats.PercentageLived.IsZero())
	}
}

func TestComputeStatistics_TenDaysOld(t *testing.T) {
	stats := ComputeStatistics(timePtr(date(2000, 1, 1)), 75, date(2000, 1, 11))

	assert.True(t, stats.HasBirthDate)
	assert.Equal(t, 27375, stats.TotalDays)
	assert.Equal(t, 10, stats.DaysPassed)
	assert.Equal(t, 27365, stats.DaysRemaining)
	assert.Equal(t, 0, stats.CurrentAge)
	assert.Equal(t, 1, stats.WeeksLived)
	assert.Equal(t, 0, stats.MonthsLived)
	assert.Equal(t, "0.0", stats.PercentDisplay())
	assert.Equal(t, "0.04", stats.PercentSummary())
}

func TestComputeStatistics_DerivedCounts(t *testing.T) {
	birth := date(1990, 6, 15)
	now := birth.AddDate(0, 0, 10000)

	stats := ComputeStatistics(&birth, 80, now)

	assert.Equal(t, 10000, stats.DaysPassed)
	assert.Equal(t, 29200-10000, stats.DaysRemaining)
	assert.Equal(t, 27, stats.CurrentAge)
	assert.Equal(t, 1428, stats.WeeksLived)
	assert.Equal(t, 328, stats.MonthsLived)
	assert.Equal(t, "34.2", stats.PercentDisplay())
	assert.Equal(t, "34.25", stats.PercentSummary())
}

func TestComputeStatistics_NoBirthDate(t *testing.T) {
	stats := ComputeStatistics(nil, 75, date(2024, 5, 1))

	assert.False(t, stats.HasBirthDate)
	assert.Equal(t, 0, stats.DaysPassed)
	assert.Equal(t, 0, stats.CurrentAge)
	assert.Equal(t, 0, stats.WeeksLived)
	assert.Equal(t, 0, stats.MonthsLived)
	assert.Equal(t, 27375, stats.DaysRemaining)
	assert.Equal(t, "0", stats.PercentDisplay())
	assert.Equal(t, 0.0, stats.ProgressFraction())
}

func TestComputeStatistics_FutureBirthDateClamps(t *testing.T) {
	stats := ComputeStatistics(timePtr(date(2030, 1, 1)), 75, date(2024, 1, 1))

	assert.True(t, stats.HasBirthDate)
	assert.Equal(t, 0, stats.DaysPassed)
	assert.Equal(t, stats.TotalDays, stats.DaysRemaining)
	assert.Equal(t, "0.0", stats.PercentDisplay())
}

func TestComputeStatistics_PercentageNeverExceedsHundred(t *testing.T) {
	stats := ComputeStatistics(timePtr(date(1900, 1, 1)), 50, date(2024, 1, 1))

	assert.Equal(t, stats.TotalDays, stats.DaysPassed)
	assert.Equal(t, 0, stats.DaysRemaining)
	assert.Equal(t, 50, stats.CurrentAge)
	assert.Equal(t, "100.0", stats.PercentDisplay())
	assert.Equal(t, 1.0, stats.ProgressFraction())
}

func TestComputeStatistics_NonPositiveLifeExpectancy(t *testing.T) {
	for _, years := range []int{0, -10} {
		stats := ComputeStatistics(timePtr(date(2000, 1, 1)), years, date(2020, 1, 1))

		assert.Equal(t, 0, stats.TotalDays)
		assert.Equal(t, 0, stats.DaysPassed)
		assert.Equal(t, 0, stats.DaysRemaining)
		assert.Equal(t, 0, stats.LifeExpectancy)
		assert.True(t, stats.PercentageLived.IsZero())
	}
}

func TestComputeStatistics_RangeInvariant(t *testing.T) {
	birth := date(1970, 3, 9)
	for _, years := range []int{50, 75, 90, 120} {
		for _, offset := range []int{0, 1, 365, 9999, 20000, 40000, 60000} {
			now := birth.AddDate(0, 0, offset)
			stats := ComputeStatistics(&birth, years, now)

			assert.GreaterOrEqual(t, stats.DaysPassed, 0)
			assert.LessOrEqual(t, stats.DaysPassed, stats.TotalDays)
			assert.Equal(t, stats.TotalDays-stats.DaysPassed, stats.DaysRemaining)
			assert.True(t, stats.PercentageLived.LessThanOrEqual(hundredPercent))
		}
	}
}

func TestComputeStatistics_Monotonic(t *testing.T) {
	birth := date(2000, 1, 1)
	total := TotalDays(50)

	prev := ComputeStatistics(&birth, 50, birth.AddDate(0, 0, total-3)).DaysPassed
	for offset := total - 2; offset <= total+3; offset++ {
		got := ComputeStatistics(&birth, 50, birth.AddDate(0, 0, offset)).DaysPassed
		if offset <= total {
			assert.Equal(t, prev+1, got, "offset %d", offset)
		} else {
			assert.Equal(t, total, got, "offset %d", offset)
		}
		prev = got
	}
}

func TestComputeStatistics_Idempotent(t *testing.T) {
	birth := date(1985, 11, 30)
	now := date(2024, 2, 29)

	a := ComputeStatistics(&birth, 82, now)
	b := ComputeStatistics(&birth, 82, now)

	assert.Equal(t, a, b)
}
