package calculation

import (
	"math"
	"time"

	"github.com/rgehrsitz/lifegrid/internal/domain"
	"github.com/shopspring/decimal"
)

const secondsPerDay = 24 * 60 * 60

// modeledYears maps inputs outside 1..MaxModeledYears to 0.
func modeledYears(years int) int {
	if years <= 0 || years > domain.MaxModeledYears {
		return 0
	}
	return years
}

// TotalDays is the modeled lifespan in days. Non-positive inputs and
// inputs above domain.MaxModeledYears yield 0.
func TotalDays(lifeExpectancyYears int) int {
	return modeledYears(lifeExpectancyYears) * domain.DaysPerYear
}

// DaysBetween returns the calendar days from the birth date to now's date,
// each read in its own location, never negative. The time of day is
// ignored.
func DaysBetween(birthDate, now time.Time) int {
	elapsed := calendarDay(now) - calendarDay(birthDate)
	if elapsed <= 0 {
		return 0
	}
	return int(elapsed)
}

// calendarDay numbers t's calendar date as whole days since the Unix epoch.
func calendarDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
}

// ComputeStatistics derives the lived/remaining figures for a birth date
// and life expectancy at the given instant. A nil birthDate is the
// "nothing entered yet" state: every lived count is zero.
//
// DaysPassed is clamped to TotalDays so the percentage never exceeds 100.
func ComputeStatistics(birthDate *time.Time, lifeExpectancyYears int, now time.Time) domain.Statistics {
	total := TotalDays(lifeExpectancyYears)
	stats := domain.Statistics{
		LifeExpectancy:  modeledYears(lifeExpectancyYears),
		TotalDays:       total,
		DaysRemaining:   total,
		PercentageLived: decimal.Zero,
	}
	if birthDate == nil {
		return stats
	}

	passed := min(DaysBetween(*birthDate, now), total)

	stats.HasBirthDate = true
	stats.DaysPassed = passed
	stats.DaysRemaining = total - passed
	stats.CurrentAge = passed / domain.DaysPerYear
	stats.WeeksLived = passed / domain.DaysPerWeek
	stats.MonthsLived = int(math.Floor(float64(passed) / domain.AvgDaysPerMonth))
	if total > 0 {
		stats.PercentageLived = decimal.NewFromInt(int64(passed)).
			Div(decimal.NewFromInt(int64(total))).
			Mul(decimal.NewFromInt(100))
	}
	return stats
}
