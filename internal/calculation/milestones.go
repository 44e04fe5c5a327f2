package calculation

import (
	"sort"
	"time"

	"github.com/rgehrsitz/lifegrid/internal/domain"
)

// Day-count milestones: every 1,000 days up to 10,000, then every 5,000.
const (
	smallDayStep   = 1000
	largeDayStep   = 5000
	smallStepLimit = 10000
	decadeDays     = 10 * domain.DaysPerYear
)

var percentMarks = []int{25, 50, 75}

// Milestones lists the notable days of a lifespan, ordered by day index.
// Dates are counted in whole days from birthDate.
func Milestones(birthDate time.Time, lifeExpectancyYears int) []domain.Milestone {
	total := TotalDays(lifeExpectancyYears)
	if total == 0 {
		return nil
	}

	var out []domain.Milestone
	add := func(kind domain.MilestoneKind, value, index int) {
		out = append(out, domain.Milestone{
			Kind:     kind,
			Value:    value,
			DayIndex: index,
			Date:     birthDate.AddDate(0, 0, index),
		})
	}

	for n := smallDayStep; n < total; {
		add(domain.MilestoneDays, n, n)
		if n < smallStepLimit {
			n += smallDayStep
		} else {
			n += largeDayStep
		}
	}

	for idx, years := decadeDays, 10; idx < total; idx, years = idx+decadeDays, years+10 {
		add(domain.MilestoneYears, years, idx)
	}

	for _, pct := range percentMarks {
		add(domain.MilestonePercent, pct, total*pct/100)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DayIndex < out[j].DayIndex
	})
	return out
}
