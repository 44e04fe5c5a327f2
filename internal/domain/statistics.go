package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Statistics holds the scalar figures derived from a profile at one instant.
type Statistics struct {
	HasBirthDate    bool            `json:"has_birth_date"`
	LifeExpectancy  int             `json:"life_expectancy_years"`
	TotalDays       int             `json:"total_days"`
	DaysPassed      int             `json:"days_passed"`
	DaysRemaining   int             `json:"days_remaining"`
	CurrentAge      int             `json:"current_age"`
	WeeksLived      int             `json:"weeks_lived"`
	MonthsLived     int             `json:"months_lived"`
	PercentageLived decimal.Decimal `json:"percentage_lived"`
}

// PercentDisplay is the headline percentage, one decimal place.
// Without a birth date it is the literal "0".
func (s Statistics) PercentDisplay() string {
	if !s.HasBirthDate {
		return "0"
	}
	return s.PercentageLived.StringFixed(1)
}

// PercentSummary is the two-decimal "percent of expected life" figure.
func (s Statistics) PercentSummary() string {
	return s.PercentageLived.StringFixed(2)
}

// ProgressFraction returns the lived share in [0, 1] for progress bars.
func (s Statistics) ProgressFraction() float64 {
	if !s.HasBirthDate || s.PercentageLived.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	if s.PercentageLived.GreaterThanOrEqual(hundred) {
		return 1
	}
	return s.PercentageLived.Div(hundred).InexactFloat64()
}
