package compare

import (
	"fmt"
	"time"

	"github.com/rgehrsitz/lifegrid/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult is one life expectancy evaluated for a fixed birth date
// and reference day.
type ComparisonResult struct {
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	LifeExpectancy int    `json:"lifeExpectancyYears"`

	// Key Metrics
	TotalDays       int             `json:"totalDays"`
	DaysPassed      int             `json:"daysPassed"`
	DaysRemaining   int             `json:"daysRemaining"`
	PercentageLived decimal.Decimal `json:"percentageLived"`
	FinalDay        time.Time       `json:"finalDay"`

	// Comparison to Base
	DaysRemainingDiff   int             `json:"daysRemainingDiff"`
	PercentDiffFromBase decimal.Decimal `json:"percentDiffFromBase"`
}

// ComparisonSet is the base expectancy plus its alternatives
type ComparisonSet struct {
	BaseName           string             `json:"baseName"`
	BirthDate          time.Time          `json:"birthDate"`
	AsOf               time.Time          `json:"asOf"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Notes              []string           `json:"notes"`
}

// MetricsCalculator extracts key metrics from snapshots
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the comparison metrics for a snapshot
func (mc *MetricsCalculator) CalculateMetrics(snap *domain.Snapshot) ComparisonResult {
	stats := snap.Statistics
	result := ComparisonResult{
		Name:            ResultName(stats.LifeExpectancy),
		Description:     presetDescription(stats.LifeExpectancy),
		LifeExpectancy:  stats.LifeExpectancy,
		TotalDays:       stats.TotalDays,
		DaysPassed:      stats.DaysPassed,
		DaysRemaining:   stats.DaysRemaining,
		PercentageLived: stats.PercentageLived,
	}
	if stats.TotalDays > 0 {
		if last, ok := snap.DateOf(stats.TotalDays - 1); ok {
			result.FinalDay = last
		}
	}
	return result
}

// CalculateComparison fills in alt's differences from base
func (mc *MetricsCalculator) CalculateComparison(alt, base ComparisonResult) ComparisonResult {
	alt.DaysRemainingDiff = alt.DaysRemaining - base.DaysRemaining
	alt.PercentDiffFromBase = alt.PercentageLived.Sub(base.PercentageLived)
	return alt
}

// ResultName labels a life expectancy, e.g. "80 years".
func ResultName(years int) string {
	return fmt.Sprintf("%d years", years)
}

func presetDescription(years int) string {
	for _, opt := range domain.LifeExpectancyOptions {
		if opt.Years == years {
			return opt.Description
		}
	}
	return ""
}

// GenerateNotes summarizes the spread between the alternatives and the base
func GenerateNotes(compSet *ComparisonSet) []string {
	notes := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return notes
	}
	base := compSet.BaseResult

	most := base
	for i := range compSet.AlternativeResults {
		if compSet.AlternativeResults[i].DaysRemaining > most.DaysRemaining {
			most = &compSet.AlternativeResults[i]
		}
	}
	if most != base {
		notes = append(notes, fmt.Sprintf("Most time: %s leaves %d more days than %s",
			most.Name, most.DaysRemainingDiff, base.Name))
	}

	least := base
	for i := range compSet.AlternativeResults {
		if compSet.AlternativeResults[i].DaysRemaining < least.DaysRemaining {
			least = &compSet.AlternativeResults[i]
		}
	}
	if least != base {
		notes = append(notes, fmt.Sprintf("Least time: %s leaves %d fewer days than %s",
			least.Name, -least.DaysRemainingDiff, base.Name))
	}

	for _, alt := range compSet.AlternativeResults {
		if alt.DaysRemaining == 0 {
			notes = append(notes, fmt.Sprintf("Already past the %s expectancy", alt.Name))
		}
	}

	return notes
}
