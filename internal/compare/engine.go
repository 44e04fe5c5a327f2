package compare

import (
	"context"
	"fmt"
	"slices"

	"github.com/rgehrsitz/lifegrid/internal/calculation"
	"github.com/rgehrsitz/lifegrid/internal/config"
	"github.com/rgehrsitz/lifegrid/internal/domain"
)

// CompareEngine evaluates one profile under several life expectancies
type CompareEngine struct {
	Engine            *calculation.Engine
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(engine *calculation.Engine) *CompareEngine {
	if engine == nil {
		engine = calculation.NewEngine()
	}
	return &CompareEngine{
		Engine:            engine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	// Years are the alternative life expectancies. Empty means every preset.
	Years []int
}

// DefaultYears returns the preset life expectancies.
func DefaultYears() []int {
	years := make([]int, 0, len(domain.LifeExpectancyOptions))
	for _, opt := range domain.LifeExpectancyOptions {
		years = append(years, opt.Years)
	}
	return years
}

// Compare evaluates profile at its own life expectancy and at each
// alternative. All evaluations share one reading of the clock.
func (ce *CompareEngine) Compare(
	ctx context.Context,
	profile domain.Profile,
	options CompareOptions,
) (*ComparisonSet, error) {

	if profile.BirthDate == nil {
		return nil, fmt.Errorf("compare: %w", config.ErrNoBirthDate)
	}

	years := options.Years
	if len(years) == 0 {
		years = DefaultYears()
	}
	years = slices.Clone(years)
	slices.Sort(years)
	years = slices.Compact(years)

	for _, y := range years {
		if y < domain.MinLifeExpectancy || y > domain.MaxLifeExpectancy {
			return nil, fmt.Errorf("life expectancy %d outside %d-%d years",
				y, domain.MinLifeExpectancy, domain.MaxLifeExpectancy)
		}
	}

	now := ce.Engine.Clock.Now()
	pinned := calculation.NewEngineWithClock(calculation.FixedClock{T: now})
	pinned.SetLogger(ce.Engine.Logger)

	baseResult := ce.MetricsCalculator.CalculateMetrics(pinned.Snapshot(profile))

	alternatives := []ComparisonResult{}
	for _, y := range years {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if y == profile.LifeExpectancy {
			continue
		}

		alt := profile
		alt.LifeExpectancy = y
		altResult := ce.MetricsCalculator.CalculateMetrics(pinned.Snapshot(alt))
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)

		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseName:           baseResult.Name,
		BirthDate:          *profile.BirthDate,
		AsOf:               now,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Notes = GenerateNotes(compSet)

	return compSet, nil
}
