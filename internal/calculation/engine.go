package calculation

import (
	"github.com/rgehrsitz/lifegrid/internal/domain"
)

// Engine evaluates profiles against a clock.
type Engine struct {
	Clock  Clock
	Logger Logger

	// RenderEmptyGrid produces an all-future grid for profiles without a
	// birth date instead of leaving Snapshot.Grid nil.
	RenderEmptyGrid bool
}

// NewEngine creates an engine on the system clock with logging disabled.
func NewEngine() *Engine {
	return &Engine{
		Clock:  RealClock{},
		Logger: NopLogger{},
	}
}

// NewEngineWithClock creates an engine pinned to clock.
func NewEngineWithClock(clock Clock) *Engine {
	e := NewEngine()
	if clock != nil {
		e.Clock = clock
	}
	return e
}

// SetLogger sets a logger; nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Snapshot evaluates profile at the engine's current time. The clock is
// read once so statistics and grid always agree on "now".
func (e *Engine) Snapshot(profile domain.Profile) *domain.Snapshot {
	now := e.Clock.Now()
	stats := ComputeStatistics(profile.BirthDate, profile.LifeExpectancy, now)

	snap := &domain.Snapshot{
		Profile:    profile,
		Now:        now,
		Statistics: stats,
		YearLabels: YearLabels(profile.LifeExpectancy),
	}

	if !stats.HasBirthDate && !(e.RenderEmptyGrid || profile.EmptyGrid) {
		e.Logger.Debugf("no birth date for %q, grid skipped", profile.Name)
		return snap
	}

	grid := GenerateDayGrid(profile.LifeExpectancy, stats.DaysPassed)
	snap.Grid = &grid
	if profile.BirthDate != nil {
		snap.Milestones = Milestones(*profile.BirthDate, profile.LifeExpectancy)
	}

	e.Logger.Debugf("snapshot %s: %d/%d days, %d rows",
		now.Format("2006-01-02"), stats.DaysPassed, stats.TotalDays, grid.Rows)
	return snap
}
