package calculation

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/rgehrsitz/lifegrid/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	engine := NewEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.IsType(t, RealClock{}, engine.Clock, "Should default to the system clock")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should default to no-op logger")
}

func TestEngine_SetLogger(t *testing.T) {
	engine := NewEngine()

	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)
	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestNewEngineWithClock_NilKeepsRealClock(t *testing.T) {
	engine := NewEngineWithClock(nil)
	assert.IsType(t, RealClock{}, engine.Clock)
}

func TestEngine_Snapshot_TenDaysOld(t *testing.T) {
	engine := NewEngineWithClock(FixedClock{T: date(2000, 1, 11)})
	logger := &TestLogger{}
	engine.SetLogger(logger)

	profile := domain.NewProfile().WithBirthDate(date(2000, 1, 1))
	snap := engine.Snapshot(profile)

	require.True(t, snap.Ready())
	require.NotNil(t, snap.Grid)
	assert.Equal(t, date(2000, 1, 11), snap.Now)
	assert.Equal(t, 10, snap.Statistics.DaysPassed)
	assert.Equal(t, 27375, snap.Grid.TotalDays)

	today, ok := snap.Grid.TodayIndex()
	assert.True(t, ok)
	assert.Equal(t, snap.Statistics.DaysPassed, today)

	d, ok := snap.DateOf(today)
	assert.True(t, ok)
	assert.Equal(t, date(2000, 1, 11), d)

	assert.NotEmpty(t, snap.Milestones)
	assert.Equal(t, []int{8, 16, 24, 32, 40, 48, 56, 64, 72}, snap.YearLabels)
	assert.NotEmpty(t, logger.messages, "Should log the snapshot")
}

func TestEngine_Snapshot_NoBirthDate(t *testing.T) {
	engine := NewEngineWithClock(FixedClock{T: date(2024, 5, 1)})

	snap := engine.Snapshot(domain.NewProfile())

	assert.False(t, snap.Ready())
	assert.Nil(t, snap.Grid, "Should not lay out a grid without a birth date")
	assert.Nil(t, snap.Milestones)
	assert.Equal(t, "0", snap.Statistics.PercentDisplay())

	_, ok := snap.DateOf(0)
	assert.False(t, ok)
}

func TestEngine_Snapshot_EmptyGrid(t *testing.T) {
	engine := NewEngineWithClock(FixedClock{T: date(2024, 5, 1)})
	engine.RenderEmptyGrid = true

	snap := engine.Snapshot(domain.NewProfile())

	require.NotNil(t, snap.Grid)
	assert.Equal(t, 0, snap.Grid.PastCount())
	assert.Equal(t, 27375, len(snap.Grid.Cells))
	assert.Nil(t, snap.Milestones)

	profile := domain.NewProfile()
	profile.EmptyGrid = true
	engine.RenderEmptyGrid = false
	assert.NotNil(t, engine.Snapshot(profile).Grid, "Profile flag should also request the grid")
}

func TestEngine_Snapshot_GridAgreesWithStatistics(t *testing.T) {
	birth := date(1975, 8, 20)
	for _, offset := range []int{0, 1, 12000, 40000} {
		engine := NewEngineWithClock(FixedClock{T: birth.AddDate(0, 0, offset).Add(5 * time.Hour)})
		snap := engine.Snapshot(domain.Profile{BirthDate: &birth, LifeExpectancy: 90})

		assert.Equal(t, snap.Statistics.DaysPassed, snap.Grid.PastCount(), "offset %d", offset)
	}
}

func TestStdLogger_Prefixes(t *testing.T) {
	var buf bytes.Buffer
	l := StdLogger{L: log.New(&buf, "", 0)}

	l.Debugf("hidden")
	l.Infof("hello %d", 1)
	l.Warnf("careful")

	assert.Equal(t, "INFO: hello 1\nWARN: careful\n", buf.String())

	buf.Reset()
	l.Verbose = true
	l.Debugf("shown")
	assert.Equal(t, "DEBUG: shown\n", buf.String())
}

// TestLogger records formats for assertions.
type TestLogger struct {
	messages []string
}

func (tl *TestLogger) Debugf(format string, args ...any) {
	tl.messages = append(tl.messages, "DEBUG: "+format)
}

func (tl *TestLogger) Infof(format string, args ...any) {
	tl.messages = append(tl.messages, "INFO: "+format)
}

func (tl *TestLogger) Warnf(format string, args ...any) {
	tl.messages = append(tl.messages, "WARN: "+format)
}

func (tl *TestLogger) Errorf(format string, args ...any) {
	tl.messages = append(tl.messages, "ERROR: "+format)
}
