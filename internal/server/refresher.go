package server

import (
	"context"
	"fmt"
	"time"

	"github.com/rgehrsitz/lifegrid/internal/calculation"
	"github.com/rgehrsitz/lifegrid/internal/domain"
	"github.com/robfig/cron/v3"
)

// DefaultSchedule recomputes a few minutes after local midnight, when
// "today" moves to the next cell.
const DefaultSchedule = "5 0 * * *"

// Publisher receives freshly computed snapshots.
type Publisher interface {
	Publish(snap *domain.Snapshot) error
}

// Refresher recomputes the snapshot on a cron schedule.
type Refresher struct {
	Engine    *calculation.Engine
	Profile   domain.Profile
	Publisher Publisher
	Schedule  string
	Logger    calculation.Logger

	cron *cron.Cron
}

// NewRefresher wires a refresher with the default schedule.
func NewRefresher(engine *calculation.Engine, profile domain.Profile, pub Publisher) *Refresher {
	return &Refresher{
		Engine:    engine,
		Profile:   profile,
		Publisher: pub,
		Schedule:  DefaultSchedule,
		Logger:    calculation.NopLogger{},
	}
}

// ValidateSchedule checks a standard five-field cron expression.
func ValidateSchedule(schedule string) error {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}
	return nil
}

// Refresh computes one snapshot and hands it to the publisher.
func (r *Refresher) Refresh() error {
	snap := r.Engine.Snapshot(r.Profile)
	r.Logger.Infof("refreshed %s: %d/%d days lived",
		snap.Now.Format("2006-01-02"), snap.Statistics.DaysPassed, snap.Statistics.TotalDays)
	return r.Publisher.Publish(snap)
}

// Start refreshes once, then on every schedule tick until ctx is done.
func (r *Refresher) Start(ctx context.Context) error {
	if err := ValidateSchedule(r.Schedule); err != nil {
		return err
	}

	if err := r.Refresh(); err != nil {
		r.Logger.Warnf("initial refresh: %v", err)
	}

	r.cron = cron.New(cron.WithLocation(time.Local))
	if _, err := r.cron.AddFunc(r.Schedule, func() {
		if err := r.Refresh(); err != nil {
			r.Logger.Warnf("scheduled refresh: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("add refresh job: %w", err)
	}

	r.cron.Start()
	r.Logger.Infof("refresher started (schedule %q)", r.Schedule)

	<-ctx.Done()
	stopped := r.cron.Stop()
	<-stopped.Done()
	r.Logger.Infof("refresher stopped")
	return nil
}

// Next reports when the schedule fires after t.
func (r *Refresher) Next(t time.Time) (time.Time, error) {
	sched, err := cron.ParseStandard(r.Schedule)
	if err != nil {
		return time.Time{}, err
	}
	return sched.Next(t), nil
}
