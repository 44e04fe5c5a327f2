package domain

import (
	"fmt"
	"time"
)

// Snapshot is one evaluation of a profile at a reference instant.
// Grid is nil when there is nothing to draw yet.
type Snapshot struct {
	Profile    Profile     `json:"profile"`
	Now        time.Time   `json:"now"`
	Statistics Statistics  `json:"statistics"`
	Grid       *DayGrid    `json:"grid,omitempty"`
	YearLabels []int       `json:"year_labels,omitempty"`
	Milestones []Milestone `json:"milestones,omitempty"`
}

// Ready reports whether the snapshot was computed from a birth date.
func (s *Snapshot) Ready() bool {
	return s != nil && s.Statistics.HasBirthDate
}

// DateOf maps a day index to its calendar date.
func (s *Snapshot) DateOf(index int) (time.Time, bool) {
	if s == nil || s.Profile.BirthDate == nil || index < 0 {
		return time.Time{}, false
	}
	return s.Profile.BirthDate.AddDate(0, 0, index), true
}

// MilestoneKind classifies a milestone.
type MilestoneKind string

const (
	MilestoneDays    MilestoneKind = "days"
	MilestoneYears   MilestoneKind = "years"
	MilestonePercent MilestoneKind = "percent"
)

// Milestone is a notable day index within the lifespan.
type Milestone struct {
	Kind     MilestoneKind `json:"kind"`
	Value    int           `json:"value"`
	DayIndex int           `json:"day_index"`
	Date     time.Time     `json:"date"`
}

// Label is a short human description of the milestone.
func (m Milestone) Label() string {
	switch m.Kind {
	case MilestoneDays:
		return fmt.Sprintf("Day %d", m.Value)
	case MilestoneYears:
		return fmt.Sprintf("%d grid years", m.Value)
	case MilestonePercent:
		return fmt.Sprintf("%d%% of expected life", m.Value)
	default:
		return fmt.Sprintf("Day %d", m.DayIndex)
	}
}
