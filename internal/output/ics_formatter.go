package output

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/emersion/go-ical"
	"github.com/rgehrsitz/lifegrid/internal/domain"
)

const (
	icsProdID   = "-//LifeGrid//Milestones//EN"
	icsCalName  = "LifeGrid milestones"
	icsUIDHost  = "lifegrid"
	icsEmptyCal = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + icsProdID + "\r\nEND:VCALENDAR\r\n"
)

// ICSFormatter exports the snapshot's milestones as all-day calendar events.
type ICSFormatter struct{}

func (f ICSFormatter) Name() string { return "ics" }

func (f ICSFormatter) Format(snap *domain.Snapshot) ([]byte, error) {
	if len(snap.Milestones) == 0 {
		// The encoder refuses a calendar without components.
		return []byte(icsEmptyCal), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, icsProdID)
	cal.Props.SetText("X-WR-CALNAME", icsCalName)
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")

	stamp := ical.NewProp(ical.PropDateTimeStamp)
	stamp.SetDateTime(snap.Now.UTC())

	total := snap.Statistics.TotalDays
	for _, m := range snap.Milestones {
		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, milestoneUID(snap, m))
		event.Props.Set(stamp)
		event.Props.SetText(ical.PropSummary, m.Label())
		event.Props.SetText(ical.PropDescription,
			fmt.Sprintf("Day %s of %s", FormatCount(m.DayIndex), FormatCount(total)))

		start := ical.NewProp(ical.PropDateTimeStart)
		start.SetDate(m.Date)
		event.Props.Set(start)

		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("failed to encode iCalendar data: %w", err)
	}
	return buf.Bytes(), nil
}

// milestoneUID is stable across refreshes for the same birth date.
func milestoneUID(snap *domain.Snapshot, m domain.Milestone) string {
	birth := ""
	if snap.Profile.BirthDate != nil {
		birth = snap.Profile.BirthDate.Format("20060102")
	}
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d|%d", birth, m.Kind, m.Value, m.DayIndex)))
	return fmt.Sprintf("%x@%s", sum[:8], icsUIDHost)
}
