package output

import (
	"encoding/json"

	"github.com/rgehrsitz/lifegrid/internal/domain"
)

// JSONFormatter serializes the snapshot as pretty-printed JSON. Cells are
// left out unless IncludeCells is set; the grid geometry is always present.
type JSONFormatter struct {
	IncludeCells bool
}

func (j JSONFormatter) Name() string {
	if j.IncludeCells {
		return "json-full"
	}
	return "json"
}

type jsonReport struct {
	*domain.Snapshot
	PercentLived string `json:"percent_lived"`
	TodayIndex   *int   `json:"today_index,omitempty"`
}

func (j JSONFormatter) Format(snap *domain.Snapshot) ([]byte, error) {
	view := *snap
	report := jsonReport{
		Snapshot:     &view,
		PercentLived: snap.Statistics.PercentDisplay(),
	}
	if snap.Grid != nil {
		if today, ok := snap.Grid.TodayIndex(); ok {
			report.TodayIndex = &today
		}
		if !j.IncludeCells {
			g := *snap.Grid
			g.Cells = nil
			view.Grid = &g
		}
	}
	return json.MarshalIndent(report, "", "  ")
}
