package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/lifegrid/internal/domain"
)

// CSVFormatter exports one row per day cell.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

var csvHeader = []string{"index", "row", "column", "week", "year", "is_past", "is_today", "date"}

func (c CSVFormatter) Format(snap *domain.Snapshot) ([]byte, error) {
	if snap.Grid == nil {
		return nil, ErrNoGrid
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	today, hasToday := snap.Grid.TodayIndex()
	for _, cell := range snap.Grid.Cells {
		date := ""
		if d, ok := snap.DateOf(cell.Index); ok {
			date = d.Format("2006-01-02")
		}
		row := []string{
			strconv.Itoa(cell.Index),
			strconv.Itoa(cell.Row),
			strconv.Itoa(cell.Column),
			strconv.Itoa(cell.WeekInYear),
			strconv.Itoa(cell.YearNumber),
			strconv.FormatBool(cell.IsPast),
			strconv.FormatBool(hasToday && cell.Index == today),
			date,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
