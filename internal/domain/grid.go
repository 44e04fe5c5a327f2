package domain

// Fixed calendar model used by the grid. A year is always 365 days and a
// grid row always holds one "year" of 52 week columns.
const (
	DaysPerYear     = 365
	DaysPerWeek     = 7
	AvgDaysPerMonth = 30.44
	GridColumns     = 52
)

// MaxModeledYears bounds the lifespans the core will lay out. Larger values
// are treated like non-positive ones: an empty model.
const MaxModeledYears = 1000

// DayCell is one day of the modeled lifespan.
type DayCell struct {
	Index      int  `json:"index"`
	IsPast     bool `json:"is_past"`
	Column     int  `json:"column"`
	Row        int  `json:"row"`
	WeekInYear int  `json:"week_in_year"`
	YearNumber int  `json:"year_number"`
}

// DayGrid is the ordered cell sequence plus its layout.
type DayGrid struct {
	LifeExpectancy int       `json:"life_expectancy_years"`
	TotalDays      int       `json:"total_days"`
	Columns        int       `json:"columns"`
	Rows           int       `json:"rows"`
	Cells          []DayCell `json:"cells,omitempty"`
}

// TodayIndex returns the index of the first cell that is not past.
// It reports false when every cell is past or the grid is empty.
func (g *DayGrid) TodayIndex() (int, bool) {
	for _, c := range g.Cells {
		if !c.IsPast {
			return c.Index, true
		}
	}
	return 0, false
}

// IsToday reports whether index is the grid's current day.
func (g *DayGrid) IsToday(index int) bool {
	today, ok := g.TodayIndex()
	return ok && today == index
}

// PastCount counts the cells marked as lived.
func (g *DayGrid) PastCount() int {
	n := 0
	for _, c := range g.Cells {
		if c.IsPast {
			n++
		}
	}
	return n
}

// Cell returns the cell placed at (row, col), if any.
func (g *DayGrid) Cell(row, col int) (DayCell, bool) {
	if row < 0 || col < 0 || col >= g.Columns {
		return DayCell{}, false
	}
	i := row*g.Columns + col
	if i >= len(g.Cells) {
		return DayCell{}, false
	}
	return g.Cells[i], true
}

// RowCells returns the cells of one grid row. The last row may be short.
func (g *DayGrid) RowCells(row int) []DayCell {
	if row < 0 || row >= g.Rows {
		return nil
	}
	start := row * g.Columns
	end := start + g.Columns
	if end > len(g.Cells) {
		end = len(g.Cells)
	}
	if start >= end {
		return nil
	}
	return g.Cells[start:end]
}
