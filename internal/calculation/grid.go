package calculation

import "github.com/rgehrsitz/lifegrid/internal/domain"

// GridRows is the number of 52-column rows needed for totalDays cells.
func GridRows(totalDays int) int {
	if totalDays <= 0 {
		return 0
	}
	return (totalDays + domain.GridColumns - 1) / domain.GridColumns
}

// NewDayCell builds the cell for one index. Every field depends only on
// the index and daysPassed, so cells can be produced in any order.
func NewDayCell(index, daysPassed int) domain.DayCell {
	col := index % domain.GridColumns
	return domain.DayCell{
		Index:      index,
		IsPast:     index < daysPassed,
		Column:     col,
		Row:        index / domain.GridColumns,
		WeekInYear: col + 1,
		YearNumber: index/domain.DaysPerYear + 1,
	}
}

// GenerateDayGrid lays out one cell per day of the expected lifespan.
// daysPassed beyond the lifespan marks every cell past; negative values
// behave as zero. Lifespans above domain.MaxModeledYears give an empty grid.
func GenerateDayGrid(lifeExpectancyYears, daysPassed int) domain.DayGrid {
	total := TotalDays(lifeExpectancyYears)
	if daysPassed < 0 {
		daysPassed = 0
	}

	cells := make([]domain.DayCell, total)
	for i := range cells {
		cells[i] = NewDayCell(i, daysPassed)
	}

	return domain.DayGrid{
		LifeExpectancy: modeledYears(lifeExpectancyYears),
		TotalDays:      total,
		Columns:        domain.GridColumns,
		Rows:           GridRows(total),
		Cells:          cells,
	}
}

// YearLabels returns up to ten evenly spaced year markers for the grid
// margin, each a multiple of ceil(years/10) and never past years.
func YearLabels(lifeExpectancyYears int) []int {
	lifeExpectancyYears = modeledYears(lifeExpectancyYears)
	if lifeExpectancyYears == 0 {
		return nil
	}
	step := (lifeExpectancyYears + 9) / 10
	count := min(10, lifeExpectancyYears)

	labels := make([]int, 0, count)
	for i := 1; i <= count; i++ {
		year := i * step
		if year > lifeExpectancyYears {
			break
		}
		labels = append(labels, year)
	}
	return labels
}
