// Package calendar provides pure month-grid math and day bucketing for the
// calendar view. All functions are deterministic and side-effect free.
package calendar

import "time"

// Cell is a single slot in the month grid. The grid starts with blank cells
// padding the first week so that day 1 lands on its weekday column.
type Cell struct {
	// Day is the day of the month, or 0 for a blank pad cell.
	Day int
}

// Blank reports whether the cell is a leading pad cell.
func (c Cell) Blank() bool { return c.Day == 0 }

// DaysInMonth returns the number of days in the given month. Day zero of the
// following month normalizes to the last day of this one, which handles leap
// years without a table.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the 1st of the month, 0 = Sunday.
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// BuildGrid returns FirstWeekday blank cells followed by one numbered cell
// per day of the month, 1..DaysInMonth. No trailing padding is added.
func BuildGrid(year int, month time.Month) []Cell {
	lead := FirstWeekday(year, month)
	days := DaysInMonth(year, month)

	grid := make([]Cell, 0, lead+days)
	for i := 0; i < lead; i++ {
		grid = append(grid, Cell{})
	}
	for d := 1; d <= days; d++ {
		grid = append(grid, Cell{Day: d})
	}
	return grid
}

// NextMonth returns the month following the given one. December rolls over
// into January of the next year.
func NextMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

// PrevMonth returns the month preceding the given one. January rolls back
// into December of the previous year.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month-1, 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}
