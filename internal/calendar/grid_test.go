package calendar

import (
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{"leap February", 2024, time.February, 29},
		{"non-leap February", 2023, time.February, 28},
		{"century non-leap", 1900, time.February, 28},
		{"400-year leap", 2000, time.February, 29},
		{"thirty days", 2025, time.April, 30},
		{"thirty-one days", 2025, time.December, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInMonth(tt.year, tt.month); got != tt.want {
				t.Errorf("DaysInMonth(%d, %s) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestFirstWeekday(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		// 2025-06-01 was a Sunday, 2025-03-01 a Saturday, 2024-02-01 a Thursday.
		{"sunday start", 2025, time.June, 0},
		{"saturday start", 2025, time.March, 6},
		{"thursday start", 2024, time.February, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstWeekday(tt.year, tt.month); got != tt.want {
				t.Errorf("FirstWeekday(%d, %s) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestBuildGrid_Shape(t *testing.T) {
	months := []struct {
		year  int
		month time.Month
	}{
		{2024, time.February},
		{2025, time.March},
		{2025, time.June},
		{2025, time.December},
		{2026, time.January},
	}

	for _, m := range months {
		grid := BuildGrid(m.year, m.month)
		lead := FirstWeekday(m.year, m.month)
		days := DaysInMonth(m.year, m.month)

		if len(grid) != lead+days {
			t.Errorf("%s %d: got %d cells, want %d", m.month, m.year, len(grid), lead+days)
		}
		for i := 0; i < lead; i++ {
			if !grid[i].Blank() {
				t.Errorf("%s %d: cell %d should be blank, got day %d", m.month, m.year, i, grid[i].Day)
			}
		}
		for d := 1; d <= days; d++ {
			if got := grid[lead+d-1].Day; got != d {
				t.Errorf("%s %d: cell %d numbered %d, want %d", m.month, m.year, lead+d-1, got, d)
			}
		}
	}
}

func TestMonthNavigation_Rollover(t *testing.T) {
	year, month := NextMonth(2024, time.December)
	if year != 2025 || month != time.January {
		t.Errorf("NextMonth(2024, December) = %d %s, want 2025 January", year, month)
	}

	year, month = PrevMonth(2025, time.January)
	if year != 2024 || month != time.December {
		t.Errorf("PrevMonth(2025, January) = %d %s, want 2024 December", year, month)
	}

	year, month = NextMonth(2025, time.June)
	if year != 2025 || month != time.July {
		t.Errorf("NextMonth(2025, June) = %d %s, want 2025 July", year, month)
	}

	year, month = PrevMonth(2025, time.June)
	if year != 2025 || month != time.May {
		t.Errorf("PrevMonth(2025, June) = %d %s, want 2025 May", year, month)
	}
}
