package calendar

import (
	"time"

	"github.com/atinyakov/StudyPlanner/internal/models"
)

// SubjectsOnDay returns the subjects whose study date matches the given day,
// month and year exactly. Input order is preserved. Subjects without a valid
// date are skipped, never reported as an error.
func SubjectsOnDay(subjects []models.Subject, day int, month time.Month, year int) []models.Subject {
	var out []models.Subject
	for _, s := range subjects {
		if s.StudyDate.IsZero() {
			continue
		}
		y, m, d := s.StudyDate.Date()
		if d == day && m == month && y == year {
			out = append(out, s)
		}
	}
	return out
}

// SubjectsInMonth returns the subjects whose study date falls in the given
// month and year. Used as a fallback when the server did not pre-filter.
func SubjectsInMonth(subjects []models.Subject, month time.Month, year int) []models.Subject {
	var out []models.Subject
	for _, s := range subjects {
		if s.StudyDate.IsZero() {
			continue
		}
		y, m, _ := s.StudyDate.Date()
		if m == month && y == year {
			out = append(out, s)
		}
	}
	return out
}
