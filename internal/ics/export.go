// Package ics serializes a month of subjects as an iCalendar feed so a study
// plan can be imported into any calendar application.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/atinyakov/StudyPlanner/internal/calendar"
	"github.com/atinyakov/StudyPlanner/internal/models"
)

// Export renders the subjects falling in the given month as all-day events
// and returns the serialized calendar. Subjects from other months are
// filtered out.
func Export(subjects []models.Subject, month time.Month, year int) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//StudyPlanner//EN")

	now := time.Now()
	for _, s := range calendar.SubjectsInMonth(subjects, month, year) {
		ev := cal.AddEvent(s.UUID)
		ev.SetDtStampTime(now)
		ev.SetSummary(s.Title)
		desc := s.Description
		if n := len(s.Notes); n > 0 {
			desc = fmt.Sprintf("%s [%d notes]", desc, n)
		}
		if desc != "" {
			ev.SetDescription(desc)
		}
		day := time.Date(s.StudyDate.Year(), s.StudyDate.Month(), s.StudyDate.Day(), 0, 0, 0, 0, time.UTC)
		ev.SetAllDayStartAt(day)
		ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
	}
	return cal.Serialize()
}
