package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/atinyakov/StudyPlanner/internal/models"
)

func TestExport_MonthFilter(t *testing.T) {
	subjects := []models.Subject{
		{UUID: "s1", Title: "Algebra", Description: "chapter 3",
			StudyDate: time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{UUID: "s2", Title: "History",
			StudyDate: time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC)},
	}

	out := Export(subjects, time.March, 2025)

	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Fatalf("not a calendar:\n%s", out)
	}
	if !strings.Contains(out, "SUMMARY:Algebra") {
		t.Errorf("expected in-month subject, got:\n%s", out)
	}
	if strings.Contains(out, "SUMMARY:History") {
		t.Errorf("subject from another month leaked into export:\n%s", out)
	}
	if !strings.Contains(out, "DTSTART;VALUE=DATE:20250305") {
		t.Errorf("expected all-day start date, got:\n%s", out)
	}
}

func TestExport_NoteCountInDescription(t *testing.T) {
	subjects := []models.Subject{
		{UUID: "s1", Title: "Algebra", Description: "chapter 3",
			StudyDate: time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
			Notes: []models.Note{
				{UUID: "n1", SubjectUUID: "s1", Content: "a"},
				{UUID: "n2", SubjectUUID: "s1", Content: "b"},
			}},
	}

	out := Export(subjects, time.March, 2025)
	if !strings.Contains(out, "[2 notes]") {
		t.Errorf("expected note count in description, got:\n%s", out)
	}
}

func TestExport_EmptyMonth(t *testing.T) {
	out := Export(nil, time.March, 2025)
	if strings.Contains(out, "BEGIN:VEVENT") {
		t.Errorf("expected no events, got:\n%s", out)
	}
}
