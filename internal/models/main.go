// Package models defines the core data structures for users, subjects and notes.
package models

import "time"

// User represents an application user with credentials.
type User struct {
	// Login is the name chosen by the user.
	Login string
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash []byte
}

// Note is a free-text annotation attached to a Subject. Notes are immutable
// once created.
type Note struct {
	// UUID is the unique identifier for the note.
	UUID string `json:"uuid"`
	// SubjectUUID identifies the subject the note belongs to.
	SubjectUUID string `json:"subjectUuid"`
	// Content is the note text.
	Content string `json:"content"`
	// CreatedAt is when the note was created.
	CreatedAt time.Time `json:"createdAt"`
}

// Subject is a study topic scheduled on a specific date.
type Subject struct {
	// UUID is the unique identifier for the subject.
	UUID string `json:"uuid"`
	// Title is the non-empty display title.
	Title string `json:"title"`
	// Description is optional free text.
	Description string `json:"description"`
	// StudyDate is the calendar date the subject is scheduled on.
	// Time-of-day carries no meaning; comparisons use calendar fields.
	StudyDate time.Time `json:"studyDate"`
	// Notes holds the notes attached to the subject, oldest first.
	Notes []Note `json:"notes,omitempty"`
}

// CreateSubjectRequest is the payload for creating a subject together with
// its spaced-revision reminders.
type CreateSubjectRequest struct {
	// Title is required and must be non-empty after trimming.
	Title string `json:"title"`
	// Description is optional free text.
	Description string `json:"description"`
	// StudyDate defaults to the current date when nil.
	StudyDate *time.Time `json:"studyDate,omitempty"`
	// AddRevisionsInDays lists the day offsets for revision reminders.
	// When nil, DefaultRevisionOffsets is used.
	AddRevisionsInDays []int `json:"addRevisionsInDays"`
}

// DefaultRevisionOffsets returns the day offsets used for revision reminders
// when the caller does not override them.
func DefaultRevisionOffsets() []int {
	return []int{1, 7, 30}
}
