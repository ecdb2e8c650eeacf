package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/atinyakov/StudyPlanner/internal/models"
	"github.com/atinyakov/StudyPlanner/internal/service"
)

// fakeNoteService implements NoteService for handler tests.
type fakeNoteService struct {
	note *models.Note
	err  error

	gotLogin   string
	gotSubject string
	gotContent string
}

func (f *fakeNoteService) Add(ctx context.Context, login, subjectID, content string) (*models.Note, error) {
	f.gotLogin = login
	f.gotSubject = subjectID
	f.gotContent = content
	return f.note, f.err
}

func TestNoteHandler_Add(t *testing.T) {
	stored := &models.Note{
		UUID:        "n1",
		SubjectUUID: "s1",
		Content:     "remember the quadratic formula",
		CreatedAt:   time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name       string
		body       string
		note       *models.Note
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "note stored",
			body:       `{"subjectUuid":"s1","content":"remember the quadratic formula"}`,
			note:       stored,
			wantStatus: http.StatusCreated,
			wantBody:   `"note":{"uuid":"n1"`,
		},
		{
			name:       "malformed json",
			body:       `{"subjectUuid":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid request",
		},
		{
			name:       "missing subject id",
			body:       `{"content":"orphan note"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid request",
		},
		{
			name:       "empty content",
			body:       `{"subjectUuid":"s1","content":"  "}`,
			err:        service.ErrEmptyContent,
			wantStatus: http.StatusBadRequest,
			wantBody:   "note content must not be empty",
		},
		{
			name:       "subject not owned",
			body:       `{"subjectUuid":"s1","content":"note"}`,
			err:        service.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   "subject not found",
		},
		{
			name:       "service failure",
			body:       `{"subjectUuid":"s1","content":"note"}`,
			err:        errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeNoteService{note: tt.note, err: tt.err}
			h := &NoteHandler{NoteService: svc}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/note", strings.NewReader(tt.body))
			h.Add(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body %q does not contain %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestNoteHandler_AddPassesFields(t *testing.T) {
	svc := &fakeNoteService{note: &models.Note{UUID: "n1"}}
	h := &NoteHandler{NoteService: svc}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/note", strings.NewReader(`{"subjectUuid":"s1","content":"hello"}`))
	h.Add(rec, req)

	if svc.gotSubject != "s1" || svc.gotContent != "hello" {
		t.Errorf("service got (%q, %q), want (s1, hello)", svc.gotSubject, svc.gotContent)
	}
}
