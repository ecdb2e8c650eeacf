package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atinyakov/StudyPlanner/internal/middleware"
	"github.com/atinyakov/StudyPlanner/internal/models"
	"github.com/atinyakov/StudyPlanner/internal/service"
)

// NoteService defines the interface for note operations required by the
// HTTP handlers.
type NoteService interface {
	// Add stores a note on one of the user's subjects and returns it with
	// the assigned identifier and timestamp.
	Add(ctx context.Context, login, subjectID, content string) (*models.Note, error)
}

// NoteHandler handles HTTP requests for note creation.
type NoteHandler struct {
	NoteService NoteService
}

// AddNoteRequest represents the JSON payload for attaching a note.
type AddNoteRequest struct {
	// SubjectUUID identifies the subject the note belongs to.
	SubjectUUID string `json:"subjectUuid"`
	// Content is the note text; must be non-empty after sanitization.
	Content string `json:"content"`
}

// Add handles POST /note requests and responds 201 with the stored note
// under the "note" key.
func (h *NoteHandler) Add(w http.ResponseWriter, r *http.Request) {
	login := middleware.GetUserFromContext(r.Context())

	var req AddNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SubjectUUID == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	note, err := h.NoteService.Add(r.Context(), login, req.SubjectUUID, req.Content)
	switch {
	case errors.Is(err, service.ErrEmptyContent):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "subject not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal error")
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]*models.Note{"note": note})
	}
}
