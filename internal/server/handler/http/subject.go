package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/atinyakov/StudyPlanner/internal/middleware"
	"github.com/atinyakov/StudyPlanner/internal/models"
	"github.com/atinyakov/StudyPlanner/internal/service"
)

// SubjectService defines the interface for subject operations required by
// the HTTP handlers.
type SubjectService interface {
	// List returns the user's subjects; zero month/year disables the filter.
	List(ctx context.Context, login string, month time.Month, year int, withNotes bool) ([]models.Subject, error)
	// Create materializes the subject plus its revision reminders.
	Create(ctx context.Context, login string, req models.CreateSubjectRequest) ([]models.Subject, error)
	// Edit replaces the subject's mutable fields.
	Edit(ctx context.Context, login string, subject models.Subject) error
	// Delete removes the subject.
	Delete(ctx context.Context, login, id string) error
}

// SubjectHandler handles HTTP requests for subject management.
type SubjectHandler struct {
	SubjectService SubjectService
}

// List handles GET /subject requests with optional "month" and "year" query
// parameters (month is 1-based). The "instance-notes: true" header inlines
// each subject's notes. Responds 200 with a JSON array.
func (h *SubjectHandler) List(w http.ResponseWriter, r *http.Request) {
	login := middleware.GetUserFromContext(r.Context())

	var month time.Month
	var year int
	if v := r.URL.Query().Get("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			writeError(w, http.StatusBadRequest, "invalid month")
			return
		}
		month = time.Month(n)
	}
	if v := r.URL.Query().Get("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = n
	}
	withNotes := r.Header.Get("instance-notes") == "true"

	subjects, err := h.SubjectService.List(r.Context(), login, month, year, withNotes)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if subjects == nil {
		subjects = []models.Subject{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(subjects)
}

// Create handles POST /subject requests.
// It decodes a CreateSubjectRequest and responds 201 with every subject the
// service materialized, under the "subjects" key.
func (h *SubjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	login := middleware.GetUserFromContext(r.Context())

	var req models.CreateSubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	subjects, err := h.SubjectService.Create(r.Context(), login, req)
	if errors.Is(err, service.ErrEmptyTitle) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string][]models.Subject{"subjects": subjects})
}

// Edit handles PUT /subject/{id} requests.
// The body is the full subject; the path ID wins over any ID in the body.
// Responds 200 on success, 404 when the subject is not the user's.
func (h *SubjectHandler) Edit(w http.ResponseWriter, r *http.Request) {
	login := middleware.GetUserFromContext(r.Context())

	var subject models.Subject
	if err := json.NewDecoder(r.Body).Decode(&subject); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	subject.UUID = chi.URLParam(r, "id")

	err := h.SubjectService.Edit(r.Context(), login, subject)
	switch {
	case errors.Is(err, service.ErrEmptyTitle):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "subject not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal error")
	default:
		w.WriteHeader(http.StatusOK)
	}
}

// Delete handles DELETE /subject/{id} requests.
// Responds 204 only when the subject was definitively deleted.
func (h *SubjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	login := middleware.GetUserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	err := h.SubjectService.Delete(r.Context(), login, id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "subject not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal error")
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
