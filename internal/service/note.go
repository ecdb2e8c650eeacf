package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/atinyakov/StudyPlanner/internal/models"
)

// NoteRepository defines the persistence operations needed by the NoteService.
type NoteRepository interface {
	// SubjectExists reports whether the subject exists and belongs to the user.
	SubjectExists(ctx context.Context, login, subjectID string) (bool, error)
	// InsertNote stores a new note.
	InsertNote(ctx context.Context, note models.Note) error
}

// NoteService implements note creation. Notes are immutable after creation;
// no edit or delete operation exists.
type NoteService struct {
	repo   NoteRepository
	policy *bluemonday.Policy
}

// NewNoteService constructs a NoteService using the provided repository.
func NewNoteService(repo NoteRepository) *NoteService {
	return &NoteService{repo: repo, policy: bluemonday.UGCPolicy()}
}

// Add sanitizes and stores a note on one of the user's subjects, assigning
// the identifier and creation timestamp. Content that is empty after
// sanitization and trimming yields ErrEmptyContent; a subject owned by
// another user yields ErrNotFound.
func (s *NoteService) Add(ctx context.Context, login, subjectID, content string) (*models.Note, error) {
	content = strings.TrimSpace(s.policy.Sanitize(content))
	if content == "" {
		return nil, ErrEmptyContent
	}

	ok, err := s.repo.SubjectExists(ctx, login, subjectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	note := models.Note{
		UUID:        uuid.NewString(),
		SubjectUUID: subjectID,
		Content:     content,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.InsertNote(ctx, note); err != nil {
		return nil, err
	}
	return &note, nil
}
