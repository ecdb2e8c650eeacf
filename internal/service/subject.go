package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atinyakov/StudyPlanner/internal/models"
)

// SubjectRepository defines the persistence operations needed by the SubjectService.
type SubjectRepository interface {
	// GetSubjectsByUser retrieves the user's subjects. A zero month or year
	// disables the corresponding filter; withNotes inlines each subject's notes.
	GetSubjectsByUser(ctx context.Context, login string, month time.Month, year int, withNotes bool) ([]models.Subject, error)
	// InsertSubjects stores the given subjects for the user atomically.
	InsertSubjects(ctx context.Context, login string, subjects []models.Subject) error
	// UpdateSubject replaces title, description and study date by ID.
	// Returns false when the subject does not belong to the user.
	UpdateSubject(ctx context.Context, login string, subject models.Subject) (bool, error)
	// DeleteSubject soft-deletes the subject by ID.
	// Returns false when the subject does not belong to the user.
	DeleteSubject(ctx context.Context, login string, id string) (bool, error)
}

// SubjectService implements subject management business logic.
type SubjectService struct {
	repo SubjectRepository
}

// NewSubjectService constructs a SubjectService using the provided repository.
func NewSubjectService(repo SubjectRepository) *SubjectService {
	return &SubjectService{repo: repo}
}

// List returns the user's subjects for the given month and year.
func (s *SubjectService) List(ctx context.Context, login string, month time.Month, year int, withNotes bool) ([]models.Subject, error) {
	return s.repo.GetSubjectsByUser(ctx, login, month, year, withNotes)
}

// Create materializes the requested subject plus one revision subject per
// offset, each sharing title and description with the study date shifted
// forward by that many days. The created subjects are returned in order,
// the primary one first.
func (s *SubjectService) Create(ctx context.Context, login string, req models.CreateSubjectRequest) ([]models.Subject, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	date := time.Now()
	if req.StudyDate != nil {
		date = *req.StudyDate
	}
	offsets := req.AddRevisionsInDays
	if offsets == nil {
		offsets = models.DefaultRevisionOffsets()
	}

	subjects := make([]models.Subject, 0, len(offsets)+1)
	subjects = append(subjects, models.Subject{
		UUID:        uuid.NewString(),
		Title:       title,
		Description: req.Description,
		StudyDate:   date,
	})
	for _, days := range offsets {
		subjects = append(subjects, models.Subject{
			UUID:        uuid.NewString(),
			Title:       title,
			Description: req.Description,
			StudyDate:   date.AddDate(0, 0, days),
		})
	}

	if err := s.repo.InsertSubjects(ctx, login, subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

// Edit replaces the subject's title, description and study date. Returns
// ErrNotFound when the subject does not belong to the user.
func (s *SubjectService) Edit(ctx context.Context, login string, subject models.Subject) error {
	subject.Title = strings.TrimSpace(subject.Title)
	if subject.Title == "" {
		return ErrEmptyTitle
	}

	ok, err := s.repo.UpdateSubject(ctx, login, subject)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Delete removes the subject. Returns ErrNotFound when the subject does not
// belong to the user.
func (s *SubjectService) Delete(ctx context.Context, login, id string) error {
	ok, err := s.repo.DeleteSubject(ctx, login, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
