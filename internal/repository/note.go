package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atinyakov/StudyPlanner/internal/models"
)

// PostgresNoteRepository implements note persistence against PostgreSQL.
type PostgresNoteRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresNoteRepository creates a new PostgresNoteRepository using the
// provided *sql.DB.
func NewPostgresNoteRepository(db *sql.DB) *PostgresNoteRepository {
	return &PostgresNoteRepository{DB: db}
}

// SubjectExists reports whether a live subject with the given ID belongs to
// the user.
func (r *PostgresNoteRepository) SubjectExists(ctx context.Context, login, subjectID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM subjects WHERE id = $1 AND user_login = $2 AND deleted = false)`,
		subjectID, login,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("SubjectExists: %w", err)
	}
	return exists, nil
}

// InsertNote stores a new note row.
func (r *PostgresNoteRepository) InsertNote(ctx context.Context, note models.Note) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO notes (id, subject_id, content, created_at)
		VALUES ($1, $2, $3, $4)
	`, note.UUID, note.SubjectUUID, note.Content, note.CreatedAt)
	if err != nil {
		return fmt.Errorf("InsertNote: %w", err)
	}
	return nil
}
