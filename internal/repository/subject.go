package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/atinyakov/StudyPlanner/internal/models"
)

// PostgresSubjectRepository implements subject persistence against PostgreSQL.
// Deletion is soft: rows are flagged and later purged by the cleaner.
type PostgresSubjectRepository struct {
	// DB is the database handle for executing queries and transactions.
	DB *sql.DB
}

// NewPostgresSubjectRepository creates a new PostgresSubjectRepository using
// the provided *sql.DB.
func NewPostgresSubjectRepository(db *sql.DB) *PostgresSubjectRepository {
	return &PostgresSubjectRepository{DB: db}
}

// GetSubjectsByUser fetches the user's subjects ordered by study date.
// A zero month or year disables the corresponding filter. When withNotes is
// set, each subject's notes are loaded oldest first.
func (r *PostgresSubjectRepository) GetSubjectsByUser(ctx context.Context, login string, month time.Month, year int, withNotes bool) ([]models.Subject, error) {
	query := `SELECT id, title, description, study_date FROM subjects WHERE user_login = $1 AND deleted = false`
	args := []any{login}
	if month != 0 {
		args = append(args, int(month))
		query += fmt.Sprintf(" AND EXTRACT(MONTH FROM study_date) = $%d", len(args))
	}
	if year != 0 {
		args = append(args, year)
		query += fmt.Sprintf(" AND EXTRACT(YEAR FROM study_date) = $%d", len(args))
	}
	query += ` ORDER BY study_date, id`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("GetSubjectsByUser: %w", err)
	}
	defer rows.Close()

	var subjects []models.Subject
	for rows.Next() {
		var s models.Subject
		if err := rows.Scan(&s.UUID, &s.Title, &s.Description, &s.StudyDate); err != nil {
			return nil, fmt.Errorf("scan subject: %w", err)
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetSubjectsByUser rows: %w", err)
	}

	if withNotes {
		for i := range subjects {
			notes, err := r.notesForSubject(ctx, subjects[i].UUID)
			if err != nil {
				return nil, err
			}
			subjects[i].Notes = notes
		}
	}
	return subjects, nil
}

// InsertSubjects inserts the given subjects for the user within a single
// transaction, so a revision fan-out is either fully stored or not at all.
func (r *PostgresSubjectRepository) InsertSubjects(ctx context.Context, login string, subjects []models.Subject) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, s := range subjects {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO subjects (id, user_login, title, description, study_date, deleted)
			VALUES ($1, $2, $3, $4, $5, false)
		`, s.UUID, login, s.Title, s.Description, s.StudyDate)
		if err != nil {
			return fmt.Errorf("insert subject: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// UpdateSubject replaces the subject's title, description and study date.
// Returns false when no live row matched the ID and owner.
func (r *PostgresSubjectRepository) UpdateSubject(ctx context.Context, login string, subject models.Subject) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE subjects SET title = $1, description = $2, study_date = $3
		WHERE id = $4 AND user_login = $5 AND deleted = false
	`, subject.Title, subject.Description, subject.StudyDate, subject.UUID, login)
	if err != nil {
		return false, fmt.Errorf("UpdateSubject: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("UpdateSubject rows affected: %w", err)
	}
	return rows > 0, nil
}

// DeleteSubject soft-deletes the subject, recording when so the cleaner can
// purge it after the retention window. Returns false when no live row
// matched the ID and owner.
func (r *PostgresSubjectRepository) DeleteSubject(ctx context.Context, login string, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE subjects SET deleted = true, deleted_at = now()
		WHERE id = $1 AND user_login = $2 AND deleted = false
	`, id, login)
	if err != nil {
		return false, fmt.Errorf("DeleteSubject: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("DeleteSubject rows affected: %w", err)
	}
	return rows > 0, nil
}

func (r *PostgresSubjectRepository) notesForSubject(ctx context.Context, subjectID string) ([]models.Note, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, subject_id, content, created_at FROM notes
		WHERE subject_id = $1 ORDER BY created_at, id
	`, subjectID)
	if err != nil {
		return nil, fmt.Errorf("notesForSubject: %w", err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.UUID, &n.SubjectUUID, &n.Content, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("notesForSubject rows: %w", err)
	}
	return notes, nil
}
