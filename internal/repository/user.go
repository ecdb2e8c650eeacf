// Package repository provides persistence implementations for the
// authentication, subject and note services using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atinyakov/StudyPlanner/internal/models"
)

// PostgresUserRepository implements user persistence against PostgreSQL.
type PostgresUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository with the
// given database connection.
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// GetUser fetches a user by login. Returns (nil, nil) when no such user
// exists; errors are returned only for query failures.
func (r *PostgresUserRepository) GetUser(ctx context.Context, login string) (*models.User, error) {
	var user models.User
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT login, password_hash FROM users WHERE login = $1`,
		login,
	).Scan(&user.Login, &user.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetUser: %w", err)
	}
	return &user, nil
}

// CreateUser stores a new user record with its password hash.
func (r *PostgresUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO users (login, password_hash) VALUES ($1, $2)`,
		user.Login, user.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("CreateUser: %w", err)
	}
	return nil
}
