package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/atinyakov/StudyPlanner/internal/models"
)

func setupUserMock(t *testing.T) (*PostgresUserRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewPostgresUserRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

func TestGetUser_Found(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	hash := []byte("hashed")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT login, password_hash FROM users WHERE login = $1`)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"login", "password_hash"}).AddRow("alice", hash))

	user, err := repo.GetUser(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if user == nil || user.Login != "alice" || string(user.PasswordHash) != "hashed" {
		t.Errorf("unexpected user: %+v", user)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT login, password_hash FROM users WHERE login = $1`)).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"login", "password_hash"}))

	user, err := repo.GetUser(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if user != nil {
		t.Errorf("expected nil user, got %+v", user)
	}
}

func TestGetUser_QueryError(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT login, password_hash FROM users WHERE login = $1`)).
		WithArgs("alice").
		WillReturnError(errors.New("db down"))

	if _, err := repo.GetUser(context.Background(), "alice"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestCreateUser(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	hash := []byte("hashed")
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (login, password_hash) VALUES ($1, $2)`)).
		WithArgs("alice", hash).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateUser(context.Background(), &models.User{Login: "alice", PasswordHash: hash})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
