// Package service provides business logic for authentication, subjects and
// notes, delegating persistence to repository interfaces.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/atinyakov/StudyPlanner/internal/models"
)

// UserRepository defines the persistence operations
// required by the authentication service.
type UserRepository interface {
	// GetUser fetches a user by login. Returns (nil, nil) when no such
	// user exists.
	GetUser(ctx context.Context, login string) (*models.User, error)
	// CreateUser stores a new user record.
	CreateUser(ctx context.Context, user *models.User) error
}

// claims carries the authenticated login inside the session token.
type claims struct {
	jwt.RegisteredClaims
	Login string `json:"login"`
}

// AuthService implements login-or-register semantics and session token
// issue/verification.
type AuthService struct {
	repo   UserRepository
	secret []byte
	ttl    time.Duration
}

// NewAuthService constructs an AuthService. secret signs session tokens and
// ttl bounds their lifetime.
func NewAuthService(repo UserRepository, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{repo: repo, secret: secret, ttl: ttl}
}

// Login authenticates the user and returns a signed session token. An
// unknown login is registered on the spot; a known login must present the
// stored password, otherwise ErrUserConflict is returned so the caller can
// distinguish the conflict from a generic failure.
func (s *AuthService) Login(ctx context.Context, login, password string) (string, error) {
	user, err := s.repo.GetUser(ctx, login)
	if err != nil {
		return "", fmt.Errorf("get user: %w", err)
	}

	if user == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return "", fmt.Errorf("hash password: %w", err)
		}
		user = &models.User{Login: login, PasswordHash: hash}
		if err := s.repo.CreateUser(ctx, user); err != nil {
			return "", fmt.Errorf("create user: %w", err)
		}
	} else if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return "", ErrUserConflict
	}

	return s.issueToken(login)
}

// VerifyToken validates a session token and returns the login it carries.
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	cl := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, cl, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}
	return cl.Login, nil
}

func (s *AuthService) issueToken(login string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
		Login: login,
	})
	return token.SignedString(s.secret)
}
