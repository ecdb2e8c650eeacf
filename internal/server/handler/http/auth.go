// Package http provides HTTP handlers for the study-planning API:
// user login, subject management and note creation.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/atinyakov/StudyPlanner/internal/service"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Login authenticates or registers the user and returns a session token.
	// Returns service.ErrUserConflict when the login exists with a
	// different password.
	Login(ctx context.Context, login, password string) (string, error)
}

// AuthHandler handles HTTP requests for user login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// LoginRequest represents the JSON payload for login.
type LoginRequest struct {
	// Username is the login name; unknown names are registered on the fly.
	Username string `json:"username"`
	// Password is the user's password in plain text over the transport.
	Password string `json:"password"`
}

// Login handles POST /user requests.
// It expects a JSON body with non-empty "username" and "password" fields
// and responds 201 with a session token. A known username presented with a
// different password yields 409 and the "UserConflict" error code so the
// client can show a specific message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrUserConflict) {
		writeError(w, http.StatusConflict, "UserConflict")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// writeError responds with the API's JSON error shape: {"error": "..."}.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
