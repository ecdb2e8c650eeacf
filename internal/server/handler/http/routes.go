// Package http provides HTTP routing and middleware configuration
// for the study-planning service.
package http

import (
	"net/http"

	"github.com/atinyakov/StudyPlanner/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the
// study-planning API. It applies JSON content-type enforcement, request
// logging and bearer-token authentication, and mounts the login, subject
// and note endpoints.
//
// Routes:
//
//	POST   /user          → authHandler.Login (open)
//	GET    /subject       → subjectHandler.List
//	POST   /subject       → subjectHandler.Create
//	PUT    /subject/{id}  → subjectHandler.Edit
//	DELETE /subject/{id}  → subjectHandler.Delete
//	POST   /note          → noteHandler.Add
//
// Middleware chain (applied in order):
//  1. AllowContentType("application/json") — rejects non-JSON requests
//  2. WithRequestLogging(logger)           — logs incoming requests
//  3. BearerAuth(auth)                     — enforces token auth, /user excluded
func NewRouter(
	authHandler *AuthHandler,
	subjectHandler *SubjectHandler,
	noteHandler *NoteHandler,
	auth middleware.Authenticator,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))
	// Enforce bearer-token authentication
	r.Use(middleware.BearerAuth(auth))

	// Public endpoint
	r.Post("/user", authHandler.Login)

	// Protected endpoints: require a valid session token
	r.Route("/subject", func(r chi.Router) {
		r.Get("/", subjectHandler.List)
		r.Post("/", subjectHandler.Create)
		r.Put("/{id}", subjectHandler.Edit)
		r.Delete("/{id}", subjectHandler.Delete)
	})
	r.Post("/note", noteHandler.Add)

	return r
}
