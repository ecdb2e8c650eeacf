// Package main initializes and starts the study-planning HTTP server,
// setting up configuration, logging, database connections, repositories,
// services and handlers.
package main

import (
	"cmp"
	"context"
	"fmt"
	"time"

	nethttp "net/http"

	"github.com/atinyakov/StudyPlanner/internal/config"
	"github.com/atinyakov/StudyPlanner/internal/db"
	"github.com/atinyakov/StudyPlanner/internal/logger"
	"github.com/atinyakov/StudyPlanner/internal/repository"
	"github.com/atinyakov/StudyPlanner/internal/server/handler/http"
	"github.com/atinyakov/StudyPlanner/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()
	addr := options.Address

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Initialize PostgreSQL connection.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Purge soft-deleted subjects in the background.
	db.StartDeletedSubjectCleaner(context.Background(), postgresDB,
		time.Hour,       // interval
		30*24*time.Hour, // retention: 30 days
		zapLogger,
	)

	// Initialize repositories for users, subjects and notes.
	userRepo := repository.NewPostgresUserRepository(postgresDB)
	subjectRepo := repository.NewPostgresSubjectRepository(postgresDB)
	noteRepo := repository.NewPostgresNoteRepository(postgresDB)

	// Initialize business-logic services.
	authService := service.NewAuthService(userRepo, []byte(options.JWTSecret), time.Duration(options.TokenTTLHours)*time.Hour)
	subjectService := service.NewSubjectService(subjectRepo)
	noteService := service.NewNoteService(noteRepo)

	// Create HTTP handlers for the login, subject and note endpoints.
	authHandler := &http.AuthHandler{AuthService: authService}
	subjectHandler := &http.SubjectHandler{SubjectService: subjectService}
	noteHandler := &http.NoteHandler{NoteService: noteService}

	// Build the router with middleware and routes. The auth service doubles
	// as the token verifier for the bearer middleware.
	router := http.NewRouter(authHandler, subjectHandler, noteHandler, authService, zapLogger)

	server := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
