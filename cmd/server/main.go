// Package main initializes and starts the interior studio backend,
// setting up configuration, logging, the database connection,
// repositories, services, handlers, and routes.
package main

import (
	"cmp"
	"context"
	"fmt"
	"time"

	nethttp "net/http"

	"github.com/interiorvision/interior/internal/config"
	"github.com/interiorvision/interior/internal/db"
	"github.com/interiorvision/interior/internal/logger"
	"github.com/interiorvision/interior/internal/repository"
	"github.com/interiorvision/interior/internal/server/handler/http"
	"github.com/interiorvision/interior/internal/service"
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

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Initialize PostgreSQL connection.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Purge archived contact submissions in the background.
	db.StartArchivedContactPurge(context.Background(), postgresDB,
		time.Hour,       // interval
		30*24*time.Hour, // retention: 30 days
		zapLogger,
	)

	// Initialize repositories.
	authRepo := repository.NewPostgresAuthRepository(postgresDB)
	projectRepo := repository.NewPostgresProjectRepository(postgresDB)
	contactRepo := repository.NewPostgresContactRepository(postgresDB)

	// Initialize business-logic services.
	authService := service.NewAuthService(authRepo)
	projectService := service.NewProjectService(projectRepo)
	contactService := service.NewContactService(contactRepo)

	// Create HTTP handlers.
	authHandler := &http.AuthHandler{AuthService: authService}
	projectHandler := &http.ProjectHandler{ProjectService: projectService}
	contactHandler := &http.ContactHandler{ContactService: contactService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, projectHandler, contactHandler, authService, zapLogger)

	server := &nethttp.Server{
		Addr:    options.Address,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Address))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
