package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hirewire/api/internal/config"
	"github.com/hirewire/api/internal/database"
	"github.com/hirewire/api/internal/handler"
	"github.com/hirewire/api/internal/middleware"
	"github.com/hirewire/api/internal/repository"
	"github.com/hirewire/api/internal/service"
	"github.com/hirewire/api/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Apply the schema: tables, fields, and unique indexes
	if err := database.Bootstrap(ctx, db); err != nil {
		slog.Error("failed to apply schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: cfg.JWT.PrivateKeyPath,
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	// Initialize event hub for SSE broadcasting
	eventHub := service.NewEventHub()
	defer eventHub.Close()

	// Initialize services
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:   userRepo,
		JWTService: jwtService,
	})
	userService := service.NewUserService(userRepo)
	companyService := service.NewCompanyService(companyRepo)
	jobService := service.NewJobService(service.JobServiceConfig{
		JobRepo:     jobRepo,
		CompanyRepo: companyRepo,
		Events:      eventHub,
	})
	applicationService := service.NewApplicationService(service.ApplicationServiceConfig{
		AppRepo:     applicationRepo,
		JobRepo:     jobRepo,
		CompanyRepo: companyRepo,
		Events:      eventHub,
	})

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	companyHandler := handler.NewCompanyHandler(companyService)
	jobHandler := handler.NewJobHandler(jobService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	eventsHandler := handler.NewEventsHandler(eventHub)
	healthHandler := handler.NewHealthHandler(db)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Auth endpoints (public)
	mux.HandleFunc("POST /v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)

	// Auth endpoints (protected)
	authMiddleware := middleware.Auth(jwtService)
	optionalAuth := middleware.OptionalAuth(jwtService)
	mux.Handle("GET /v1/auth/me", authMiddleware(http.HandlerFunc(authHandler.Me)))
	mux.Handle("DELETE /v1/auth/me", authMiddleware(http.HandlerFunc(authHandler.Deactivate)))

	// User endpoints (public reads)
	mux.Handle("GET /v1/users", optionalAuth(http.HandlerFunc(userHandler.List)))
	mux.Handle("GET /v1/users/{userId}", optionalAuth(http.HandlerFunc(userHandler.Get)))

	// Company endpoints (public reads, protected writes)
	mux.Handle("GET /v1/companies", optionalAuth(http.HandlerFunc(companyHandler.List)))
	mux.Handle("GET /v1/companies/{companyId}", optionalAuth(http.HandlerFunc(companyHandler.Get)))
	mux.Handle("POST /v1/companies", authMiddleware(http.HandlerFunc(companyHandler.Create)))
	mux.Handle("PATCH /v1/companies/{companyId}", authMiddleware(http.HandlerFunc(companyHandler.Update)))
	mux.Handle("DELETE /v1/companies/{companyId}", authMiddleware(http.HandlerFunc(companyHandler.Delete)))
	mux.Handle("GET /v1/company", authMiddleware(http.HandlerFunc(companyHandler.Mine)))
	mux.Handle("GET /v1/company/jobs", authMiddleware(http.HandlerFunc(jobHandler.Mine)))

	// Job endpoints (public reads, protected writes)
	mux.Handle("GET /v1/jobs", optionalAuth(http.HandlerFunc(jobHandler.List)))
	mux.Handle("GET /v1/jobs/{jobId}", optionalAuth(http.HandlerFunc(jobHandler.Get)))
	mux.Handle("POST /v1/jobs", authMiddleware(http.HandlerFunc(jobHandler.Create)))
	mux.Handle("PATCH /v1/jobs/{jobId}", authMiddleware(http.HandlerFunc(jobHandler.Update)))
	mux.Handle("DELETE /v1/jobs/{jobId}", authMiddleware(http.HandlerFunc(jobHandler.Delete)))
	mux.Handle("POST /v1/jobs/{jobId}/publish", authMiddleware(http.HandlerFunc(jobHandler.Publish)))
	mux.Handle("POST /v1/jobs/{jobId}/close", authMiddleware(http.HandlerFunc(jobHandler.Close)))
	mux.Handle("GET /v1/jobs/{jobId}/applications", authMiddleware(http.HandlerFunc(applicationHandler.ListForJob)))

	// Application endpoints (all protected)
	mux.Handle("POST /v1/applications", authMiddleware(http.HandlerFunc(applicationHandler.Create)))
	mux.Handle("GET /v1/applications/{applicationId}", authMiddleware(http.HandlerFunc(applicationHandler.Get)))
	mux.Handle("PATCH /v1/applications/{applicationId}", authMiddleware(http.HandlerFunc(applicationHandler.Update)))
	mux.Handle("DELETE /v1/applications/{applicationId}", authMiddleware(http.HandlerFunc(applicationHandler.Delete)))
	mux.Handle("GET /v1/profile/applications", authMiddleware(http.HandlerFunc(applicationHandler.Mine)))

	// SSE event stream
	mux.Handle("GET /v1/events/stream", authMiddleware(http.HandlerFunc(eventsHandler.Stream)))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
