// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/nexasuite/platform/internal/auth"
	"github.com/nexasuite/platform/internal/config"
	"github.com/nexasuite/platform/internal/email"
	"github.com/nexasuite/platform/internal/email/mailer"
	"github.com/nexasuite/platform/internal/handler"
	"github.com/nexasuite/platform/internal/middleware"
	"github.com/nexasuite/platform/internal/repository"
	"github.com/nexasuite/platform/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(log)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permRepo := repository.NewPermissionRepository(db)
	orgRoleRepo := repository.NewOrgRoleRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	approvalRepo := repository.NewApprovalRepository(db)
	workflowRepo := repository.NewWorkflowRepository(db)

	// Initialize auth primitives
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize notifications. Without a configured transport notifications
	// are dropped rather than failing requests.
	var notifier service.Notifier = mailer.NoopNotifier{}
	if cfg.Sendgrid.APIKey != "" || cfg.SMTP.Host != "" {
		emailService, err := email.NewService(cfg)
		if err != nil {
			return fmt.Errorf("initializing email service: %w", err)
		}
		notifier = mailer.NewApprovalNotifier(emailService, userRepo, cfg.BaseURL, log)
	}

	// Initialize services
	authzService := service.NewAuthorizationService(userRepo, roleRepo, orgRoleRepo, companyRepo)
	userService := service.NewUserService(userRepo, passwordHasher, authzService)
	roleService := service.NewRoleService(roleRepo, permRepo, orgRoleRepo, authzService)
	companyService := service.NewCompanyService(companyRepo, userRepo, authzService)
	settingsService := service.NewSettingsService(settingsRepo, userRepo, authzService)
	approvalService := service.NewApprovalService(approvalRepo, settingsRepo, userRepo, authzService, notifier)
	workflowService := service.NewWorkflowService(workflowRepo, authzService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService, tokenManager)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)
	companyHandler := handler.NewCompanyHandler(companyService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	approvalHandler := handler.NewApprovalHandler(approvalService)
	workflowHandler := handler.NewWorkflowHandler(workflowService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(chimw.AllowContentType("application/json"))
				r.Post("/login", authHandler.LoginHandler)
			})
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(tokenManager))

			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.ListHandler)
				r.Post("/", userHandler.CreateHandler)
				r.Get("/{id}", userHandler.GetHandler)
				r.Put("/{id}", userHandler.UpdateHandler)
				r.Delete("/{id}", userHandler.DeactivateHandler)
			})

			r.Route("/roles", func(r chi.Router) {
				r.Get("/", roleHandler.ListHandler)
				r.Post("/", roleHandler.CreateHandler)
				r.Put("/{id}", roleHandler.UpdateHandler)
				r.Post("/assign", roleHandler.AssignHandler)
				r.Delete("/{id}/users/{userID}", roleHandler.RemoveHandler)
			})

			r.Route("/org-roles", func(r chi.Router) {
				r.Post("/", roleHandler.CreateOrgRoleHandler)
				r.Post("/assign", roleHandler.AssignOrgRoleHandler)
			})

			r.Route("/companies", func(r chi.Router) {
				r.Get("/", companyHandler.ListHandler)
				r.Post("/", companyHandler.CreateHandler)
				r.Post("/access", companyHandler.GrantAccessHandler)
				r.Delete("/{id}/access/{userID}", companyHandler.RevokeAccessHandler)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/approvals", settingsHandler.GetHandler)
				r.Put("/approvals", settingsHandler.UpdateHandler)
			})

			r.Route("/approvals", func(r chi.Router) {
				r.Post("/", approvalHandler.SubmitHandler)
				r.Get("/pending", approvalHandler.PendingHandler)
				r.Post("/bulk", approvalHandler.BulkDecideHandler)
				r.Get("/{id}", approvalHandler.GetHandler)
				r.Post("/{id}/decide", approvalHandler.DecideHandler)
				r.Get("/{id}/history", approvalHandler.HistoryHandler)
			})

			r.Route("/workflows", func(r chi.Router) {
				r.Get("/templates", workflowHandler.ListTemplatesHandler)
				r.Post("/templates", workflowHandler.CreateTemplateHandler)
				r.Post("/instances", workflowHandler.StartInstanceHandler)
				r.Get("/instances/{id}", workflowHandler.GetInstanceHandler)
				r.Post("/instances/{id}/decide", workflowHandler.DecideStepHandler)
				r.Post("/instances/{id}/cancel", workflowHandler.CancelInstanceHandler)
				r.Post("/instances/{id}/pause", workflowHandler.PauseInstanceHandler)
				r.Post("/instances/{id}/resume", workflowHandler.ResumeInstanceHandler)
			})
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		log.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				log.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					log.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.Write([]byte(`{"error":"error encountered"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
