package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"gorm.io/gorm"

	"admind/internal/config"
	"admind/internal/database"
	"admind/internal/infrastructure"
	customMiddleware "admind/internal/middleware"
	"admind/internal/services"
	handlers "admind/internal/transport/http"
)

// Application represents the main application container
type Application struct {
	Config   *config.Config
	DBConfig database.Config
	Logger   *slog.Logger
	Router   *chi.Mux
	Server   *http.Server
	DB       *gorm.DB

	Users *services.UserService
	Menus *services.MenuService

	startup *Sequencer
}

// New creates a new application instance. It loads the environment exactly
// once, resolves the persistence configuration, registers the database and
// wires the router; the startup sequence itself runs later in Start.
func New() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := infrastructure.InitializeLogger(cfg.Logging)
	logger.Info("application starting",
		slog.String("title", cfg.App.Title),
		slog.String("version", cfg.App.Version))

	dbConfig := database.Resolve(logger, cfg.Database.Type, cfg.Database.MySQL, cfg.App.BaseDir)
	db, err := database.Register(dbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to register database: %w", err)
	}

	app := &Application{
		Config:   cfg,
		DBConfig: dbConfig,
		Logger:   logger,
		DB:       db,
		Users:    services.NewUserService(db, logger),
		Menus:    services.NewMenuService(db, logger),
	}

	app.startup = NewSequencer(logger,
		StartupTask{Name: "ensure superuser", Run: app.Users.EnsureSuperuser},
		StartupTask{Name: "ensure baseline menus", Run: app.Menus.EnsureBaselineMenus},
	)

	app.setupRouter()
	app.createServer()

	return app, nil
}

// setupRouter configures the HTTP router with all routes
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.RealIP)
	r.Use(customMiddleware.StructuredLogger(a.Logger))
	r.Use(customMiddleware.Recoverer(a.Logger))

	a.setupAPIRoutes(r)

	// Static gateway last: it owns the not-found policy and, when enabled,
	// the catch-all frontend route.
	handlers.ConfigureStatic(r, a.Logger, a.Config.Static.ServeLocal(), a.Config.Static.Dir)

	a.Router = r
}

// setupAPIRoutes mounts the business routes under the reserved API prefix.
func (a *Application) setupAPIRoutes(r chi.Router) {
	r.Route(handlers.APIPrefix, func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.NotFound(handlers.NotFoundHandler())
		r.MethodNotAllowed(handlers.MethodNotAllowedHandler())

		healthHandler := handlers.NewHealthHandler(a.Config.App.Version, a.Logger)
		r.Get("/health", healthHandler.HealthCheck)
		r.Get("/version", healthHandler.Version)

		r.Mount("/users", handlers.NewUserHandler(a.Users, a.Logger).Routes())
		r.Mount("/menus", handlers.NewMenuHandler(a.Menus, a.Logger).Routes())
	})
}

// createServer creates the HTTP server
func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Start runs the startup sequence and then starts serving. A startup task
// failure is fatal: the server never begins accepting requests.
func (a *Application) Start(ctx context.Context, cancel context.CancelFunc) error {
	if err := a.startup.Run(ctx); err != nil {
		return fmt.Errorf("startup sequence failed: %w", err)
	}

	a.Logger.InfoContext(ctx, "application started",
		slog.Int("port", a.Config.Server.Port),
		slog.String("database", string(a.DBConfig.Backend)))

	go func() {
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.Logger.ErrorContext(ctx, "server error", slog.String("error", err.Error()))
			cancel()
		}
	}()

	return nil
}

// Stop gracefully stops the application
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "shutting down application")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	if sqlDB, err := a.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.Logger.ErrorContext(ctx, "error closing database", slog.String("error", err.Error()))
		}
	}

	a.Logger.InfoContext(ctx, "application shutdown complete")
	return nil
}

// Run runs the application until interrupted
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if err := a.Start(ctx, cancel); err != nil {
		return err
	}

	select {
	case <-sigChan:
		a.Logger.InfoContext(ctx, "received interrupt signal")
	case <-ctx.Done():
	}

	return a.Stop(context.Background())
}
