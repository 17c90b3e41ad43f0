package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/centsible/centsible/internal/config"
	"github.com/centsible/centsible/internal/database"
	"github.com/centsible/centsible/internal/rest"
	"github.com/centsible/centsible/internal/utils"
	"github.com/centsible/centsible/pkg/user"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Application wires configuration, database, router, and server lifecycle.
type Application struct {
	cfg    config.Application
	deps   *Dependencies
	router *mux.Router
	srv    *http.Server
}

// NewApplication constructs the full HTTP application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	// DB + migrations
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, err
	}
	// db will be closed when server shuts down; defer not possible here, leave to process exit.
	if err := database.Migrate(db, cfg.Database); err != nil {
		return nil, err
	}

	r := mux.NewRouter()

	// Build dependencies (services, handlers...)
	deps := BuildDependencies(db, cfg)

	// Middleware chain
	SetupMiddleware(r, deps, cfg)

	// Routes
	RegisterRoutes(r, deps, cfg)

	// Frontend
	if cfg.Frontend.Enabled {
		frontend := rest.NewFrontendHandler("frontend", "index.html")
		r.PathPrefix("/").Handler(frontend)
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, deps: deps, router: r, srv: srv}, nil
}

// Run starts the HTTP server and the recurring materialization loop and
// blocks until shutdown.
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("Starting server on %s", a.srv.Addr)
		if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return a.srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return a.materializationLoop(ctx)
	})

	return g.Wait()
}

// materializationLoop turns due recurring items into transactions once at
// startup and then every 24 hours, for every known user.
func (a *Application) materializationLoop(ctx context.Context) error {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		a.materializeAllUsers(ctx)
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (a *Application) materializeAllUsers(ctx context.Context) {
	users, err := a.deps.UserService.GetAllUsers(ctx)
	if err != nil {
		log.Errorf("recurring materialization: failed to list users: %v", err)
		return
	}

	asOf := utils.Today(a.deps.Clock)
	for _, u := range users {
		userCtx := user.WithUser(ctx, u)
		generated, err := a.deps.RecurringService.MaterializeDue(userCtx, asOf)
		if err != nil {
			log.Errorf("recurring materialization failed for user %d: %v", u.Id, err)
			continue
		}
		if generated > 0 {
			log.Infof("Materialized %d recurring transactions for user %d", generated, u.Id)
		}
	}
}
