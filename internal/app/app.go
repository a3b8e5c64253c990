package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pgic/pgic-backend/internal/adapter/postgres"
	auditrepo "github.com/pgic/pgic-backend/internal/adapter/postgres/audit"
	"github.com/pgic/pgic-backend/internal/adapter/postgres/imports"
	indicatorrepo "github.com/pgic/pgic-backend/internal/adapter/postgres/indicator"
	observationrepo "github.com/pgic/pgic-backend/internal/adapter/postgres/observation"
	seriesrepo "github.com/pgic/pgic-backend/internal/adapter/postgres/series"
	"github.com/pgic/pgic-backend/internal/adapter/postgres/taxonomy"
	"github.com/pgic/pgic-backend/internal/config"
	"github.com/pgic/pgic-backend/internal/service/audit"
	"github.com/pgic/pgic-backend/internal/service/catalog"
	"github.com/pgic/pgic-backend/internal/service/importer"
	"github.com/pgic/pgic-backend/internal/service/observation"
	"github.com/pgic/pgic-backend/internal/service/workflow"
	"github.com/pgic/pgic-backend/internal/transport/middleware"
	"github.com/pgic/pgic-backend/internal/transport/rest"
)

// database is what the application needs from a connection pool.
// *pgxpool.Pool satisfies it.
type database interface {
	postgres.DB
	Ping(ctx context.Context) error
}

// Services holds the wired domain services.
type Services struct {
	Audit        *audit.Service
	Catalog      *catalog.Service
	Workflow     *workflow.Service
	Observations *observation.Service
	Imports      *importer.Service
}

// NewServices builds repositories on db and wires every service.
func NewServices(db database, cfg *config.Config, logger *slog.Logger) *Services {
	tx := postgres.NewTxManager(db)

	indicators := indicatorrepo.New(db)
	terms := taxonomy.New(db)
	series := seriesrepo.New(db)
	observations := observationrepo.New(db)
	importRepo := imports.New(db)

	auditSvc := audit.NewService(logger, auditrepo.New(db))
	observationSvc := observation.NewService(logger, series, indicators, observations, auditSvc, tx, cfg.Observation.AppendRetry())

	return &Services{
		Audit:        auditSvc,
		Catalog:      catalog.NewService(logger, indicators, terms, series, auditSvc, tx),
		Workflow:     workflow.NewService(logger, indicators, observations, auditSvc, tx),
		Observations: observationSvc,
		Imports: importer.NewService(logger, importRepo, indicators, series, observationSvc, auditSvc, tx, importer.Config{
			MaxFileSize: cfg.Import.MaxFileSize,
			MaxRows:     cfg.Import.MaxRows,
		}),
	}
}

// NewHandler builds the HTTP API over svcs. The returned stop function
// releases the upload rate limiter.
func NewHandler(db database, svcs *Services, cfg *config.Config, logger *slog.Logger) (http.Handler, func()) {
	limiter := middleware.NewRateLimiter(time.Minute)

	h := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(BuildVersion(),
			rest.Check{Name: "database", Probe: db.Ping},
			rest.Check{Name: "schema", Probe: func(ctx context.Context) error { return postgres.CheckSchema(ctx, db) }},
		),
		Catalog:     rest.NewCatalogHandler(svcs.Catalog, logger),
		Workflow:    rest.NewWorkflowHandler(svcs.Workflow, svcs.Catalog, logger),
		Observation: rest.NewObservationHandler(svcs.Observations, logger),
		Import:      rest.NewImportHandler(svcs.Imports, cfg.Import.MaxFileSize, logger),
		Audit:       rest.NewAuditHandler(svcs.Audit, logger),
	}, rest.RouterConfig{
		CORS:        cfg.CORS,
		UploadLimit: limiter.Limit(cfg.Import.UploadsPerMinute),
	}, logger)

	return h, limiter.Stop
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// within the configured timeout.
func Serve(ctx context.Context, db database, cfg *config.Config, logger *slog.Logger) error {
	svcs := NewServices(db, cfg, logger)
	handler, stop := NewHandler(db, svcs, cfg, logger)
	defer stop()

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Run sets up logging, connects to PostgreSQL and serves the API until
// ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	return Serve(ctx, pool, cfg, logger)
}
