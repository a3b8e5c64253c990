package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pgic/pgic-backend/internal/config"
	"github.com/pgic/pgic-backend/internal/transport/middleware"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Health      *HealthHandler
	Catalog     *CatalogHandler
	Workflow    *WorkflowHandler
	Observation *ObservationHandler
	Import      *ImportHandler
	Audit       *AuditHandler
}

// RouterConfig holds the cross-cutting settings of the router.
type RouterConfig struct {
	CORS config.CORSConfig
	// UploadLimit guards POST /api/imports. Nil disables limiting.
	UploadLimit middleware.Middleware
}

// NewRouter builds the HTTP API.
func NewRouter(h Handlers, cfg RouterConfig, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger),
	))

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Actor())

		api.Get("/indicators", h.Catalog.ListIndicators)
		api.Post("/indicators", h.Catalog.CreateIndicator)
		api.Get("/indicators/{id}", h.Catalog.GetIndicator)
		api.Patch("/indicators/{id}", h.Catalog.UpdateIndicator)
		api.Get("/indicators/{id}/transitions", h.Workflow.Allowed)
		api.Post("/indicators/{id}/transitions", h.Workflow.Transition)

		api.Get("/categories", h.Catalog.ListCategories)
		api.Post("/categories", h.Catalog.CreateCategory)
		api.Get("/sectors", h.Catalog.ListSectors)
		api.Post("/sectors", h.Catalog.CreateSector)

		api.Get("/series", h.Catalog.ListSeries)
		api.Post("/series", h.Catalog.CreateSeries)
		api.Get("/series/{id}", h.Catalog.GetSeries)
		api.Patch("/series/{id}", h.Catalog.UpdateSeries)
		api.Post("/series/{id}/observations", h.Observation.Append)
		api.Get("/series/{id}/current", h.Observation.Current)
		api.Get("/series/{id}/revisions", h.Observation.Revisions)
		api.Get("/series/{id}/data", h.Observation.SeriesData)
		api.Get("/data", h.Observation.IndicatorData)

		api.With(middleware.Chain(cfg.UploadLimit)).Post("/imports", h.Import.Upload)
		api.Get("/imports", h.Import.ListImports)
		api.Get("/imports/{id}", h.Import.GetImport)
		api.Post("/imports/{id}/validate", h.Import.Validate)
		api.Post("/imports/{id}/process", h.Import.Process)

		api.Get("/audit", h.Audit.History)
		api.Get("/audit/correlations/{id}", h.Audit.Correlated)
	})

	return r
}
