package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pgic/pgic-backend/internal/domain"
	"github.com/pgic/pgic-backend/internal/service/catalog"
)

// catalogService defines the catalog operations exposed over REST.
type catalogService interface {
	CreateIndicator(ctx context.Context, input catalog.CreateIndicatorInput) (*domain.Indicator, error)
	UpdateIndicator(ctx context.Context, input catalog.UpdateIndicatorInput) (*domain.Indicator, error)
	GetIndicator(ctx context.Context, id int64) (*domain.Indicator, error)
	ListIndicators(ctx context.Context, filter domain.IndicatorFilter) ([]domain.Indicator, error)
	CreateCategory(ctx context.Context, input catalog.CreateTermInput) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateSector(ctx context.Context, input catalog.CreateTermInput) (*domain.Sector, error)
	ListSectors(ctx context.Context) ([]domain.Sector, error)
	CreateSeries(ctx context.Context, input catalog.CreateSeriesInput) (*domain.DataSeries, error)
	UpdateSeries(ctx context.Context, input catalog.UpdateSeriesInput) (*domain.DataSeries, error)
	GetSeries(ctx context.Context, id int64) (*domain.DataSeries, error)
	ListSeries(ctx context.Context, filter domain.SeriesFilter) ([]domain.DataSeries, error)
}

// CatalogHandler serves indicators, taxonomy terms and data series.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type createIndicatorRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Frequency   string  `json:"frequency"`
	Unit        string  `json:"unit"`
	BaseYear    *int32  `json:"base_year"`
	Source      string  `json:"source"`
	Methodology *string `json:"methodology"`
	CategoryID  *int64  `json:"category_id"`
	SectorID    *int64  `json:"sector_id"`
}

type updateIndicatorRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Unit        *string `json:"unit"`
	BaseYear    *int32  `json:"base_year"`
	Source      *string `json:"source"`
	Methodology *string `json:"methodology"`
	CategoryID  *int64  `json:"category_id"`
	SectorID    *int64  `json:"sector_id"`
}

type termRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type createSeriesRequest struct {
	IndicatorID int64  `json:"indicator_id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Decimals    *int32 `json:"decimals"`
	IsActive    *bool  `json:"is_active"`
}

type updateSeriesRequest struct {
	Name     *string `json:"name"`
	Decimals *int32  `json:"decimals"`
	IsActive *bool   `json:"is_active"`
}

// ListIndicators handles GET /api/indicators?q&frequency&sector_id&category_id&published_only&limit&offset.
func (h *CatalogHandler) ListIndicators(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	filter := domain.IndicatorFilter{
		Query:         q.stringValue("q"),
		SectorID:      q.int64Value("sector_id"),
		CategoryID:    q.int64Value("category_id"),
		PublishedOnly: q.boolValue("published_only"),
		Limit:         q.intValue("limit", 0),
		Offset:        q.intValue("offset", 0),
	}
	if v := q.stringValue("frequency"); v != "" {
		f, ok := domain.ParseFrequency(v)
		if !ok {
			q.fail("frequency", "unknown frequency")
		}
		filter.Frequency = &f
	}
	if err := q.err(); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	items, err := h.svc.ListIndicators(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// GetIndicator handles GET /api/indicators/{id}.
func (h *CatalogHandler) GetIndicator(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid indicator id")
		return
	}

	ind, err := h.svc.GetIndicator(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, ind)
}

// CreateIndicator handles POST /api/indicators.
func (h *CatalogHandler) CreateIndicator(w http.ResponseWriter, r *http.Request) {
	var req createIndicatorRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ind, err := h.svc.CreateIndicator(r.Context(), catalog.CreateIndicatorInput{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Frequency:   req.Frequency,
		Unit:        req.Unit,
		BaseYear:    req.BaseYear,
		Source:      req.Source,
		Methodology: req.Methodology,
		CategoryID:  req.CategoryID,
		SectorID:    req.SectorID,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, ind)
}

// UpdateIndicator handles PATCH /api/indicators/{id}.
func (h *CatalogHandler) UpdateIndicator(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid indicator id")
		return
	}
	var req updateIndicatorRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ind, err := h.svc.UpdateIndicator(r.Context(), catalog.UpdateIndicatorInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Unit:        req.Unit,
		BaseYear:    req.BaseYear,
		Source:      req.Source,
		Methodology: req.Methodology,
		CategoryID:  req.CategoryID,
		SectorID:    req.SectorID,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, ind)
}

// ListCategories handles GET /api/categories.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateCategory handles POST /api/categories.
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req termRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := h.svc.CreateCategory(r.Context(), catalog.CreateTermInput{Code: req.Code, Name: req.Name})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// ListSectors handles GET /api/sectors.
func (h *CatalogHandler) ListSectors(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListSectors(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateSector handles POST /api/sectors.
func (h *CatalogHandler) CreateSector(w http.ResponseWriter, r *http.Request) {
	var req termRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s, err := h.svc.CreateSector(r.Context(), catalog.CreateTermInput{Code: req.Code, Name: req.Name})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

// ListSeries handles GET /api/series?indicator_id&active_only&limit&offset.
func (h *CatalogHandler) ListSeries(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	filter := domain.SeriesFilter{
		IndicatorID: q.int64Value("indicator_id"),
		ActiveOnly:  q.boolValue("active_only"),
		Limit:       q.intValue("limit", 0),
		Offset:      q.intValue("offset", 0),
	}
	if err := q.err(); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	items, err := h.svc.ListSeries(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// GetSeries handles GET /api/series/{id}.
func (h *CatalogHandler) GetSeries(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid series id")
		return
	}
	s, err := h.svc.GetSeries(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// CreateSeries handles POST /api/series.
func (h *CatalogHandler) CreateSeries(w http.ResponseWriter, r *http.Request) {
	var req createSeriesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s, err := h.svc.CreateSeries(r.Context(), catalog.CreateSeriesInput{
		IndicatorID: req.IndicatorID,
		Code:        req.Code,
		Name:        req.Name,
		Decimals:    req.Decimals,
		IsActive:    req.IsActive,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

// UpdateSeries handles PATCH /api/series/{id}.
func (h *CatalogHandler) UpdateSeries(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid series id")
		return
	}
	var req updateSeriesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s, err := h.svc.UpdateSeries(r.Context(), catalog.UpdateSeriesInput{
		ID:       id,
		Name:     req.Name,
		Decimals: req.Decimals,
		IsActive: req.IsActive,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}
