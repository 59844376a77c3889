// Package http exposes the dataset API over chi: domain data, metadata,
// CSV export and refresh.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "campusboard/internal/errors"
	"campusboard/internal/exporter"
	"campusboard/internal/services"
	"campusboard/pkg/contracts/domain"
)

// DatasetReader is the slice of the dataset service the handler needs.
type DatasetReader interface {
	Dataset(ctx context.Context, d domain.Domain) (*services.Dataset, error)
	Metadata(ctx context.Context, d domain.Domain) (domain.DatasetMeta, error)
	Refresh(ctx context.Context, d domain.Domain) (*services.Dataset, error)
}

// DatasetHandler serves the /api/datasets routes.
type DatasetHandler struct {
	service DatasetReader
	logger  *slog.Logger
}

// NewDatasetHandler creates a DatasetHandler.
func NewDatasetHandler(service DatasetReader, logger *slog.Logger) *DatasetHandler {
	return &DatasetHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "dataset")),
	}
}

// Routes mounts the dataset endpoints.
func (h *DatasetHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Route("/{domain}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Get("/metadata", h.GetMetadata)
		r.Get("/export", h.Export)
		r.Post("/refresh", h.PostRefresh)
	})
	return r
}

// List returns the known domains and their year ranges.
func (h *DatasetHandler) List(w http.ResponseWriter, r *http.Request) {
	type entry struct {
		Domain domain.Domain    `json:"domain"`
		Years  domain.YearRange `json:"years"`
	}
	out := make([]entry, 0, len(domain.AllDomains()))
	for _, d := range domain.AllDomains() {
		out = append(out, entry{Domain: d, Years: d.Years()})
	}
	render.JSON(w, r, map[string]any{"domains": out})
}

// Get returns the records and metadata for one domain.
func (h *DatasetHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, ok := h.domain(w, r)
	if !ok {
		return
	}
	ds, err := h.service.Dataset(r.Context(), d)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]any{
		"meta":    ds.Meta,
		"records": ds.Records,
	})
}

// GetMetadata returns only the metadata for one domain.
func (h *DatasetHandler) GetMetadata(w http.ResponseWriter, r *http.Request) {
	d, ok := h.domain(w, r)
	if !ok {
		return
	}
	meta, err := h.service.Metadata(r.Context(), d)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, meta)
}

// Export streams the domain table as a CSV download.
func (h *DatasetHandler) Export(w http.ResponseWriter, r *http.Request) {
	d, ok := h.domain(w, r)
	if !ok {
		return
	}
	ds, err := h.service.Dataset(r.Context(), d)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exporter.FileName(d)+`"`)
	if err := exporter.WriteTable(w, ds.Table, exporter.WriteOptions{BOMPrefix: true}); err != nil {
		// Headers are gone by now; just log.
		h.logger.ErrorContext(r.Context(), "csv export failed",
			slog.String("domain", d.String()),
			slog.String("error", err.Error()))
	}
}

// PostRefresh re-resolves the dataset and broadcasts the new metadata.
func (h *DatasetHandler) PostRefresh(w http.ResponseWriter, r *http.Request) {
	d, ok := h.domain(w, r)
	if !ok {
		return
	}
	ds, err := h.service.Refresh(r.Context(), d)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, ds.Meta)
}

func (h *DatasetHandler) domain(w http.ResponseWriter, r *http.Request) (domain.Domain, bool) {
	d, err := domain.ParseDomain(chi.URLParam(r, "domain"))
	if err != nil {
		render.Render(w, r, apierrors.NewBadRequest(err.Error()))
		return "", false
	}
	return d, true
}

func (h *DatasetHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := apierrors.FromDatasetError(err)
	if apiErr.Status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("error", err.Error()))
	}
	render.Render(w, r, apiErr)
}
