package http

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"campusboard/internal/dataset"
	"campusboard/pkg/contracts/domain"
)

// HealthHandler serves liveness probes with a view of the data directory.
type HealthHandler struct {
	version string
	dataDir string
	started time.Time
}

// NewHealthHandler creates a HealthHandler reporting the given build
// version and watching the data directory.
func NewHealthHandler(version, dataDir string) *HealthHandler {
	return &HealthHandler{version: version, dataDir: dataDir, started: time.Now()}
}

// Routes mounts the health endpoints.
func (h *HealthHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Get)
	return r
}

// Get reports service health, uptime and which domain workbooks are
// cached on disk.
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	_, err := os.Stat(h.dataDir)
	dirExists := err == nil

	cached := make(map[string]bool, len(domain.AllDomains()))
	for _, d := range domain.AllDomains() {
		_, err := os.Stat(filepath.Join(h.dataDir, dataset.FileName(d)))
		cached[d.String()] = err == nil
	}

	render.JSON(w, r, map[string]any{
		"status":          "healthy",
		"version":         h.version,
		"uptime":          time.Since(h.started).Round(time.Second).String(),
		"time":            time.Now().UTC().Format(time.RFC3339),
		"data_dir":        h.dataDir,
		"data_dir_exists": dirExists,
		"cached":          cached,
	})
}
