// Package rest serves the army book HTTP API
package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/KirkDiggler/armybook-api/internal/errors"
	"github.com/KirkDiggler/armybook-api/internal/orchestrators/armybook"
)

const (
	apiBasePath       = "/api/army-books"
	paramUID          = "uid"
	headerRequesterID = "X-User-Id"

	defaultRequestTimeout = 120 * time.Second
	defaultMetricsPath    = "/metrics"
)

// RouterConfig holds dependencies for the HTTP API
type RouterConfig struct {
	ArmyBookService armybook.Service
	// MetricsHandler is mounted on MetricsPath when set
	MetricsHandler http.Handler
	MetricsPath    string
	RequestTimeout time.Duration
}

// Validate ensures all required dependencies are present
func (c *RouterConfig) Validate() error {
	if c == nil || c.ArmyBookService == nil {
		return errors.InvalidArgument("army book service is required")
	}
	return nil
}

// NewRouter builds the chi router for the HTTP API
func NewRouter(cfg *RouterConfig) (http.Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	h := &handler{armyBookService: cfg.ArmyBookService}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	r.Route(apiBasePath, func(r chi.Router) {
		r.Get("/", makeHandler(h.listArmyBooks))
		r.Get("/mine", makeHandler(h.listMyArmyBooks))
		r.Post("/import", makeHandler(h.importArmyBook))
		r.Post("/detachment", makeHandler(h.createDetachment))
		r.Route("/{"+paramUID+"}", func(r chi.Router) {
			r.Get("/", makeHandler(h.getArmyBook))
			r.Patch("/", makeHandler(h.updateArmyBook))
			r.Delete("/", makeHandler(h.deleteArmyBook))
			r.Get("/mine", makeHandler(h.getMyArmyBook))
			r.Get("/ownership", makeHandler(h.checkOwnership))
			r.Get("/pdf", makeHandler(h.getPdf))
			r.Post("/calculate", makeHandler(h.recalculateCosts))
		})
	})

	r.Get("/healthz", handleHealthCheck)
	if cfg.MetricsHandler != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = defaultMetricsPath
		}
		r.Method(http.MethodGet, path, cfg.MetricsHandler)
	}

	return r, nil
}

func handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
