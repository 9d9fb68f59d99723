package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/osdetect/pkg/cache"
	"github.com/dmitrymomot/osdetect/pkg/httpserver"
	"github.com/dmitrymomot/osdetect/pkg/logger"
	"github.com/dmitrymomot/osdetect/pkg/osinfo"
)

// DefaultCacheSize is used when Options.CacheSize is not positive.
const DefaultCacheSize = 1024

// Options wires the router's collaborators.
type Options struct {
	// Detector answers /v1/os/current. Required.
	Detector Detector
	// CacheSize bounds memoized classifications.
	CacheSize int
	Logger    *slog.Logger
}

// NewRouter returns the HTTP handler for the API.
func NewRouter(opts Options) chi.Router {
	if opts.Detector == nil {
		panic("api: nil detector")
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Component("api"))

	h := &handlers{
		detector: opts.Detector,
		results:  cache.New[osinfo.Identity, osinfo.OperatingSystem](opts.CacheSize),
		log:      log,
	}

	r := chi.NewRouter()
	r.Use(RequestID, accessLog(log), recoverer(log))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, log, ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, log, ErrMethodNotAllowed)
	})

	r.Get("/health", httpserver.HealthHandler(log))

	r.Route("/v1/os", func(r chi.Router) {
		r.Get("/current", h.current)
		r.Get("/classify", h.classifyQuery)
		r.Post("/classify", h.classifyBatch)
		r.Get("/useragent", h.classifyUserAgent)
		r.Get("/rules", h.allRules)
		r.Get("/rules/{family}", h.familyRules)
	})

	return r
}
