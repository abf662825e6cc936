// Package http exposes the JSON API over chi.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"fatura/internal/cache"
	"fatura/internal/middleware/security"
	"fatura/internal/middleware/trace"
	"fatura/internal/services"
)

// Pinger reports storage reachability for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options configures the server.
type Options struct {
	CacheTTL  time.Duration
	CacheSize int

	// WriteLimit caps write requests per client IP per minute.
	WriteLimit int
}

func defaultOptions(o Options) Options {
	if o.CacheTTL <= 0 {
		o.CacheTTL = 5 * time.Minute
	}
	if o.CacheSize <= 0 {
		o.CacheSize = 64
	}
	if o.WriteLimit <= 0 {
		o.WriteLimit = 60
	}
	return o
}

type Server struct {
	router      chi.Router
	gastos      *services.GastoService
	frequencias *services.FrequenciaService
	db          Pinger
	resumoCache *cache.LRUCache[resumoResponse]
	trace       *trace.Middleware
}

func NewServer(gastos *services.GastoService, frequencias *services.FrequenciaService, db Pinger, opts Options) *Server {
	opts = defaultOptions(opts)

	s := &Server{
		gastos:      gastos,
		frequencias: frequencias,
		db:          db,
		resumoCache: cache.NewLRUCache[resumoResponse](opts.CacheSize, opts.CacheTTL),
		trace:       trace.NewMiddleware(),
	}
	s.router = s.routes(opts)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ResumoCache exposes the cache for cleanup registration.
func (s *Server) ResumoCache() *cache.LRUCache[resumoResponse] {
	return s.resumoCache
}

func (s *Server) routes(opts Options) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.trace.Handler)
	r.Use(security.Headers(security.DefaultHeadersConfig()))

	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)

	r.Route("/api", func(r chi.Router) {
		r.Route("/gastos", func(r chi.Router) {
			r.Get("/periodo/{ano}/{mes}", s.handleListGastosPeriodo)
			r.Get("/resumo/{ano}/{mes}", s.handleResumoGastos)
			r.Get("/{id}", s.handleGetGasto)

			r.Group(func(r chi.Router) {
				r.Use(httprate.LimitByIP(opts.WriteLimit, time.Minute))
				r.Post("/", s.handleCreateGasto)
				r.Put("/{id}", s.handleUpdateGasto)
				r.Delete("/{id}", s.handleDeleteGasto)
			})
		})

		r.Route("/frequencias", func(r chi.Router) {
			r.Get("/periodo/{ano}/{mes}", s.handleListFrequenciasPeriodo)
			r.Get("/{id}", s.handleGetFrequencia)

			r.Group(func(r chi.Router) {
				r.Use(httprate.LimitByIP(opts.WriteLimit, time.Minute))
				r.Post("/", s.handleCreateFrequencia)
				r.Put("/{id}", s.handleUpdateFrequencia)
				r.Delete("/{id}", s.handleDeleteFrequencia)
			})
		})
	})

	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
