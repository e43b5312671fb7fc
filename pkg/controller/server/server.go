package server

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/m-mizutani/relnote/pkg/domain/interfaces"
	"github.com/m-mizutani/relnote/pkg/utils/logging"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: body is JSON encoded by the server
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	allowedOrigins []string
	metrics        http.Handler
}

type Option func(*config)

// WithAllowedOrigins sets the origins allowed by CORS. Default is "*".
func WithAllowedOrigins(origins []string) Option {
	return func(cfg *config) {
		cfg.allowedOrigins = origins
	}
}

// WithMetricsHandler replaces the handler served at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(cfg *config) {
		cfg.metrics = h
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		allowedOrigins: []string{"*"},
		metrics:        promhttp.Handler(),
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Use(recoverPanic)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Cache-Control"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", cfg.metrics)

	r.Route("/api", func(r chi.Router) {
		r.Get("/branches", getBranches(uc))
		r.Get("/milestones", getMilestones(uc))
		r.Get("/issues", getIssues(uc))

		r.Post("/push-content", pushContent(uc))
		r.Get("/fetch-content", fetchContent(uc))

		r.Post("/update-version", updateVersion(uc))
		r.Post("/create-pull-request", createPullRequest(uc))

		r.Post("/create-gist-link", createGistLink(uc))
		r.Get("/fetch-gist", fetchGist(uc))
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
