package server

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/sahanavr/trivia-api/internal/category"
	"github.com/sahanavr/trivia-api/internal/config"
	"github.com/sahanavr/trivia-api/internal/question"
	"github.com/sahanavr/trivia-api/internal/quiz"
)

// Handlers bundles the per-domain HTTP handlers the server routes to.
type Handlers struct {
	Questions  *question.Handlers
	Categories *category.Handlers
	Quiz       *quiz.Handlers
}

// NewHTTPServer wires the trivia API routes plus health and metrics
// endpoints. pool may be nil in tests; readiness then reports ok.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, h Handlers) *http.Server {
	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: NewRouter(cfg, logger, pool, h),
	}
}

// NewRouter builds the routed handler with the middleware chain applied.
// Split from NewHTTPServer so tests can drive it through httptest.
func NewRouter(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, h Handlers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if pool != nil {
			if err := pool.Ping(r.Context()); err != nil {
				logger.Error().Err(err).Msg("database ping failed")
				http.Error(w, "database unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/categories", h.Categories.List)
	mux.HandleFunc("GET /api/categories/{id}/questions", h.Questions.ByCategory)
	mux.HandleFunc("GET /api/questions", h.Questions.List)
	mux.HandleFunc("POST /api/questions", h.Questions.Create)
	mux.HandleFunc("POST /api/questions/search", h.Questions.Search)
	mux.HandleFunc("POST /api/questions/quiz", h.Quiz.Play)
	mux.HandleFunc("DELETE /api/questions/{id}/delete", h.Questions.Delete)

	return Chain(mux,
		RequestID(),
		RequestLogger(logger),
		Metrics(),
		CORS(cfg.CORS),
	)
}
