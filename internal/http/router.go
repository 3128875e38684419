package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/shineart/studiopos/internal/auth"
	authHandler "github.com/shineart/studiopos/internal/http/auth"
	"github.com/shineart/studiopos/internal/http/document"
	"github.com/shineart/studiopos/internal/metrics"
)

type Options struct {
	Log         zerolog.Logger
	Metrics     *metrics.Metrics
	Tokens      *auth.Tokens
	CORSOrigins []string
}

func New(
	opts Options,
	authV1 *authHandler.Handler,
	documentsV1 *document.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(opts.Log))
	router.Use(instrument(opts.Metrics))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	if opts.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		r.Route("/documents", func(r chi.Router) {
			r.Use(authenticate(opts.Tokens))
			documentsV1.Routes(r)
		})
	})

	return router
}
