// Package http provides the HTTP delivery layer for the URL shortener service.
// This package contains the JSON API handlers, the HTML dashboard and the
// related types used for processing incoming requests, validating input, and
// formatting responses.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/gorilla/csrf"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/vadimbarashkov/tinyurl/docs"
)

type routerOptions struct {
	csrfKey    []byte
	csrfSecure bool
}

// Option configures the router.
type Option func(*routerOptions)

// WithCSRF protects the dashboard forms with CSRF tokens signed by key.
func WithCSRF(key []byte, secure bool) Option {
	return func(o *routerOptions) {
		o.csrfKey = key
		o.csrfSecure = secure
	}
}

// NewRouter initializes and returns a new Chi router configured with middleware and routes for the URL shortener.
func NewRouter(logger *httplog.Logger, urlUseCase urlUseCase, opts ...Option) *chi.Mux {
	var o routerOptions
	for _, opt := range opts {
		opt(&o)
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*"},
		AllowedMethods:   []string{"POST", "GET", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	validate := newValidate()

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.yml"),
	))

	r.Get("/docs/swagger.yml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		w.Write(docs.Swagger)
	})

	r.Group(func(r chi.Router) {
		if len(o.csrfKey) > 0 {
			r.Use(markPlaintext)
			r.Use(csrf.Protect(o.csrfKey, csrf.Secure(o.csrfSecure), csrf.Path("/")))
		}

		h := newDashboardHandler(urlUseCase, validate)

		r.Get("/", h.show)
		r.Post("/", h.submit)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", handlePing)

		r.Route("/shorten", func(r chi.Router) {
			h := newURLHandler(urlUseCase, validate)

			r.Get("/", h.listURLs)
			r.Post("/", h.shortenURL)

			r.Route("/{shortCode}", func(r chi.Router) {
				r.Get("/", h.resolveShortCode)
				r.Delete("/", h.deactivateURL)
				r.Get("/stats", h.getURLStats)
			})
		})
	})

	return r
}

// markPlaintext tells the CSRF middleware that requests without TLS are
// served over plain HTTP, so it does not demand an HTTPS referer.
func markPlaintext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.TLS == nil {
			r = csrf.PlaintextHTTPRequest(r)
		}
		next.ServeHTTP(w, r)
	})
}
