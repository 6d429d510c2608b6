// Package server assembles the HTTP router for the proxy API.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/novel2image/proxy/internal/generation"
	appMiddleware "github.com/novel2image/proxy/internal/middleware"
	"github.com/novel2image/proxy/internal/response"
	"github.com/novel2image/proxy/internal/summarize"
	"github.com/novel2image/proxy/internal/upload"

	_ "github.com/novel2image/proxy/docs/swagger"
)

// Deps are the handlers and settings the router mounts.
type Deps struct {
	AllowedOrigins []string
	Generation     *generation.Handler
	Summarize      *summarize.Handler
	Upload         *upload.Handler
	Metrics        http.Handler
}

// NewRouter builds the chi router with middleware, CORS and all routes.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]string{"message": "Welcome to AI Image Processing API"})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]string{"status": "healthy"})
	})
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	// Swagger UI at /swagger/index.html
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api/v1/proxy", func(r chi.Router) {
		r.Post("/doubao/generate", d.Generation.Generate)
		r.Post("/deepseek/summarize", d.Summarize.Summarize)
		r.Route("/tos", func(r chi.Router) {
			r.Post("/upload-from-file", d.Upload.UploadFromFile)
			r.Post("/upload", d.Upload.Upload)
		})
	})

	return r
}
