// ABOUTME: HTTP server wiring routes, CORS and middleware around the core services
// ABOUTME: The one place where handlers meet the request multiplexer

package api

import (
	"net/http"

	"github.com/rs/cors"

	"memoria-app-api/api/handlers"
	"memoria-app-api/api/middleware"
	"memoria-app-api/core/interfaces"
	"memoria-app-api/infrastructure/share/link"
)

// Config holds server-level configuration
type Config struct {
	Logger interfaces.Logger

	// RateLimitRPS and RateLimitBurst bound per-client request rates;
	// zero disables limiting
	RateLimitRPS   float64
	RateLimitBurst int
}

// Services bundles the core services the routes are built over
type Services struct {
	Photos  handlers.PhotoService
	Content handlers.ContentService
	Reader  handlers.ReaderService
	Shares  *link.Surface
}

// NewHandler builds the complete HTTP handler: routes, middleware and CORS
func NewHandler(cfg Config, svcs Services) http.Handler {
	mux := http.NewServeMux()

	if svcs.Photos != nil {
		photoHandler := handlers.NewPhotoHandler(svcs.Photos)
		mux.HandleFunc("GET /api/photos", photoHandler.List)
		mux.HandleFunc("POST /api/photos", photoHandler.Capture)
		mux.HandleFunc("DELETE /api/photos", photoHandler.Delete)
		mux.HandleFunc("GET /api/photos/{filename}/raw", photoHandler.Raw)
		mux.HandleFunc("POST /api/photos/share", photoHandler.Share)
	}

	if svcs.Content != nil {
		contentHandler := handlers.NewContentHandler(svcs.Content)
		mux.HandleFunc("GET /api/articles", contentHandler.ListArticles)
		mux.HandleFunc("GET /api/articles/{id}", contentHandler.GetArticle)
		mux.HandleFunc("GET /api/places", contentHandler.ListPlaces)
		mux.HandleFunc("GET /api/places/{id}", contentHandler.GetPlace)
		mux.HandleFunc("GET /api/feed", contentHandler.FetchFeed)
	}

	previewHandler := handlers.NewPreviewHandler(svcs.Reader)
	mux.HandleFunc("POST /api/preview", previewHandler.BuildPreview)
	if svcs.Reader != nil {
		mux.HandleFunc("POST /api/reader", previewHandler.ReaderViews)
	}

	if svcs.Shares != nil {
		shareHandler := handlers.NewShareHandler(svcs.Shares)
		mux.HandleFunc("GET /api/shares/{id}", shareHandler.Get)
	}

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	var handler http.Handler = mux

	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		handler = middleware.RateLimit(limiter)(handler)
	}

	if cfg.Logger != nil {
		handler = middleware.RequestLogging(cfg.Logger)(handler)
	}

	return cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler(handler)
}
