package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/google/uuid"

	"kkotdam/app/controller"
	"kkotdam/config"
	"kkotdam/logging"
	"kkotdam/metrics"
	"kkotdam/models"
)

// RequestIDHeader carries the request id in requests and responses
const RequestIDHeader = "X-Request-ID"

type Controllers struct {
	Recommendation *controller.RecommendationController
	Flower         *controller.FlowerController
	Option         *controller.OptionController
	Admin          *controller.AdminController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// requestID reuses an incoming X-Request-ID or generates one, and attaches it to the logging context
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		ctx := logging.ContextWithRequestID(r.Context(), id)
		ctx = context.WithValue(ctx, middleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// accessLog logs one line per request
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		logging.Ctx(r.Context()).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("📨 Request handled")
	})
}

func rateLimiter(cfg config.RateLimitConfig) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		cfg.Requests,
		cfg.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			controller.WriteProblem(w, r, models.TooManyRequests, "")
		}),
	)
}

// SetupRoutes builds the HTTP handler for all endpoints
func SetupRoutes(controllers *Controllers, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog)
	r.Use(middleware.Recoverer)
	r.Use(metrics.InstrumentHandler)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader, "X-Combination-Id", "Content-Disposition"},
		MaxAge:         cfg.CORS.MaxAge,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		controller.WriteProblem(w, r, models.NotFound, "")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		controller.WriteProblem(w, r, models.MethodNotAllowed, "")
	})

	// Health and metrics
	r.Get("/ping", pingHandler)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(rateLimiter(cfg.RateLimit))

		// Recommendation routes
		r.Post("/recommendations", controllers.Recommendation.Recommend)
		r.Post("/recommendations/card", controllers.Recommendation.RenderCard)

		// Flower catalog routes
		r.Get("/flowers", controllers.Flower.ListFlowers)
		r.Get("/flowers/{flowerId}", controllers.Flower.GetFlower)
		r.Get("/flowers/{flowerId}/image", controllers.Flower.GetImage)

		r.Get("/options", controllers.Option.GetOptions)

		// Admin routes
		r.Post("/admin/flowers/images/sync", controllers.Admin.SyncImages)
		r.Post("/admin/catalog/import", controllers.Admin.ImportCatalog)
	})

	return r
}
