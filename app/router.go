package app

import (
	"log/slog"
	"net/http"

	"github.com/XdrBOBX/rating-widget/app/shared/httpx"
	"github.com/XdrBOBX/rating-widget/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// HTTPRouter exposes the root mux and the rate-limited group modules mount
// their routes on.
type HTTPRouter struct {
	Root *chi.Mux
	API  chi.Router
}

// NewHTTPRouter builds the middleware chain shared by every route and mounts
// the health probe. /metrics is mounted when mountMetrics is set.
func NewHTTPRouter(cfg config.HTTPConfig, logger *slog.Logger, reg *prometheus.Registry, mountMetrics bool) *HTTPRouter {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
		httpx.RequestLogger(logger),
		httpx.NewHTTPMetrics(reg).Middleware,
		httpx.CORS(cfg.AllowedOrigins),
	)

	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	if mountMetrics {
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	limiter := httpx.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	return &HTTPRouter{
		Root: r,
		API:  r.With(httpx.RateLimit(limiter)),
	}
}
