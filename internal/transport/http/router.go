// Package httptransport assembles the HTTP surface: public identity and
// catalog routes, the admin- and user-gated route groups, and the operational
// endpoints.
package httptransport

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"coursebay/internal/course"
	"coursebay/internal/identity"
	"coursebay/internal/platform/metrics"
	"coursebay/internal/platform/middleware"
	"coursebay/internal/platform/redis"
	"coursebay/internal/purchase"
	"coursebay/pkg/platform/httputil"
)

// Deps carries everything the router mounts.
type Deps struct {
	Identity  *identity.Handler
	Course    *course.Handler
	Purchase  *purchase.Handler
	AdminGate func(http.Handler) http.Handler
	UserGate  func(http.Handler) http.Handler
	Metrics   *metrics.HTTP
	DB        *sql.DB
	Redis     *redis.Client
	Logger    *slog.Logger
}

// NewRouter wires all endpoints. Admin lifecycle routes sit behind the admin
// gate, purchase routes behind the user gate; signup/signin and the catalog
// are public.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestContext)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}

	deps.Identity.Register(r)
	deps.Course.RegisterPublic(r)

	r.Group(func(r chi.Router) {
		r.Use(deps.AdminGate)
		deps.Course.RegisterAdmin(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(deps.UserGate)
		deps.Purchase.Register(r)
	})

	r.Get("/healthz", healthHandler(deps))
	r.Handle("/metrics", promhttp.Handler())

	return r
}

type healthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache,omitempty"`
}

func healthHandler(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if deps.DB != nil {
			if err := deps.DB.PingContext(ctx); err != nil {
				deps.Logger.ErrorContext(ctx, "health check failed", "error", err)
				httputil.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
				return
			}
		}

		resp := healthResponse{Status: "ok"}
		if deps.Redis != nil {
			// A degraded cache is not an outage; the catalog falls back to
			// the store.
			resp.Cache = "ok"
			if err := deps.Redis.Health(ctx); err != nil {
				deps.Logger.WarnContext(ctx, "redis health check failed", "error", err)
				resp.Cache = "degraded"
			}
		}
		httputil.WriteJSON(w, http.StatusOK, resp)
	}
}
