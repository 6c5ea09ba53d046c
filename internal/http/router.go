package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rogerio-castellano/inventory-manager/internal/auth"
	"github.com/rogerio-castellano/inventory-manager/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-manager/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-manager/internal/logger"
	"github.com/rogerio-castellano/inventory-manager/internal/models"
)

// RouterDeps wires the router.
type RouterDeps struct {
	Server       *handlers.Server
	Tokens       *auth.TokenIssuer
	LoginLimiter *rl.Limiter
	Metrics      http.Handler // optional /metrics handler
	Log          *logger.Logger
}

func NewRouter(d RouterDeps) http.Handler {
	log := d.Log
	if log == nil {
		log = logger.Nop()
	}
	s := d.Server

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(log))

	r.Get("/health", s.HealthHandler)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	r.Group(func(r chi.Router) {
		if d.LoginLimiter != nil {
			r.Use(RateLimit(d.LoginLimiter))
		}
		r.Post("/login", s.LoginHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(d.Tokens))

		r.Get("/dashboard", s.GetDashboardMetricsHandler)
		r.Get("/reports/low-stock", s.LowStockReportHandler)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", s.GetProductsHandler)
			r.Post("/", s.CreateProductHandler)
			r.Get("/{id}", s.GetProductByIDHandler)
			r.Delete("/{id}", s.DeleteProductHandler)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(RequireRole(models.RoleAdmin))

			r.Post("/products", s.CreateProductHandler)
			r.Put("/products/{id}", s.UpdateProductHandler)
			r.Delete("/products/{id}", s.DeleteProductHandler)
			r.Get("/threshold", s.GetThresholdHandler)
			r.Put("/threshold", s.SetThresholdHandler)
			r.Post("/reset", s.ResetSampleHandler)
			r.Post("/clear", s.ClearAllHandler)
			r.Post("/import", s.ImportProductsHandler)
		})
	})

	return r
}
