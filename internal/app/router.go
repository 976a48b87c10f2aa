package app

import (
	"net/http"
	"time"

	"github.com/avc/hosting-storefront/internal/handlers"
	"github.com/avc/hosting-storefront/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// rateLimiterTTL время, после которого неактивный клиент забывается
const rateLimiterTTL = 15 * time.Minute

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, corsOrigins []string, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, corsOrigins, logger)

	// Маршруты
	setupRoutes(r, deps, logger)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, corsOrigins []string, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"Authorization", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies, logger *zap.Logger) {
	h := deps.handlers

	// Health check эндпоинты
	r.Get("/health", h.health.Health)
	r.Get("/ready", h.health.Ready)

	// Загруженные скриншоты
	r.Handle(storage.URLPrefix+"*", http.StripPrefix(storage.URLPrefix, http.FileServer(http.Dir(deps.store.Dir()))))

	authenticate := handlers.AuthMiddleware(deps.jwtManager, logger)
	adminOnly := handlers.AdminOnly(logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(deps.rateLimiter.Middleware(logger))

		// Публичные эндпоинты
		r.Post("/auth/register", h.auth.Register)
		r.Post("/auth/login", h.auth.Login)
		r.Get("/plans", h.plans.List)
		r.Get("/plans/{id}", h.plans.Get)

		// Покупатель
		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Get("/auth/me", h.auth.Me)
			r.Post("/promos/validate", h.promos.Validate)

			r.Post("/orders", h.orders.Create)
			r.Get("/orders/{id}", h.orders.Get)
			r.Get("/orders/{id}/qr", h.orders.PaymentQR)
			r.Post("/orders/{id}/upload-payment", h.orders.UploadPayment)
			r.Delete("/orders/{id}", h.orders.Cancel)
			r.Get("/orders/user/{userId}", h.orders.ListUser)
		})

		// Администратор
		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(adminOnly)

			r.Get("/orders/admin/all", h.orders.ListAll)
			r.Put("/orders/{id}/verify", h.orders.Verify)
			r.Put("/orders/{id}/reject", h.orders.Reject)
			r.Get("/orders/manager/active", h.orders.ListActive)
			r.Get("/orders/manager/expired", h.orders.ListExpired)
			r.Delete("/orders/manager/expired", h.orders.SweepExpired)

			r.Post("/plans", h.plans.Create)
			r.Put("/plans/{id}", h.plans.Update)
			r.Delete("/plans/{id}", h.plans.Delete)

			r.Get("/promos", h.promos.List)
			r.Post("/promos", h.promos.Create)
			r.Put("/promos/{id}", h.promos.Update)
			r.Delete("/promos/{id}", h.promos.Delete)

			r.Get("/analytics/dashboard", h.analytics.Dashboard)
		})
	})
}
