package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/rookgm/orderdash/internal/middleware"
	"go.uber.org/zap"
	"net/http"
	"time"
)

// NewRouter wires dashboard and lookup routes
func NewRouter(logger *zap.Logger, tokens middleware.TokenService, sessionTTL time.Duration, dh *DashboardHandler, lh *LookupHandler) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logging(logger))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// order and payment lookups
	router.Get("/api/orders/{id}", lh.GetOrderByID())
	router.Get("/api/orders/number/{number}", lh.GetOrderByNumber())
	router.Get("/api/orders/number/{number}/details", lh.GetOrderDetails())
	router.Get("/api/payments/{id}", lh.GetPaymentByID())
	router.Get("/api/payments/order/{number}", lh.GetPaymentByOrderNumber())

	// routes bound to a dashboard session
	router.Group(func(group chi.Router) {
		group.Use(middleware.Session(tokens, sessionTTL))
		group.Get("/", dh.Index())
		group.Get("/api/dashboard", dh.PageJSON())
		group.Post("/tabs/{tab}", dh.SelectTab())
		group.Post("/orders/form", dh.OpenForm())
		group.Post("/orders/form/close", dh.CloseForm())
		group.Post("/orders", dh.SubmitOrder())
		group.Post("/refresh", dh.Refresh())
	})

	return router
}
