package handler

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/rookgm/orderdash/internal/middleware"
	"github.com/rookgm/orderdash/internal/models"
	"github.com/rookgm/orderdash/internal/service"
	"go.uber.org/zap"
	"net/http"
	"strconv"
)

//go:generate mockgen -source=lookup.go -destination=mocks/lookup.go -package=mocks

type LookupService interface {
	// GetOrderByID returns order by id
	GetOrderByID(ctx context.Context, id int64) (*models.Order, error)
	// GetOrderByNumber returns order by number
	GetOrderByNumber(ctx context.Context, number string) (*models.Order, error)
	// GetOrderDetails returns order with its payment
	GetOrderDetails(ctx context.Context, number string) (*service.OrderDetails, error)
	// GetPaymentByID returns payment by id
	GetPaymentByID(ctx context.Context, id int64) (*models.Payment, error)
	// GetPaymentByOrderNumber returns payment of order
	GetPaymentByOrderNumber(ctx context.Context, number string) (*models.Payment, error)
}

// LookupHandler represents HTTP handler for single order and payment lookups
type LookupHandler struct {
	svc    LookupService
	logger *zap.Logger
}

// NewLookupHandler creates new LookupHandler instance
func NewLookupHandler(svc LookupService, logger *zap.Logger) *LookupHandler {
	return &LookupHandler{
		svc:    svc,
		logger: logger,
	}
}

type errorResponse struct {
	Message string `json:"message"`
}

// GetOrderByID returns order by id
// 200 — успешная обработка запроса;
// 400 — неверный идентификатор;
// 404 — заказ не найден;
// 502 — сервис заказов недоступен.
func (lh *LookupHandler) GetOrderByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			lh.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid id"})
			return
		}

		order, err := lh.svc.GetOrderByID(r.Context(), id)
		if err != nil {
			lh.writeError(w, r, err)
			return
		}
		lh.writeJSON(w, http.StatusOK, order)
	}
}

// GetOrderByNumber returns order by number
// 200 — успешная обработка запроса;
// 404 — заказ не найден;
// 502 — сервис заказов недоступен.
func (lh *LookupHandler) GetOrderByNumber() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := lh.svc.GetOrderByNumber(r.Context(), chi.URLParam(r, "number"))
		if err != nil {
			lh.writeError(w, r, err)
			return
		}
		lh.writeJSON(w, http.StatusOK, order)
	}
}

// GetOrderDetails returns order with its payment
// 200 — успешная обработка запроса;
// 404 — заказ не найден;
// 502 — сервис недоступен.
func (lh *LookupHandler) GetOrderDetails() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		details, err := lh.svc.GetOrderDetails(r.Context(), chi.URLParam(r, "number"))
		if err != nil {
			lh.writeError(w, r, err)
			return
		}
		lh.writeJSON(w, http.StatusOK, details)
	}
}

// GetPaymentByID returns payment by id
// 200 — успешная обработка запроса;
// 400 — неверный идентификатор;
// 404 — платёж не найден;
// 502 — сервис платежей недоступен.
func (lh *LookupHandler) GetPaymentByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			lh.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid id"})
			return
		}

		payment, err := lh.svc.GetPaymentByID(r.Context(), id)
		if err != nil {
			lh.writeError(w, r, err)
			return
		}
		lh.writeJSON(w, http.StatusOK, payment)
	}
}

// GetPaymentByOrderNumber returns payment of order
// 200 — успешная обработка запроса;
// 404 — платёж не найден;
// 502 — сервис платежей недоступен.
func (lh *LookupHandler) GetPaymentByOrderNumber() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payment, err := lh.svc.GetPaymentByOrderNumber(r.Context(), chi.URLParam(r, "number"))
		if err != nil {
			lh.writeError(w, r, err)
			return
		}
		lh.writeJSON(w, http.StatusOK, payment)
	}
}

// lookupStatus maps service error to response status
func lookupStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

func (lh *LookupHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := lookupStatus(err)
	if status >= http.StatusInternalServerError {
		lh.logger.Error("lookup failed",
			zap.String("request_id", middleware.RequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
	lh.writeJSON(w, status, errorResponse{Message: models.UserMessage(err, http.StatusText(status))})
}

func (lh *LookupHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		lh.logger.Debug("write response", zap.Error(err))
	}
}
