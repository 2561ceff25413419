package client

import (
	"context"
	"github.com/rookgm/orderdash/internal/models"
	"net/http"
	"strconv"
	"time"
)

// PaymentClient represents HTTP client of the payment service
type PaymentClient struct {
	rest restClient
}

// NewPaymentClient creates new PaymentClient instance
func NewPaymentClient(baseURL string, timeout time.Duration) *PaymentClient {
	return &PaymentClient{rest: newRESTClient(baseURL, timeout)}
}

// ListPayments returns all payments
// GET /api/payments
func (pc *PaymentClient) ListPayments(ctx context.Context) ([]models.Payment, error) {
	payments := []models.Payment{}
	if err := pc.rest.do(ctx, http.MethodGet, nil, &payments, "api", "payments"); err != nil {
		return nil, err
	}
	return payments, nil
}

// GetPaymentByID returns payment by id
// GET /api/payments/{id}
func (pc *PaymentClient) GetPaymentByID(ctx context.Context, id int64) (*models.Payment, error) {
	payment := models.Payment{}
	if err := pc.rest.do(ctx, http.MethodGet, nil, &payment, "api", "payments", strconv.FormatInt(id, 10)); err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetPaymentByOrderNumber returns payment of order
// GET /api/payments/order/{orderNumber}
func (pc *PaymentClient) GetPaymentByOrderNumber(ctx context.Context, number string) (*models.Payment, error) {
	payment := models.Payment{}
	if err := pc.rest.do(ctx, http.MethodGet, nil, &payment, "api", "payments", "order", number); err != nil {
		return nil, err
	}
	return &payment, nil
}
