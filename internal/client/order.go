package client

import (
	"context"
	"github.com/rookgm/orderdash/internal/models"
	"net/http"
	"strconv"
	"time"
)

// OrderClient represents HTTP client of the order service
type OrderClient struct {
	rest restClient
}

// NewOrderClient creates new OrderClient instance
func NewOrderClient(baseURL string, timeout time.Duration) *OrderClient {
	return &OrderClient{rest: newRESTClient(baseURL, timeout)}
}

// CreateOrder creates new order
// POST /api/orders
func (oc *OrderClient) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	order := models.Order{}
	if err := oc.rest.do(ctx, http.MethodPost, req, &order, "api", "orders"); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders returns all orders
// GET /api/orders
func (oc *OrderClient) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	if err := oc.rest.do(ctx, http.MethodGet, nil, &orders, "api", "orders"); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrderByID returns order by id
// GET /api/orders/{id}
func (oc *OrderClient) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	order := models.Order{}
	if err := oc.rest.do(ctx, http.MethodGet, nil, &order, "api", "orders", strconv.FormatInt(id, 10)); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrderByNumber returns order by number
// GET /api/orders/number/{orderNumber}
func (oc *OrderClient) GetOrderByNumber(ctx context.Context, number string) (*models.Order, error) {
	order := models.Order{}
	if err := oc.rest.do(ctx, http.MethodGet, nil, &order, "api", "orders", "number", number); err != nil {
		return nil, err
	}
	return &order, nil
}
