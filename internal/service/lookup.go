package service

import (
	"context"
	"errors"
	"github.com/rookgm/orderdash/internal/models"
	"golang.org/x/sync/errgroup"
)

// OrderReader is interface for reading single orders
type OrderReader interface {
	// GetOrderByID returns order by id
	GetOrderByID(ctx context.Context, id int64) (*models.Order, error)
	// GetOrderByNumber returns order by number
	GetOrderByNumber(ctx context.Context, number string) (*models.Order, error)
}

// PaymentReader is interface for reading single payments
type PaymentReader interface {
	// GetPaymentByID returns payment by id
	GetPaymentByID(ctx context.Context, id int64) (*models.Payment, error)
	// GetPaymentByOrderNumber returns payment of order
	GetPaymentByOrderNumber(ctx context.Context, number string) (*models.Payment, error)
}

// OrderDetails is order with its payment, Payment is nil while none exists
type OrderDetails struct {
	Order   *models.Order   `json:"order"`
	Payment *models.Payment `json:"payment"`
}

// LookupService implements single entity lookups against both services
type LookupService struct {
	orders   OrderReader
	payments PaymentReader
}

// NewLookupService creates new LookupService instance
func NewLookupService(orders OrderReader, payments PaymentReader) *LookupService {
	return &LookupService{
		orders:   orders,
		payments: payments,
	}
}

// GetOrderByID returns order by id
func (ls *LookupService) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	return ls.orders.GetOrderByID(ctx, id)
}

// GetOrderByNumber returns order by number
func (ls *LookupService) GetOrderByNumber(ctx context.Context, number string) (*models.Order, error) {
	return ls.orders.GetOrderByNumber(ctx, number)
}

// GetPaymentByID returns payment by id
func (ls *LookupService) GetPaymentByID(ctx context.Context, id int64) (*models.Payment, error) {
	return ls.payments.GetPaymentByID(ctx, id)
}

// GetPaymentByOrderNumber returns payment of order
func (ls *LookupService) GetPaymentByOrderNumber(ctx context.Context, number string) (*models.Payment, error) {
	return ls.payments.GetPaymentByOrderNumber(ctx, number)
}

// GetOrderDetails requests order and its payment concurrently.
// A missing payment is not an error, a missing order is.
func (ls *LookupService) GetOrderDetails(ctx context.Context, number string) (*OrderDetails, error) {
	details := OrderDetails{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		order, err := ls.orders.GetOrderByNumber(gctx, number)
		if err != nil {
			return err
		}
		details.Order = order
		return nil
	})

	g.Go(func() error {
		payment, err := ls.payments.GetPaymentByOrderNumber(gctx, number)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return nil
			}
			return err
		}
		details.Payment = payment
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &details, nil
}
