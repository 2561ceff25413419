// Package form implements the create-order form state.
package form

import (
	"context"
	"errors"
	"github.com/rookgm/orderdash/internal/logger"
	"github.com/rookgm/orderdash/internal/models"
	"go.uber.org/zap"
	"sync"
)

// FallbackMessage is shown when the order service gives no message
const FallbackMessage = "Failed to create the order."

// OrderCreator creates orders in the order service
type OrderCreator interface {
	CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error)
}

// State is a copy of form state for rendering
type State struct {
	Open  bool              `json:"open"`
	Busy  bool              `json:"busy"`
	Draft models.OrderDraft `json:"draft"`
	Error string            `json:"error,omitempty"`
}

// OrderForm holds the draft of a new order
type OrderForm struct {
	creator   OrderCreator
	onSuccess func()

	mu    sync.Mutex
	open  bool
	busy  bool
	draft models.OrderDraft
	err   string
}

// New creates new OrderForm. onSuccess is called once per created order.
func New(creator OrderCreator, onSuccess func()) *OrderForm {
	return &OrderForm{
		creator:   creator,
		onSuccess: onSuccess,
		draft:     models.NewOrderDraft(),
	}
}

// Open shows the form
func (f *OrderForm) Open() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = true
}

// Close hides the form, the draft is kept. A form that is submitting stays open.
func (f *OrderForm) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.busy {
		return
	}
	f.open = false
}

// IsOpen reports whether the form is shown
func (f *OrderForm) IsOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

// SetField updates draft field. Quantity is coerced to an integer >= 1.
func (f *OrderForm) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.busy {
		return models.ErrSubmitInProgress
	}
	return f.draft.Set(name, value)
}

// State returns copy of form state
func (f *OrderForm) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State{
		Open:  f.open,
		Busy:  f.busy,
		Draft: f.draft,
		Error: f.err,
	}
}

// Submit creates order from the draft. Only an open form can be submitted.
// On success the draft is reset, the form closed and onSuccess called.
// On failure the error message is kept for display and the draft is left untouched.
func (f *OrderForm) Submit(ctx context.Context) (*models.Order, error) {
	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return nil, models.ErrSubmitInProgress
	}
	if !f.open {
		f.mu.Unlock()
		return nil, models.ErrFormClosed
	}
	req, err := f.draft.Request()
	if err != nil {
		f.err = validationMessage(err)
		f.mu.Unlock()
		return nil, err
	}
	f.busy = true
	f.err = ""
	f.mu.Unlock()

	order, err := f.creator.CreateOrder(ctx, req)

	f.mu.Lock()
	f.busy = false
	if err != nil {
		f.err = models.UserMessage(err, FallbackMessage)
		f.mu.Unlock()
		logger.Log.Error("create order error", zap.String("product", req.ProductName), zap.Error(err))
		return nil, err
	}
	f.draft = models.NewOrderDraft()
	f.open = false
	f.mu.Unlock()

	logger.Log.Info("order created", zap.String("number", order.OrderNumber))
	if f.onSuccess != nil {
		f.onSuccess()
	}
	return order, nil
}

// validationMessage strips the sentinel prefix of a draft validation error
func validationMessage(err error) string {
	msg := err.Error()
	prefix := models.ErrInvalidDraft.Error() + ": "
	if errors.Is(err, models.ErrInvalidDraft) && len(msg) > len(prefix) {
		return msg[len(prefix):]
	}
	return msg
}
