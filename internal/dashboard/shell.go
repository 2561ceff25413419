// Package dashboard composes the list views and the order form of one
// dashboard session.
package dashboard

import (
	"context"
	"fmt"
	"github.com/rookgm/orderdash/internal/form"
	"github.com/rookgm/orderdash/internal/models"
	"github.com/rookgm/orderdash/internal/view"
	"sync"
	"time"
)

// messages displayed when a list cannot be fetched
const (
	ordersErrorMessage   = "Failed to load the order list."
	paymentsErrorMessage = "Failed to load the payment list."
)

// Tab is dashboard tab
type Tab string

const (
	TabOrders   Tab = "orders"
	TabPayments Tab = "payments"
)

// ParseTab returns tab by name
func ParseTab(name string) (Tab, error) {
	switch Tab(name) {
	case TabOrders, TabPayments:
		return Tab(name), nil
	default:
		return "", fmt.Errorf("%w: %q", models.ErrUnknownTab, name)
	}
}

// OrderService is interface for interacting with the order service
type OrderService interface {
	CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
}

// PaymentService is interface for interacting with the payment service
type PaymentService interface {
	ListPayments(ctx context.Context) ([]models.Payment, error)
}

// Page is everything needed to render a dashboard.
// Only the view of the active tab is set.
type Page struct {
	ActiveTab  Tab                            `json:"activeTab"`
	RefreshKey int                            `json:"refreshKey"`
	Orders     *view.Snapshot[models.Order]   `json:"orders,omitempty"`
	Payments   *view.Snapshot[models.Payment] `json:"payments,omitempty"`
	Form       form.State                     `json:"form"`
}

// Shell is dashboard of one session: active tab, order form and refresh counter.
// Only the list view of the active tab is mounted; mounting starts its fetch timer.
type Shell struct {
	orders   OrderService
	payments PaymentService
	interval time.Duration
	form     *form.OrderForm

	mu          sync.Mutex
	ctx         context.Context
	activeTab   Tab
	refreshKey  int
	orderView   *view.ListView[models.Order]
	paymentView *view.ListView[models.Payment]
}

// NewShell creates new Shell with the orders tab active
func NewShell(orders OrderService, payments PaymentService, interval time.Duration) *Shell {
	s := &Shell{
		orders:    orders,
		payments:  payments,
		interval:  interval,
		activeTab: TabOrders,
	}
	s.form = form.New(orders, s.Refresh)
	return s
}

// Start mounts the active view. Views poll until Stop is called or ctx is done.
func (s *Shell) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctx = ctx
	s.mount()
}

// Stop unmounts the active view
func (s *Shell) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unmount()
	s.ctx = nil
}

// SelectTab switches the active tab
func (s *Shell) SelectTab(tab Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tab == s.activeTab {
		return
	}
	s.unmount()
	s.activeTab = tab
	s.mount()
}

// Refresh increments the refresh counter and remounts the active view,
// which discards its list and starts over from LOADING
func (s *Shell) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshKey++
	s.unmount()
	s.mount()
}

// OpenForm shows the order form
func (s *Shell) OpenForm() {
	s.form.Open()
}

// CloseForm hides the order form
func (s *Shell) CloseForm() {
	s.form.Close()
}

// SubmitOrder applies fields to the draft and submits it.
// A closed form is left untouched. A successful submission triggers Refresh.
func (s *Shell) SubmitOrder(ctx context.Context, fields map[string]string) (*models.Order, error) {
	if !s.form.IsOpen() {
		return nil, models.ErrFormClosed
	}
	for _, name := range models.DraftFields {
		value, ok := fields[name]
		if !ok {
			continue
		}
		if err := s.form.SetField(name, value); err != nil {
			return nil, err
		}
	}
	return s.form.Submit(ctx)
}

// InitialPage is the page of a session that has no shell yet: orders tab, still loading
func InitialPage() Page {
	return Page{
		ActiveTab: TabOrders,
		Orders:    &view.Snapshot[models.Order]{State: view.StateLoading, Items: []models.Order{}},
		Form:      form.State{Draft: models.NewOrderDraft()},
	}
}

// Page returns current state of the dashboard
func (s *Shell) Page() Page {
	s.mu.Lock()
	page := Page{
		ActiveTab:  s.activeTab,
		RefreshKey: s.refreshKey,
	}
	orderView, paymentView := s.orderView, s.paymentView
	s.mu.Unlock()

	if orderView != nil {
		snap := orderView.Snapshot()
		page.Orders = &snap
	}
	if paymentView != nil {
		snap := paymentView.Snapshot()
		page.Payments = &snap
	}
	page.Form = s.form.State()
	return page
}

// mount creates a fresh view for the active tab, s.mu must be held
func (s *Shell) mount() {
	if s.ctx == nil {
		return
	}
	switch s.activeTab {
	case TabOrders:
		s.orderView = view.New("orders", s.orders.ListOrders, s.interval, ordersErrorMessage)
		s.orderView.Activate(s.ctx)
	case TabPayments:
		s.paymentView = view.New("payments", s.payments.ListPayments, s.interval, paymentsErrorMessage)
		s.paymentView.Activate(s.ctx)
	}
}

// unmount stops and drops the mounted view, s.mu must be held
func (s *Shell) unmount() {
	if s.orderView != nil {
		s.orderView.Deactivate()
		s.orderView = nil
	}
	if s.paymentView != nil {
		s.paymentView.Deactivate()
		s.paymentView = nil
	}
}
