package handler

import (
	"context"
	"encoding/json"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/rookgm/orderdash/internal/dashboard"
	"github.com/rookgm/orderdash/internal/form"
	"github.com/rookgm/orderdash/internal/handler/http/mocks"
	"github.com/rookgm/orderdash/internal/middleware"
	"github.com/rookgm/orderdash/internal/models"
	"github.com/rookgm/orderdash/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

const testSessionID = "5b0d6c3e-5a7e-4a57-8a5e-0f5c2d1e9b77"

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	rd, err := NewRenderer("₩", 5*time.Second)
	require.NoError(t, err)
	return rd
}

func withSession(req *http.Request) *http.Request {
	return req.WithContext(middleware.WithSessionID(req.Context(), testSessionID))
}

func withNewSession(req *http.Request) *http.Request {
	return req.WithContext(middleware.WithNewSession(req.Context(), testSessionID))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func createdAt() models.Timestamp {
	return models.Timestamp{Time: time.Date(2025, 1, 2, 10, 20, 30, 0, time.Local)}
}

func TestDashboardHandler_Index(t *testing.T) {
	tests := []struct {
		name           string
		page           dashboard.Page
		noSession      bool
		newSession     bool
		wantStatusCode int
		wantContains   []string
		wantMissing    []string
	}{
		{
			name: "empty_order_list_renders_no_data_row",
			page: dashboard.Page{
				ActiveTab: dashboard.TabOrders,
				Orders:    &view.Snapshot[models.Order]{State: view.StateLoaded, Items: []models.Order{}},
			},
			wantStatusCode: http.StatusOK,
			wantContains: []string{
				`<td colspan="8" class="empty">No orders yet.</td>`,
				`<meta http-equiv="refresh" content="5">`,
				`action="/orders/form"`,
			},
			wantMissing: []string{`role="alert"`, "<dialog"},
		},
		{
			name: "loading_orders",
			page: dashboard.Page{
				ActiveTab: dashboard.TabOrders,
				Orders:    &view.Snapshot[models.Order]{State: view.StateLoading, Items: []models.Order{}},
			},
			wantStatusCode: http.StatusOK,
			wantContains:   []string{`<div class="loading">`},
			wantMissing:    []string{"<table>"},
		},
		{
			name: "orders_with_error_banner_keep_rows",
			page: dashboard.Page{
				ActiveTab: dashboard.TabOrders,
				Orders: &view.Snapshot[models.Order]{
					State: view.StateError,
					Error: "Failed to load the order list.",
					Items: []models.Order{{
						ID:            1,
						OrderNumber:   "ORD-1",
						ProductName:   "Widget",
						Quantity:      2,
						TotalAmount:   21000,
						CustomerName:  "Kim",
						CustomerEmail: "kim@x.com",
						Status:        models.OrderStatusShipped,
						CreatedAt:     createdAt(),
					}},
				},
			},
			wantStatusCode: http.StatusOK,
			wantContains: []string{
				`<div class="alert error" role="alert">Failed to load the order list.</div>`,
				"<strong>ORD-1</strong>",
				"₩21,000",
				`<span class="badge primary">SHIPPED</span>`,
				"2025-01-02 10:20:30",
			},
			wantMissing: []string{"No orders yet."},
		},
		{
			name: "payments_tab",
			page: dashboard.Page{
				ActiveTab: dashboard.TabPayments,
				Payments: &view.Snapshot[models.Payment]{
					State: view.StateLoaded,
					Items: []models.Payment{{
						ID:            3,
						PaymentNumber: "PAY-3",
						OrderNumber:   "ORD-1",
						Amount:        1234567.5,
						Status:        models.PaymentStatusFailed,
						PaymentMethod: models.PaymentMethodBankTransfer,
						TransactionID: "TX-99",
						CreatedAt:     createdAt(),
					}},
				},
			},
			wantStatusCode: http.StatusOK,
			wantContains: []string{
				`<section id="payments">`,
				"₩1,234,567.5",
				`<span class="badge outlined">Bank transfer</span>`,
				`<span class="badge error">FAILED</span>`,
				"TX-99",
			},
			wantMissing: []string{`action="/orders/form"`, `<section id="orders">`},
		},
		{
			name: "open_form_keeps_draft_and_error",
			page: dashboard.Page{
				ActiveTab: dashboard.TabOrders,
				Orders:    &view.Snapshot[models.Order]{State: view.StateLoaded, Items: []models.Order{}},
				Form: form.State{
					Open: true,
					Draft: models.OrderDraft{
						ProductName:   "Widget",
						Quantity:      2,
						Price:         "10.5",
						CustomerName:  "Kim",
						CustomerEmail: "kim@x.com",
					},
					Error: "customer email is invalid",
				},
			},
			wantStatusCode: http.StatusOK,
			wantContains: []string{
				"<dialog open>",
				`<div class="alert error" role="alert">customer email is invalid</div>`,
				`name="productName" value="Widget"`,
				`name="quantity" value="2"`,
				`name="price" value="10.5"`,
				`name="customerEmail" value="kim@x.com"`,
			},
			wantMissing: []string{`http-equiv="refresh"`},
		},
		{
			name: "busy_form_disables_buttons",
			page: dashboard.Page{
				ActiveTab: dashboard.TabOrders,
				Form:      form.State{Open: true, Busy: true, Draft: models.NewOrderDraft()},
			},
			wantStatusCode: http.StatusOK,
			wantContains:   []string{"Processing&hellip;", " disabled>"},
		},
		{
			name:           "new_session_renders_loading_without_shell",
			newSession:     true,
			wantStatusCode: http.StatusOK,
			wantContains: []string{
				`<section id="orders">`,
				`<div class="loading">`,
				`<meta http-equiv="refresh" content="5">`,
			},
			wantMissing: []string{"<dialog"},
		},
		{
			name:           "no_session_return_500",
			noSession:      true,
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svcMock := mocks.NewMockDashboardService(ctrl)
			if tt.noSession || tt.newSession {
				svcMock.EXPECT().Page(gomock.Any()).Times(0)
			} else {
				svcMock.EXPECT().Page(testSessionID).Return(tt.page).Times(1)
			}

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			switch {
			case tt.newSession:
				req = withNewSession(req)
			case !tt.noSession:
				req = withSession(req)
			}
			w := httptest.NewRecorder()

			handler := NewDashboardHandler(svcMock, newTestRenderer(t), zap.NewNop())
			handler.Index()(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)
			for _, want := range tt.wantContains {
				assert.Contains(t, string(body), want)
			}
			for _, missing := range tt.wantMissing {
				assert.NotContains(t, string(body), missing)
			}
		})
	}
}

func TestDashboardHandler_PageJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	svcMock := mocks.NewMockDashboardService(ctrl)
	svcMock.EXPECT().Page(testSessionID).Return(dashboard.Page{
		ActiveTab:  dashboard.TabPayments,
		RefreshKey: 3,
		Payments:   &view.Snapshot[models.Payment]{State: view.StateError, Items: []models.Payment{}, Error: "boom"},
	})

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	w := httptest.NewRecorder()

	NewDashboardHandler(svcMock, newTestRenderer(t), zap.NewNop()).PageJSON()(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Equal(t, "payments", got["activeTab"])
	assert.Equal(t, float64(3), got["refreshKey"])
	assert.NotContains(t, got, "orders")
	payments, ok := got["payments"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ERROR", payments["state"])
	assert.Equal(t, "boom", payments["error"])
}

func TestDashboardHandler_SelectTab(t *testing.T) {
	tests := []struct {
		name           string
		tab            string
		setup          func(svc *mocks.MockDashboardService)
		wantStatusCode int
	}{
		{
			name: "payments_return_303",
			tab:  "payments",
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().SelectTab(testSessionID, dashboard.TabPayments).Times(1)
			},
			wantStatusCode: http.StatusSeeOther,
		},
		{
			name: "orders_return_303",
			tab:  "orders",
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().SelectTab(testSessionID, dashboard.TabOrders).Times(1)
			},
			wantStatusCode: http.StatusSeeOther,
		},
		{
			name: "unknown_tab_return_400",
			tab:  "refunds",
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().SelectTab(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svcMock := mocks.NewMockDashboardService(ctrl)
			tt.setup(svcMock)

			req := httptest.NewRequest(http.MethodPost, "/tabs/"+tt.tab, nil)
			req = withSession(withURLParam(req, "tab", tt.tab))
			w := httptest.NewRecorder()

			NewDashboardHandler(svcMock, newTestRenderer(t), zap.NewNop()).SelectTab()(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
			if tt.wantStatusCode == http.StatusSeeOther {
				assert.Equal(t, "/", res.Header.Get("Location"))
			}
		})
	}
}

func TestDashboardHandler_FormActions(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(svc *mocks.MockDashboardService)
		handler func(dh *DashboardHandler) http.HandlerFunc
	}{
		{
			name: "open_form",
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().OpenForm(testSessionID).Times(1)
			},
			handler: func(dh *DashboardHandler) http.HandlerFunc { return dh.OpenForm() },
		},
		{
			name: "close_form",
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().CloseForm(testSessionID).Times(1)
			},
			handler: func(dh *DashboardHandler) http.HandlerFunc { return dh.CloseForm() },
		},
		{
			name: "refresh",
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().Refresh(testSessionID).Times(1)
			},
			handler: func(dh *DashboardHandler) http.HandlerFunc { return dh.Refresh() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svcMock := mocks.NewMockDashboardService(ctrl)
			tt.setup(svcMock)

			req := withSession(httptest.NewRequest(http.MethodPost, "/", nil))
			w := httptest.NewRecorder()

			tt.handler(NewDashboardHandler(svcMock, newTestRenderer(t), zap.NewNop()))(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, http.StatusSeeOther, res.StatusCode)
		})
	}
}

func TestDashboardHandler_NewSessionActions(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no call reaches the session registry
	svcMock := mocks.NewMockDashboardService(ctrl)
	dh := NewDashboardHandler(svcMock, newTestRenderer(t), zap.NewNop())

	tests := []struct {
		name    string
		req     *http.Request
		handler http.HandlerFunc
	}{
		{
			name:    "select_tab",
			req:     withURLParam(httptest.NewRequest(http.MethodPost, "/tabs/payments", nil), "tab", "payments"),
			handler: dh.SelectTab(),
		},
		{
			name:    "open_form",
			req:     httptest.NewRequest(http.MethodPost, "/orders/form", nil),
			handler: dh.OpenForm(),
		},
		{
			name:    "close_form",
			req:     httptest.NewRequest(http.MethodPost, "/orders/form/close", nil),
			handler: dh.CloseForm(),
		},
		{
			name:    "refresh",
			req:     httptest.NewRequest(http.MethodPost, "/refresh", nil),
			handler: dh.Refresh(),
		},
		{
			name:    "submit_order",
			req:     httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("productName=Widget")),
			handler: dh.SubmitOrder(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := httptest.NewRecorder()

			tt.handler(w, withNewSession(tt.req))

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, http.StatusSeeOther, res.StatusCode)
			assert.Equal(t, "/", res.Header.Get("Location"))
		})
	}

	w := httptest.NewRecorder()
	dh.PageJSON()(w, withNewSession(httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)))
	res := w.Result()
	defer res.Body.Close()

	var got dashboard.Page
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Equal(t, dashboard.TabOrders, got.ActiveTab)
	require.NotNil(t, got.Orders)
	assert.Equal(t, view.StateLoading, got.Orders.State)
}

func TestDashboardHandler_SubmitOrder(t *testing.T) {
	widgetForm := url.Values{
		"productName":   {"Widget"},
		"quantity":      {"2"},
		"price":         {"10.5"},
		"customerName":  {"Kim"},
		"customerEmail": {"kim@x.com"},
		"unexpected":    {"ignored"},
	}
	widgetFields := map[string]string{
		"productName":   "Widget",
		"quantity":      "2",
		"price":         "10.5",
		"customerName":  "Kim",
		"customerEmail": "kim@x.com",
	}

	tests := []struct {
		name           string
		body           string
		setup          func(svc *mocks.MockDashboardService)
		wantStatusCode int
	}{
		{
			name: "created_return_303",
			body: widgetForm.Encode(),
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().SubmitOrder(gomock.Any(), testSessionID, widgetFields).
					Return(&models.Order{OrderNumber: "ORD-1"}, nil).Times(1)
			},
			wantStatusCode: http.StatusSeeOther,
		},
		{
			name: "service_error_return_303",
			body: widgetForm.Encode(),
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().SubmitOrder(gomock.Any(), testSessionID, widgetFields).
					Return(nil, models.NewAPIError(http.StatusInternalServerError, "")).Times(1)
			},
			wantStatusCode: http.StatusSeeOther,
		},
		{
			name: "invalid_draft_return_303",
			body: url.Values{"price": {"-1"}}.Encode(),
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().SubmitOrder(gomock.Any(), testSessionID, map[string]string{"price": "-1"}).
					Return(nil, models.ErrInvalidDraft).Times(1)
			},
			wantStatusCode: http.StatusSeeOther,
		},
		{
			name: "closed_form_return_303",
			body: widgetForm.Encode(),
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().SubmitOrder(gomock.Any(), testSessionID, widgetFields).
					Return(nil, models.ErrFormClosed).Times(1)
			},
			wantStatusCode: http.StatusSeeOther,
		},
		{
			name: "submission_in_progress_return_409",
			body: widgetForm.Encode(),
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().SubmitOrder(gomock.Any(), testSessionID, widgetFields).
					Return(nil, models.ErrSubmitInProgress).Times(1)
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name: "malformed_body_return_400",
			body: "productName=%zz",
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().SubmitOrder(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svcMock := mocks.NewMockDashboardService(ctrl)
			tt.setup(svcMock)

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			req = withSession(req)
			w := httptest.NewRecorder()

			NewDashboardHandler(svcMock, newTestRenderer(t), zap.NewNop()).SubmitOrder()(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
		})
	}
}

func TestRenderer_FormatAmount(t *testing.T) {
	rd := newTestRenderer(t)

	tests := []struct {
		value float64
		want  string
	}{
		{value: 0, want: "₩0"},
		{value: 21000, want: "₩21,000"},
		{value: 10.5, want: "₩10.5"},
		{value: 1234567.25, want: "₩1,234,567.25"},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, rd.formatAmount(tt.value)); diff != "" {
			t.Errorf("formatAmount(%v) mismatch (-want +got):\n%s", tt.value, diff)
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	assert.Equal(t, "-", formatDateTime(models.Timestamp{}))
	assert.Equal(t, "2025-01-02 10:20:30", formatDateTime(createdAt()))
}
