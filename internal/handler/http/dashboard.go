package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/rookgm/orderdash/internal/dashboard"
	"github.com/rookgm/orderdash/internal/middleware"
	"github.com/rookgm/orderdash/internal/models"
	"go.uber.org/zap"
	"net/http"
)

//go:generate mockgen -source=dashboard.go -destination=mocks/dashboard.go -package=mocks

type DashboardService interface {
	// Page returns dashboard page of session
	Page(sessionID string) dashboard.Page
	// SelectTab switches the active tab of session
	SelectTab(sessionID string, tab dashboard.Tab)
	// OpenForm shows the order form of session
	OpenForm(sessionID string)
	// CloseForm hides the order form of session
	CloseForm(sessionID string)
	// SubmitOrder submits the order form of session
	SubmitOrder(ctx context.Context, sessionID string, fields map[string]string) (*models.Order, error)
	// Refresh remounts the active view of session
	Refresh(sessionID string)
}

// DashboardHandler represents HTTP handler for dashboard pages and actions
type DashboardHandler struct {
	svc      DashboardService
	renderer *Renderer
	logger   *zap.Logger
}

// NewDashboardHandler creates new DashboardHandler instance
func NewDashboardHandler(svc DashboardService, renderer *Renderer, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		svc:      svc,
		renderer: renderer,
		logger:   logger,
	}
}

// Index renders dashboard page
// 200 — страница сформирована;
// 500 — внутренняя ошибка сервера.
func (dh *DashboardHandler) Index() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := middleware.SessionID(r.Context())
		if !ok {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		if err := dh.renderer.Render(&buf, dh.page(r, sessionID)); err != nil {
			dh.logger.Error("render dashboard",
				zap.String("request_id", middleware.RequestID(r.Context())),
				zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		buf.WriteTo(w)
	}
}

// PageJSON returns dashboard state of session as JSON
// 200 — успешная обработка запроса;
// 500 — внутренняя ошибка сервера.
func (dh *DashboardHandler) PageJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := middleware.SessionID(r.Context())
		if !ok {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(dh.page(r, sessionID)); err != nil {
			return
		}
	}
}

// SelectTab switches tab
// 303 — вкладка переключена;
// 400 — неизвестная вкладка;
// 500 — внутренняя ошибка сервера.
func (dh *DashboardHandler) SelectTab() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := middleware.SessionID(r.Context())
		if !ok {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		tab, err := dashboard.ParseTab(chi.URLParam(r, "tab"))
		if err != nil {
			http.Error(w, "unknown tab", http.StatusBadRequest)
			return
		}

		if !middleware.NewSession(r.Context()) {
			dh.svc.SelectTab(sessionID, tab)
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// OpenForm shows order form
// 303 — форма открыта;
// 500 — внутренняя ошибка сервера.
func (dh *DashboardHandler) OpenForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := middleware.SessionID(r.Context())
		if !ok {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if !middleware.NewSession(r.Context()) {
			dh.svc.OpenForm(sessionID)
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// CloseForm hides order form
// 303 — форма закрыта;
// 500 — внутренняя ошибка сервера.
func (dh *DashboardHandler) CloseForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := middleware.SessionID(r.Context())
		if !ok {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if !middleware.NewSession(r.Context()) {
			dh.svc.CloseForm(sessionID)
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// SubmitOrder submits order form. Failures are kept in form state
// and shown on the redirected page.
// 303 — форма обработана;
// 400 — неверный формат запроса;
// 409 — заказ уже отправляется;
// 500 — внутренняя ошибка сервера.
func (dh *DashboardHandler) SubmitOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := middleware.SessionID(r.Context())
		if !ok {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		// a new session has no open form
		if middleware.NewSession(r.Context()) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		fields := make(map[string]string, len(models.DraftFields))
		for _, name := range models.DraftFields {
			if _, ok := r.PostForm[name]; ok {
				fields[name] = r.PostForm.Get(name)
			}
		}

		order, err := dh.svc.SubmitOrder(r.Context(), sessionID, fields)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrSubmitInProgress):
				http.Error(w, "order submission in progress", http.StatusConflict)
				return
			case errors.Is(err, models.ErrInvalidDraft), errors.Is(err, models.ErrFormClosed):
				// nothing to log, draft errors are shown in the form
			default:
				dh.logger.Warn("order submission failed",
					zap.String("request_id", middleware.RequestID(r.Context())),
					zap.Error(err))
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		dh.logger.Info("order submitted",
			zap.String("request_id", middleware.RequestID(r.Context())),
			zap.String("number", order.OrderNumber))
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// page returns dashboard page of session. A session issued by this request
// gets the initial page, its shell starts once the browser sends the cookie back.
func (dh *DashboardHandler) page(r *http.Request, sessionID string) dashboard.Page {
	if middleware.NewSession(r.Context()) {
		return dashboard.InitialPage()
	}
	return dh.svc.Page(sessionID)
}

// Refresh remounts the active list
// 303 — список перезапущен;
// 500 — внутренняя ошибка сервера.
func (dh *DashboardHandler) Refresh() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := middleware.SessionID(r.Context())
		if !ok {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if !middleware.NewSession(r.Context()) {
			dh.svc.Refresh(sessionID)
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
