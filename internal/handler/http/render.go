package handler

import (
	"embed"
	"github.com/rookgm/orderdash/internal/dashboard"
	"github.com/rookgm/orderdash/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"html/template"
	"io"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

const dateTimeLayout = "2006-01-02 15:04:05"

// Renderer renders dashboard pages
type Renderer struct {
	tmpl          *template.Template
	printer       *message.Printer
	currency      string
	reloadSeconds int
}

// NewRenderer creates new Renderer. Pages reload every reloadEvery while the form is closed.
func NewRenderer(currency string, reloadEvery time.Duration) (*Renderer, error) {
	rd := &Renderer{
		printer:       message.NewPrinter(language.English),
		currency:      currency,
		reloadSeconds: int(reloadEvery.Round(time.Second) / time.Second),
	}
	if rd.reloadSeconds < 1 {
		rd.reloadSeconds = 1
	}

	tmpl, err := template.New("dashboard").Funcs(template.FuncMap{
		"orderBadge":   models.OrderStatusBadge,
		"paymentBadge": models.PaymentStatusBadge,
		"methodBadge":  models.PaymentMethodBadge,
		"amount":       rd.formatAmount,
		"datetime":     formatDateTime,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	rd.tmpl = tmpl
	return rd, nil
}

type pageData struct {
	dashboard.Page
	ReloadSeconds int
}

// Render writes dashboard page
func (rd *Renderer) Render(w io.Writer, page dashboard.Page) error {
	return rd.tmpl.ExecuteTemplate(w, "dashboard.html", pageData{
		Page:          page,
		ReloadSeconds: rd.reloadSeconds,
	})
}

// formatAmount formats amount with thousands grouping and currency symbol
func (rd *Renderer) formatAmount(v float64) string {
	return rd.currency + rd.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

func formatDateTime(ts models.Timestamp) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Format(dateTimeLayout)
}
