package dashboard

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tillbook/internal/cash"
	"github.com/MrJamesThe3rd/tillbook/internal/dashboard"
	"github.com/MrJamesThe3rd/tillbook/internal/http/render"
	"github.com/MrJamesThe3rd/tillbook/internal/report"
)

type Handler struct {
	svc *dashboard.Service
	now func() time.Time
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/today", h.today)
	r.Get("/activity", h.activity)
	r.Get("/reports", h.reports)
	r.Get("/low-stock", h.lowStock)
}

func (h *Handler) today(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.TodayStats(r.Context(), h.now())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, stats)
}

type activityResponse struct {
	ID        uuid.UUID              `json:"id"`
	Type      dashboard.ActivityKind `json:"type"`
	Amount    decimal.Decimal        `json:"amount"`
	Timestamp time.Time              `json:"timestamp"`
	Status    cash.Status            `json:"status"`
	Detail    string                 `json:"detail,omitempty"`
}

func (h *Handler) activity(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.RecentActivity(r.Context(), render.IntQuery(r, "limit", dashboard.DefaultLimit))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	resp := make([]activityResponse, len(items))
	for i, a := range items {
		resp[i] = activityResponse{
			ID:        a.ID,
			Type:      a.Kind,
			Amount:    a.Amount,
			Timestamp: a.Timestamp,
			Status:    a.Status,
			Detail:    a.Detail,
		}
	}

	render.JSON(w, http.StatusOK, resp)
}

type reportResponse struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Date      string        `json:"date"`
	ItemCount int           `json:"item_count"`
	Status    report.Status `json:"status"`
}

func (h *Handler) reports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.svc.RecentReports(r.Context(), render.IntQuery(r, "limit", dashboard.DefaultLimit))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	resp := make([]reportResponse, len(reports))
	for i, rep := range reports {
		resp[i] = reportResponse{
			ID:        rep.ID,
			Name:      rep.Name,
			Date:      rep.Date.Format(time.DateOnly),
			ItemCount: rep.ItemCount,
			Status:    rep.Status,
		}
	}

	render.JSON(w, http.StatusOK, resp)
}

type lowStockResponse struct {
	ProductName  string             `json:"product_name"`
	CurrentStock int                `json:"current_stock"`
	MinimumStock int                `json:"minimum_stock"`
	Status       report.StockStatus `json:"status"`
}

func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.LowStock(r.Context(), render.IntQuery(r, "limit", dashboard.DefaultLimit))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	resp := make([]lowStockResponse, len(items))
	for i, it := range items {
		resp[i] = lowStockResponse{
			ProductName:  it.ProductName,
			CurrentStock: it.CurrentStock,
			MinimumStock: it.MinimumStock,
			Status:       it.Status,
		}
	}

	render.JSON(w, http.StatusOK, resp)
}
