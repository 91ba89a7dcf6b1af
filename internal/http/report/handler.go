package report

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tillbook/internal/http/render"
	"github.com/MrJamesThe3rd/tillbook/internal/owner"
	"github.com/MrJamesThe3rd/tillbook/internal/report"
)

// maxUploadSize bounds the multipart body of a report upload.
const maxUploadSize = 32 << 20

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts the report endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.upload)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Get("/{id}/analysis", h.analysis)
	r.Get("/{id}/file", h.file)
}

// StockRoutes mounts the low-stock endpoints.
func (h *Handler) StockRoutes(r chi.Router) {
	r.Get("/low", h.lowStock)
	r.Put("/low", h.upsertLowStock)
}

type uploadForm struct {
	Name      string `validate:"required,max=200"`
	Date      string `validate:"omitempty,datetime=2006-01-02"`
	Category  string `validate:"max=100"`
	ItemCount int    `validate:"gte=0"`
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		render.BadRequest(w, r)
		return
	}

	form := uploadForm{
		Name:     r.FormValue("name"),
		Date:     r.FormValue("date"),
		Category: r.FormValue("category"),
	}

	if s := r.FormValue("item_count"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			render.BadRequest(w, r)
			return
		}

		form.ItemCount = n
	}

	if !render.Validate(w, r, &form) {
		return
	}

	totalValue := decimal.Zero

	if s := r.FormValue("total_value"); s != "" {
		v, err := decimal.NewFromString(s)
		if err != nil {
			render.BadRequest(w, r)
			return
		}

		totalValue = v
	}

	var date time.Time
	if form.Date != "" {
		date, _ = time.Parse(time.DateOnly, form.Date)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		render.BadRequest(w, r)
		return
	}
	defer file.Close()

	rep, err := h.svc.Upload(r.Context(), report.UploadParams{
		OwnerID:    owner.FromContext(r.Context()),
		Name:       form.Name,
		Date:       date,
		Category:   form.Category,
		ItemCount:  form.ItemCount,
		TotalValue: totalValue,
		FileName:   header.Filename,
		File:       file,
	})
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, toReportResponse(rep))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	reports, err := h.svc.List(r.Context(), render.IntQuery(r, "limit", 0))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toReportResponses(reports))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.BadRequest(w, r)
		return
	}

	rep, err := h.svc.Get(r.Context(), id)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toReportResponse(rep))
}

func (h *Handler) analysis(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.BadRequest(w, r)
		return
	}

	a, err := h.svc.Analyze(r.Context(), id)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toAnalysisResponse(a))
}

func (h *Handler) file(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.BadRequest(w, r)
		return
	}

	f, rep, err := h.svc.Open(r.Context(), id)
	if err != nil {
		render.Error(w, r, err)
		return
	}
	defer f.Close()

	name := rep.FileName
	if name == "" {
		name = "report-file"
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))

	if _, err := io.Copy(w, f); err != nil {
		slog.Error("failed to stream report file", "report_id", id, "error", err)
	}
}

func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.LowStock(r.Context(), render.IntQuery(r, "limit", 0))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toLowStockResponses(items))
}

type lowStockRequest struct {
	ProductName  string `json:"product_name" validate:"required,max=200"`
	CurrentStock int    `json:"current_stock" validate:"gte=0"`
	MinimumStock int    `json:"minimum_stock" validate:"gte=0"`
	Category     string `json:"category" validate:"max=100"`
}

func (h *Handler) upsertLowStock(w http.ResponseWriter, r *http.Request) {
	var req lowStockRequest
	if !render.Decode(w, r, &req) {
		return
	}

	item, err := h.svc.UpsertLowStock(r.Context(), report.LowStockParams{
		ProductName:  req.ProductName,
		CurrentStock: req.CurrentStock,
		MinimumStock: req.MinimumStock,
		Category:     req.Category,
	})
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toLowStockResponse(item))
}
