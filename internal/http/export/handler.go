package export

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/tillbook/internal/cash"
	"github.com/MrJamesThe3rd/tillbook/internal/export"
	"github.com/MrJamesThe3rd/tillbook/internal/http/render"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.download)
	r.Get("/summary", h.summary)
}

// rangeFrom reads start_date and end_date (YYYY-MM-DD). The end date is inclusive.
func rangeFrom(r *http.Request) (cash.Range, bool) {
	var rng cash.Range

	if s := r.URL.Query().Get("start_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return rng, false
		}

		start := t
		rng.Start = &start
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return rng, false
		}

		end := t.Add(24*time.Hour - time.Nanosecond)
		rng.End = &end
	}

	return rng, true
}

type summaryResponse struct {
	Summary string `json:"summary"`
	Count   int    `json:"count"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	rng, ok := rangeFrom(r)
	if !ok {
		render.BadRequest(w, r)
		return
	}

	items, err := h.svc.Export(r.Context(), rng)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, summaryResponse{
		Summary: h.svc.GenerateSummary(render.Printer(r), items),
		Count:   len(items),
	})
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	rng, ok := rangeFrom(r)
	if !ok {
		render.BadRequest(w, r)
		return
	}

	items, err := h.svc.Export(r.Context(), rng)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := h.svc.WriteWorkbook(&buf, items); err != nil {
		render.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"tillbook_%s.xlsx\"", time.Now().Format("20060102")))

	_, _ = buf.WriteTo(w)
}
