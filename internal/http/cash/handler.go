package cash

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tillbook/internal/cash"
	"github.com/MrJamesThe3rd/tillbook/internal/http/render"
	"github.com/MrJamesThe3rd/tillbook/internal/locale"
	"github.com/MrJamesThe3rd/tillbook/internal/owner"
)

type Handler struct {
	svc *cash.Service
}

func NewHandler(svc *cash.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/denominations", h.denominations)
	r.Post("/ledger/preview", h.preview)

	r.Post("/counts", h.createCount)
	r.Get("/counts", h.listCounts)
	r.Get("/counts/latest", h.latestBalance)
	r.Get("/counts/{id}", h.getCount)

	r.Post("/deliveries", h.createDelivery)
	r.Get("/deliveries", h.listDeliveries)
	r.Get("/deliveries/recent", h.recentDeliveries)
}

// ledgerFrom applies counts keyed by denomination id to a fresh ledger.
func ledgerFrom(counts map[string]int) (*cash.Ledger, error) {
	l := cash.TurkishLira()

	for id, n := range counts {
		if err := l.SetCount(id, n); err != nil {
			return nil, err
		}
	}

	return l, nil
}

func (h *Handler) denominations(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, http.StatusOK, toLedgerResponse(cash.TurkishLira(), decimal.Zero).Denominations)
}

type previewRequest struct {
	Counts         map[string]int   `json:"counts"`
	PreviousAmount *decimal.Decimal `json:"previous_amount,omitempty"`
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if !render.Decode(w, r, &req) {
		return
	}

	l, err := ledgerFrom(req.Counts)
	if err != nil {
		render.BadRequest(w, r)
		return
	}

	previous := decimal.Zero
	if req.PreviousAmount != nil {
		previous = *req.PreviousAmount
	}

	render.JSON(w, http.StatusOK, toLedgerResponse(l, previous))
}

type createCountRequest struct {
	Counts map[string]int `json:"counts" validate:"required"`
	// PreviousAmount is loaded from the latest count when omitted.
	PreviousAmount *decimal.Decimal `json:"previous_amount,omitempty"`
	Note           string           `json:"note" validate:"max=1000"`
	Timestamp      *time.Time       `json:"timestamp,omitempty"`
}

func (h *Handler) createCount(w http.ResponseWriter, r *http.Request) {
	var req createCountRequest
	if !render.Decode(w, r, &req) {
		return
	}

	l, err := ledgerFrom(req.Counts)
	if err != nil {
		render.BadRequest(w, r)
		return
	}

	var previous decimal.Decimal
	if req.PreviousAmount != nil {
		previous = *req.PreviousAmount
	} else {
		previous, err = h.svc.LoadPreviousBalance(r.Context())
		if err != nil {
			render.Error(w, r, err)
			return
		}
	}

	params := cash.ReconcileParams{
		OwnerID:        owner.FromContext(r.Context()),
		Entries:        l.Entries(),
		PreviousAmount: previous,
		Note:           req.Note,
	}

	if req.Timestamp != nil {
		params.Timestamp = *req.Timestamp
	}

	result, err := h.svc.SubmitReconciliation(r.Context(), params)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	msg := locale.CountSaved
	if !result.Complete() {
		msg = locale.DetailsNotSaved
	}

	render.JSON(w, http.StatusCreated, reconcileResponse{
		Count:    toCountResponse(result.Count),
		Details:  toDetailResponses(result.Details),
		Complete: result.Complete(),
		Message:  render.Printer(r).Text(msg),
	})
}

func pageFrom(r *http.Request) cash.Page {
	return cash.Page{
		Number: render.IntQuery(r, "page", 1),
		Size:   render.IntQuery(r, "size", 10),
	}
}

func (h *Handler) listCounts(w http.ResponseWriter, r *http.Request) {
	page := pageFrom(r)

	result, err := h.svc.CountHistory(r.Context(), page)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	items := make([]countResponse, len(result.Items))
	for i, c := range result.Items {
		items[i] = toCountResponse(c)
	}

	render.JSON(w, http.StatusOK, pageResponse[countResponse]{
		Items: items,
		Total: result.Total,
		Page:  page.Number,
		Size:  min(page.Size, 100),
	})
}

type balanceResponse struct {
	PreviousBalance decimal.Decimal `json:"previous_balance"`
}

func (h *Handler) latestBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.svc.LoadPreviousBalance(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, balanceResponse{PreviousBalance: balance})
}

func (h *Handler) getCount(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.BadRequest(w, r)
		return
	}

	c, details, err := h.svc.CountDetails(r.Context(), id)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, countDetailsResponse{
		Count:   toCountResponse(c),
		Details: toDetailResponses(details),
	})
}

type createDeliveryRequest struct {
	Amount    *decimal.Decimal `json:"amount" validate:"required"`
	Recipient string           `json:"recipient" validate:"max=200"`
	Note      string           `json:"note" validate:"max=1000"`
	Timestamp *time.Time       `json:"timestamp,omitempty"`
	// AvailableCash is the live till total shown to the user.
	AvailableCash *decimal.Decimal `json:"available_cash" validate:"required"`
}

func (h *Handler) createDelivery(w http.ResponseWriter, r *http.Request) {
	var req createDeliveryRequest
	if !render.Decode(w, r, &req) {
		return
	}

	params := cash.DeliveryParams{
		OwnerID:   owner.FromContext(r.Context()),
		Amount:    *req.Amount,
		Recipient: req.Recipient,
		Note:      req.Note,
		Available: *req.AvailableCash,
	}

	if req.Timestamp != nil {
		params.Timestamp = *req.Timestamp
	}

	d, err := h.svc.SubmitDelivery(r.Context(), params)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, toDeliveryResponse(d))
}

func (h *Handler) listDeliveries(w http.ResponseWriter, r *http.Request) {
	page := pageFrom(r)

	result, err := h.svc.DeliveryHistory(r.Context(), page)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, pageResponse[deliveryResponse]{
		Items: toDeliveryResponses(result.Items),
		Total: result.Total,
		Page:  page.Number,
		Size:  min(page.Size, 100),
	})
}

func (h *Handler) recentDeliveries(w http.ResponseWriter, r *http.Request) {
	ds, err := h.svc.LoadRecentDeliveries(r.Context(), render.IntQuery(r, "limit", cash.RecentDeliveriesLimit))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toDeliveryResponses(ds))
}
