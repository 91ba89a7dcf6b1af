package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/tillbook/internal/http/render"
	"github.com/MrJamesThe3rd/tillbook/internal/locale"
	"github.com/MrJamesThe3rd/tillbook/internal/reset"
)

type Handler struct {
	svc *reset.Service
}

func NewHandler(svc *reset.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Delete("/data", h.resetData)
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) resetData(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetAll(r.Context()); err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, messageResponse{Message: render.Printer(r).Text(locale.DataReset)})
}
