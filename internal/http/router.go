package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tillbook/internal/http/admin"
	"github.com/MrJamesThe3rd/tillbook/internal/http/cash"
	"github.com/MrJamesThe3rd/tillbook/internal/http/dashboard"
	"github.com/MrJamesThe3rd/tillbook/internal/http/export"
	"github.com/MrJamesThe3rd/tillbook/internal/http/render"
	"github.com/MrJamesThe3rd/tillbook/internal/http/report"
	"github.com/MrJamesThe3rd/tillbook/internal/locale"
	"github.com/MrJamesThe3rd/tillbook/internal/owner"
)

func New(
	allowedOrigins []string,
	fallbackOwner uuid.UUID,
	cashV1 *cash.Handler,
	exportV1 *export.Handler,
	reportV1 *report.Handler,
	dashboardV1 *dashboard.Handler,
	adminV1 *admin.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Content-Type", owner.Header},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(owner.Middleware(fallbackOwner, func(w http.ResponseWriter, r *http.Request) {
			render.Reject(w, r, http.StatusBadRequest, locale.InvalidOwner)
		}))

		r.Route("/cash", func(r chi.Router) {
			r.Route("/export", exportV1.Routes)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				cashV1.Routes(r)
			})
		})

		r.Route("/reports", reportV1.Routes)

		r.Route("/stock", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			reportV1.StockRoutes(r)
		})

		r.Route("/dashboard", dashboardV1.Routes)
		r.Route("/admin", adminV1.Routes)
	})

	return router
}
