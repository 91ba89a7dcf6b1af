package admin_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/tillbook/internal/http/admin"
	"github.com/MrJamesThe3rd/tillbook/internal/reset"
)

type repoFunc func(ctx context.Context) error

func (f repoFunc) DeleteAll(ctx context.Context) error { return f(ctx) }

func TestHandler_ResetData(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "success", wantStatus: http.StatusOK, wantBody: `"message"`},
		{name: "failure", err: errors.New("db down"), wantStatus: http.StatusInternalServerError, wantBody: `"code":"operation_failed"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			svc := reset.NewService(repoFunc(func(context.Context) error {
				calls++
				return tt.err
			}), nil)

			r := chi.NewRouter()
			r.Route("/admin", admin.NewHandler(svc).Routes)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/admin/data", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotContains(t, rec.Body.String(), "db down")
			assert.Equal(t, 1, calls)
		})
	}
}
