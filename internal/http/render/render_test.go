package render_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/tillbook/internal/cash"
	"github.com/MrJamesThe3rd/tillbook/internal/http/render"
	"github.com/MrJamesThe3rd/tillbook/internal/report"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	return body
}

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		lang       string
		wantStatus int
		wantCode   string
		wantText   string
	}{
		{"Validation", cash.ErrExceedsAvailableCash, "", http.StatusUnprocessableEntity, "exceeds_available_cash", "Teslim edilecek miktar kasadaki nakitten fazla olamaz."},
		{"ValidationEnglish", cash.ErrMissingRecipient, "en", http.StatusUnprocessableEntity, "missing_recipient", "Enter a recipient."},
		{"NotFound", cash.ErrNotFound, "en", http.StatusNotFound, "not_found", "Record not found."},
		{"ReportNotFound", report.ErrNotFound, "en", http.StatusNotFound, "not_found", "Record not found."},
		{"InvalidReport", report.ErrInvalidReport, "en", http.StatusUnprocessableEntity, "invalid_report", "A report name is required."},
		{"Persistence", &cash.PersistenceError{Op: "x", Err: errors.New("pq: password leaked")}, "en", http.StatusInternalServerError, "operation_failed", "The operation failed. Please try again."},
		{"LoadFailure", &cash.PersistenceError{Op: "x", Err: errors.New("pq: timeout"), Read: true}, "en", http.StatusInternalServerError, "load_failed", "Could not load data."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.lang != "" {
				req.Header.Set("Accept-Language", tt.lang)
			}

			rec := httptest.NewRecorder()
			render.Error(rec, req, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body["code"])
			assert.Equal(t, tt.wantText, body["error"])
		})
	}
}

type sample struct {
	Name string `json:"name" validate:"required"`
}

func TestDecode(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ali"}`))
		rec := httptest.NewRecorder()

		var s sample
		assert.True(t, render.Decode(rec, req, &s))
		assert.Equal(t, "Ali", s.Name)
	})

	t.Run("fails validation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()

		var s sample
		assert.False(t, render.Decode(rec, req, &s))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_request", decodeError(t, rec)["code"])
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
		rec := httptest.NewRecorder()

		var s sample
		assert.False(t, render.Decode(rec, req, &s))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?page=3&size=abc&limit=-1", nil)

	assert.Equal(t, 3, render.IntQuery(req, "page", 1))
	assert.Equal(t, 10, render.IntQuery(req, "size", 10))
	assert.Equal(t, 5, render.IntQuery(req, "limit", 5))
	assert.Equal(t, 7, render.IntQuery(req, "missing", 7))
}
