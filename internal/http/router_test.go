package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tillbookHttp "github.com/MrJamesThe3rd/tillbook/internal/http"
	"github.com/MrJamesThe3rd/tillbook/internal/http/admin"
	"github.com/MrJamesThe3rd/tillbook/internal/http/cash"
	"github.com/MrJamesThe3rd/tillbook/internal/http/dashboard"
	"github.com/MrJamesThe3rd/tillbook/internal/http/export"
	"github.com/MrJamesThe3rd/tillbook/internal/http/report"
	"github.com/MrJamesThe3rd/tillbook/internal/owner"
)

func TestRouter_InvalidOwnerIsJSON(t *testing.T) {
	router := tillbookHttp.New(
		[]string{"http://localhost:3000"},
		uuid.Nil,
		cash.NewHandler(nil),
		export.NewHandler(nil),
		report.NewHandler(nil),
		dashboard.NewHandler(nil),
		admin.NewHandler(nil),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cash/denominations", nil)
	req.Header.Set(owner.Header, "not-a-uuid")
	req.Header.Set("Accept-Language", "en")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "invalid_owner", body["code"])
	assert.NotEmpty(t, body["error"])
}

func TestRouter_ValidOwnerReachesHandler(t *testing.T) {
	router := tillbookHttp.New(nil, uuid.Nil,
		cash.NewHandler(nil), export.NewHandler(nil), report.NewHandler(nil),
		dashboard.NewHandler(nil), admin.NewHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cash/denominations", nil)
	req.Header.Set(owner.Header, uuid.NewString())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
