package owner_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/tillbook/internal/owner"
)

func TestMiddleware(t *testing.T) {
	fallback := uuid.New()
	explicit := uuid.New()

	var seen uuid.UUID

	invalid := func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}

	h := owner.Middleware(fallback, invalid)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = owner.FromContext(r.Context())
		}),
	)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantOwner  uuid.UUID
	}{
		{"NoHeader", "", http.StatusOK, fallback},
		{"Header", explicit.String(), http.StatusOK, explicit},
		{"Malformed", "not-a-uuid", http.StatusBadRequest, uuid.Nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = uuid.Nil

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(owner.Header, tt.header)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOwner, seen)
		})
	}
}

func TestFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, uuid.Nil, owner.FromContext(req.Context()))
}
