// Package owner resolves which user a request acts on behalf of.
package owner

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Header carries the acting owner's id.
const Header = "X-Owner-ID"

type ctxKey struct{}

func WithID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the owner stored by Middleware, or uuid.Nil.
func FromContext(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(ctxKey{}).(uuid.UUID)
	return id
}

// Middleware stores the owner from the X-Owner-ID header, falling back to
// fallback when the header is absent. A malformed header is answered by
// invalid and the chain stops.
func Middleware(fallback uuid.UUID, invalid http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := fallback

			if raw := strings.TrimSpace(r.Header.Get(Header)); raw != "" {
				parsed, err := uuid.Parse(raw)
				if err != nil {
					invalid(w, r)
					return
				}

				id = parsed
			}

			next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
		})
	}
}
