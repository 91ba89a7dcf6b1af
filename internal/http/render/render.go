// Package render holds the JSON and error plumbing shared by the HTTP handlers.
package render

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/MrJamesThe3rd/tillbook/internal/cash"
	"github.com/MrJamesThe3rd/tillbook/internal/locale"
	"github.com/MrJamesThe3rd/tillbook/internal/report"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Printer returns the message printer for the request's Accept-Language.
func Printer(r *http.Request) *locale.Printer {
	return locale.NewPrinter(locale.Match(r.Header.Get("Accept-Language")))
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Decode reads a JSON body into dst and validates its struct tags. On failure
// it writes a 400 response and returns false.
func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		BadRequest(w, r)
		return false
	}

	return Validate(w, r, dst)
}

// Validate checks struct tags on v. On failure it writes a 400 response and returns false.
func Validate(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := validate.Struct(v); err != nil {
		slog.Debug("request validation failed", "error", err)
		BadRequest(w, r)

		return false
	}

	return true
}

func BadRequest(w http.ResponseWriter, r *http.Request) {
	Reject(w, r, http.StatusBadRequest, locale.InvalidRequest)
}

// Reject writes the localized error body for key with status.
func Reject(w http.ResponseWriter, r *http.Request, status int, key locale.Key) {
	JSON(w, status, errorResponse{
		Error: Printer(r).Text(key),
		Code:  string(key),
	})
}

// Error maps err to a status code and a localized message. Causes of server
// errors are logged, never written to the client.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	key := locale.ErrorKey(err)

	status := http.StatusInternalServerError

	var verr *cash.ValidationError

	switch {
	case errors.As(err, &verr), errors.Is(err, report.ErrInvalidReport):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, cash.ErrNotFound), errors.Is(err, report.ErrNotFound):
		status = http.StatusNotFound
	default:
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	Reject(w, r, status, key)
}

// IntQuery reads a positive integer query parameter, returning def when it is
// absent or malformed.
func IntQuery(r *http.Request, name string, def int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || n <= 0 {
		return def
	}

	return n
}
