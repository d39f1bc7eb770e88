// Package respond holds the JSON helpers shared by every HTTP handler.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/dates"
	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/money"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Status maps a service error to its HTTP status code.
func Status(err error) int {
	var verr *errs.ValidationError

	switch {
	case errors.As(err, &verr), errors.Is(err, errs.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAlreadyPaid), errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as a JSON error body. Internal errors are logged and replaced by a generic message.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := Status(err)

	if status == http.StatusInternalServerError {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		JSON(w, status, errorResponse{Error: "internal error"})

		return
	}

	resp := errorResponse{Error: err.Error()}

	var verr *errs.ValidationError
	if errors.As(err, &verr) {
		resp.Field = verr.Field
	}

	JSON(w, status, resp)
}

// Decode reads a JSON body into v, rejecting unknown fields.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return errs.Invalid("body", err.Error())
	}

	return nil
}

// ID parses the UUID route parameter name.
func ID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, errs.Invalid(name, "must be a UUID")
	}

	return id, nil
}

// Date parses a required YYYY-MM-DD value.
func Date(field, s string) (time.Time, error) {
	d, err := dates.Parse(s)
	if err != nil {
		return time.Time{}, errs.Invalid(field, "must be a YYYY-MM-DD date")
	}

	return d, nil
}

// OptionalDate parses a YYYY-MM-DD value, returning nil for an empty one.
func OptionalDate(field, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}

	d, err := Date(field, s)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

// OptionalAmount parses a decimal amount query value into cents, returning nil for an empty one.
func OptionalAmount(field, s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}

	cents, err := money.Parse(s)
	if err != nil {
		return nil, errs.Invalid(field, "must be a non-negative amount")
	}

	return &cents, nil
}

// Int parses an optional integer query value, returning def when it is empty.
func Int(field, s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errs.Invalid(field, fmt.Sprintf("%q is not a number", s))
	}

	return n, nil
}

// DateString formats d as YYYY-MM-DD.
func DateString(d time.Time) string {
	return dates.Format(d)
}

// OptionalDateString formats d, returning nil for nil.
func OptionalDateString(d *time.Time) *string {
	if d == nil {
		return nil
	}

	return new(dates.Format(*d))
}
