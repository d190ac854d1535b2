// Package apierr defines the error value returned by the backend API and by
// the SDK itself. It captures the machine-readable error code, a
// human-readable description, optional structured payloads, field-level
// validation failures and the HTTP status that produced it.
//
// Values are built either by decoding a JSON error body (Decode, Parse,
// FromResponse) or by one of the factories for client-side conditions
// (NoInternet, Cancelled, ...). They are not mutated afterwards.
package apierr

import (
	"log/slog"
	"net/http"
)

// APIError represents a failed API call. Callers route on the classification
// predicates (IsUnauthorized, IsTokenExpired, ...), all of which look at Err
// only.
type APIError struct {
	// Err is the machine-readable code, e.g. "invalid_grant". Empty when unset.
	Err string

	// Description is the human-readable detail (wire key "error_description").
	Description string

	// StatusCode is the HTTP status. It is never part of the body; adapters
	// and callers attach it. Zero when unknown.
	StatusCode int

	// Properties holds "error_properties" as sent by the server.
	Properties map[string]any

	// Data holds "error_data" untouched; its shape is backend-defined.
	Data any

	// Errors lists field-level validation failures.
	Errors []FieldError

	// Raw is the trimmed response body when the value came from Parse.
	Raw string

	// Cause is the transport error a synthetic value was derived from.
	Cause error

	wire wireKeys
}

// FieldError is a single field-level validation failure.
// A key missing from the payload leaves the matching field empty.
type FieldError struct {
	Code    string
	Field   string
	Message string

	wire wireKeys
}

// Error implements the error interface.
// Format: "<code>: <description>", falling back to whichever part is set and
// finally to the HTTP status text.
func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Err != "" && e.Description != "":
		return e.Err + ": " + e.Description
	case e.Err != "":
		return e.Err
	case e.Description != "":
		return e.Description
	}
	return http.StatusText(e.StatusCode)
}

// Unwrap returns the underlying cause, if any.
func (e *APIError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is reports whether target is an *APIError with the same code. A target
// with a description also has to match it, so
//
//	errors.Is(err, apierr.NoInternet())
//
// works on wrapped errors.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok || e == nil || t == nil {
		return false
	}
	if e.Err != t.Err {
		return false
	}
	return t.Description == "" || t.Description == e.Description
}

// LogValue implements slog.LogValuer.
func (e *APIError) LogValue() slog.Value {
	if e == nil {
		return slog.StringValue("<nil>")
	}
	attrs := make([]slog.Attr, 0, 4)
	if e.Err != "" {
		attrs = append(attrs, slog.String("error", e.Err))
	}
	if e.Description != "" {
		attrs = append(attrs, slog.String("description", e.Description))
	}
	if e.StatusCode != 0 {
		attrs = append(attrs, slog.Int("status", e.StatusCode))
	}
	if len(e.Errors) > 0 {
		attrs = append(attrs, slog.Int("field_errors", len(e.Errors)))
	}
	return slog.GroupValue(attrs...)
}
