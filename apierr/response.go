package apierr

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 8192

// FromResponse reads (at most maxErrorBody bytes of) resp.Body, closes it and
// parses it with the response status. It is meant for non-2xx responses.
func FromResponse(resp *http.Response) *APIError {
	if resp == nil {
		return Unknown()
	}
	if resp.Body == nil {
		return Parse(nil, resp.StatusCode)
	}
	defer resp.Body.Close()

	slurp, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		trimmed := strings.TrimSpace(string(slurp))
		e := Mapping(trimmed)
		e.StatusCode = resp.StatusCode
		e.Raw = trimmed
		e.Cause = err
		return e
	}
	return Parse(slurp, resp.StatusCode)
}

// FromError converts an error returned while performing a request into an
// APIError. An *APIError already in the chain is returned as is. Otherwise
// the result is synthetic and keeps err as its Cause.
func FromError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var e *APIError
	switch {
	case errors.Is(err, context.Canceled):
		e = Cancelled()
	case isConnectivity(err):
		e = NoInternet()
	default:
		e = Unknown()
		e.Description = err.Error()
	}
	e.Cause = err
	return e
}

// As finds the first *APIError in err's chain.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func isConnectivity(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var to interface{ Timeout() bool }
	if errors.As(err, &to) && to.Timeout() {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH)
}
