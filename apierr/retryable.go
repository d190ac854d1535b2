package apierr

import (
	"context"
	"errors"
	"io"
	"net/http"
	"syscall"
)

// IsRetryable says "worth another shot?". Backoff and the retry itself stay
// with the caller.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}

	// timeouts from net/http, http2, tls, etc.
	var to interface{ Timeout() bool }
	if errors.As(err, &to) && to.Timeout() {
		return true
	}

	// flaky connections / short reads
	if errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	apiErr, ok := As(err)
	if !ok {
		return false
	}
	if apiErr.IsCancelled() {
		return false
	}
	switch apiErr.Err {
	case CodeNoInternet, CodeInternalServerError:
		return true
	}
	switch apiErr.StatusCode {
	case http.StatusRequestTimeout, // 408
		http.StatusTooEarly,            // 425
		http.StatusTooManyRequests,     // 429
		http.StatusInternalServerError, // 500
		http.StatusBadGateway,          // 502
		http.StatusServiceUnavailable,  // 503
		http.StatusGatewayTimeout:      // 504
		return true
	}
	return false
}
