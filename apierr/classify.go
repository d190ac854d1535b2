package apierr

import "slices"

// Codes used by the backend and by the factories below.
const (
	CodeUnknown             = "unknown"
	CodeUnauthorized        = "unauthorized"
	CodeInvalidGrant        = "invalid_grant"
	CodeInvalidTimestamp    = "invalid_timestamp"
	CodeNoInternet          = "no_internet"
	CodeMapping             = "mapping"
	CodeInternalServerError = "internal_server_error"
	CodeCancelled           = "cancelled"
)

const tokenExpiredDescription = "Token has expired"

// descriptions the server pairs with invalid_grant when the refresh token is gone
var refreshExpiryReasons = []string{
	"Refresh token expired",
	"No such refresh token",
	"Refresh token status invalid",
}

func (e *APIError) code() string {
	if e == nil {
		return ""
	}
	return e.Err
}

func (e *APIError) IsUnauthorized() bool {
	return e.code() == CodeUnauthorized
}

// IsRefreshTokenExpired reports an invalid_grant caused by a dead refresh
// token. The user has to log in again.
func (e *APIError) IsRefreshTokenExpired() bool {
	if e.code() != CodeInvalidGrant || e.Description == "" {
		return false
	}
	return slices.Contains(refreshExpiryReasons, e.Description)
}

// IsTokenExpired reports an invalid_grant caused by an expired access token.
func (e *APIError) IsTokenExpired() bool {
	return e.code() == CodeInvalidGrant && e.Description == tokenExpiredDescription
}

func (e *APIError) IsInvalidTimestamp() bool {
	return e.code() == CodeInvalidTimestamp
}

func (e *APIError) IsNoInternet() bool {
	return e.code() == CodeNoInternet
}

func (e *APIError) IsCancelled() bool {
	return e.code() == CodeCancelled
}

// NeedsTokenRefresh says the access token should be refreshed and the call
// repeated. Refreshing itself is up to the caller.
func (e *APIError) NeedsTokenRefresh() bool {
	return e.IsTokenExpired()
}
