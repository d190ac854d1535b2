package apierr

// Factories for errors raised on the client side. Each call returns a new value.

func Unknown() *APIError {
	return &APIError{Err: CodeUnknown}
}

func Unauthorized() *APIError {
	return &APIError{Err: CodeUnauthorized}
}

// Mapping reports a payload that could not be decoded; json is kept verbatim
// in the description for diagnostics.
func Mapping(json string) *APIError {
	return &APIError{Err: CodeMapping, Description: "mapping failed: " + json}
}

func NoInternet() *APIError {
	return &APIError{Err: CodeNoInternet, Description: "No internet connection"}
}

func InternalServerError() *APIError {
	return &APIError{Err: CodeInternalServerError, Description: "Server Error"}
}

func Cancelled() *APIError {
	return &APIError{Err: CodeCancelled}
}
