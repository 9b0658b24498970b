package anthropic

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/glacierlab/go-anthropic/pkg/anthropic/messages"
)

var (
	ErrMissingAPIKey  = errors.New("anthropic: missing API key")
	ErrStreamMismatch = errors.New("anthropic: stream option mismatch")
)

// APIErrorType classifies a vendor error by HTTP status.
type APIErrorType string

const (
	APIErrorInvalidRequest APIErrorType = "invalid_request_error"
	APIErrorAuthentication APIErrorType = "authentication_error"
	APIErrorPermission     APIErrorType = "permission_error"
	APIErrorNotFound       APIErrorType = "not_found_error"
	APIErrorRateLimit      APIErrorType = "rate_limit_error"
	APIErrorInternal       APIErrorType = "api_error"
	APIErrorOverloaded     APIErrorType = "overloaded_error"
	APIErrorUnknown        APIErrorType = "unknown_error"
)

// apiErrorTypeForStatus maps a non-2xx status to the vendor's documented
// error type. 529 has no stdlib constant.
func apiErrorTypeForStatus(status int) APIErrorType {
	switch status {
	case http.StatusBadRequest:
		return APIErrorInvalidRequest
	case http.StatusUnauthorized:
		return APIErrorAuthentication
	case http.StatusForbidden:
		return APIErrorPermission
	case http.StatusNotFound:
		return APIErrorNotFound
	case http.StatusTooManyRequests:
		return APIErrorRateLimit
	case http.StatusInternalServerError:
		return APIErrorInternal
	case 529:
		return APIErrorOverloaded
	default:
		return APIErrorUnknown
	}
}

// APIError is a non-2xx response from the API server with a well-formed
// error envelope.
type APIError struct {
	StatusCode int
	Type       APIErrorType
	Response   messages.ErrorResponse
}

func (e *APIError) Error() string {
	return fmt.Sprintf(
		"anthropic: API error (%d) %s: %s",
		e.StatusCode, e.Type, e.Response.Error.Message,
	)
}

// ResponseError is a response body that could not be decoded, successful
// or not. Body keeps the raw text for diagnostics.
type ResponseError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf(
		"anthropic: decode response (status %d): %v",
		e.StatusCode, e.Err,
	)
}

func (e *ResponseError) Unwrap() error { return e.Err }
