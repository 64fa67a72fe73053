package common

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind names every failure class the API can surface.
// Handlers map kinds to HTTP statuses, services only pick kinds.
type ErrorKind string

const (
	KindInvalidIdentifier ErrorKind = "InvalidIdentifier"
	KindInvalidInput      ErrorKind = "InvalidInput"
	KindNotFound          ErrorKind = "NotFound"
	KindUnauthorized      ErrorKind = "Unauthorized"
	KindInvalidOperation  ErrorKind = "InvalidOperation"
	KindInvalidState      ErrorKind = "InvalidState"
	KindUploadFailed      ErrorKind = "UploadFailed"
	KindInternal          ErrorKind = "Internal"
)

// ApiError is the only error type that crosses the handler boundary.
// Store-internal error text stays in the wrapped cause and is never
// serialized to the caller.
type ApiError struct {
	Status  int               `json:"status"`
	Kind    ErrorKind         `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`

	cause error
}

func (e *ApiError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ApiError) Unwrap() error { return e.cause }

func NewApiError(kind ErrorKind, message string) *ApiError {
	return &ApiError{Status: statusFor(kind), Kind: kind, Message: message}
}

// WrapInternal hides the underlying store/delegate error from the caller
// while keeping it on the chain for logs.
func WrapInternal(message string, cause error) *ApiError {
	return &ApiError{Status: http.StatusInternalServerError, Kind: KindInternal, Message: message, cause: cause}
}

func (e *ApiError) WithField(name, problem string) *ApiError {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[name] = problem
	return e
}

func (e *ApiError) WithCause(cause error) *ApiError {
	e.cause = cause
	return e
}

func statusFor(kind ErrorKind) int {
	switch kind {
	case KindInvalidIdentifier, KindInvalidInput, KindInvalidOperation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindUploadFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// AsApiError normalizes any error into an ApiError. The second return
// reports whether err already carried one; unknown errors become Internal
// so raw store text never leaks.
func AsApiError(err error) (*ApiError, bool) {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return WrapInternal("something went wrong", err), false
}
