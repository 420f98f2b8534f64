package utils

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindUnauthenticated
	KindPermissionDenied
	KindNotFound
	KindMissingField
	KindInvalidFormat
	KindInvalidItem
	KindConflict
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindPermissionDenied:
		return "permission_denied"
	case KindNotFound:
		return "not_found"
	case KindMissingField:
		return "missing_field"
	case KindInvalidFormat:
		return "invalid_format"
	case KindInvalidItem:
		return "invalid_item"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Status maps a kind to its HTTP status code.
func (k ErrorKind) Status() int {
	switch k {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindPermissionDenied:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindMissingField, KindInvalidFormat, KindInvalidItem, KindConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// AppError is the error type returned across the service boundary. Message is
// safe to show to clients; Err carries the underlying cause for logs only.
type AppError struct {
	Kind    ErrorKind
	Message string
	Field   string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) Status() int {
	return e.Kind.Status()
}

func Unauthenticated(message string) *AppError {
	return &AppError{Kind: KindUnauthenticated, Message: message}
}

func PermissionDenied() *AppError {
	return &AppError{Kind: KindPermissionDenied, Message: "Permission denied"}
}

func AdminRequired() *AppError {
	return &AppError{Kind: KindPermissionDenied, Message: "Admin privileges required"}
}

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func MissingField(field string) *AppError {
	return &AppError{Kind: KindMissingField, Field: field, Message: "Missing required field: " + field}
}

// InvalidFormat reports a value that does not match the expected pattern,
// e.g. InvalidFormat("open_time", "HH:MM").
func InvalidFormat(field, pattern string) *AppError {
	return &AppError{
		Kind:    KindInvalidFormat,
		Field:   field,
		Message: fmt.Sprintf("Invalid %s format. Use %s", field, pattern),
	}
}

func Invalid(field, message string) *AppError {
	return &AppError{Kind: KindInvalidFormat, Field: field, Message: message}
}

func InvalidItem(message string) *AppError {
	return &AppError{Kind: KindInvalidItem, Message: message}
}

func Conflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func Internal(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "Something went wrong", Err: err}
}

// AsAppError returns err as an *AppError, wrapping anything untyped as
// Internal.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
