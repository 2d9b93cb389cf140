package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so the HTTP layer can pick a status code
type Kind string

const (
	KindNotFound      Kind = "NOT_FOUND"
	KindAlreadyExists Kind = "ALREADY_EXISTS"
	KindNoCapacity    Kind = "NO_CAPACITY"
	KindTableOccupied Kind = "TABLE_OCCUPIED"
	KindInvalidInput  Kind = "INVALID_INPUT"
	KindValidation    Kind = "VALIDATION"
	KindUnauthorized  Kind = "UNAUTHORIZED"
	KindInternal      Kind = "INTERNAL"
)

// Stable error codes returned to clients
const (
	CodeResourceNotFound = "RESOURCE_NOT_FOUND"
	CodeAlreadyExists    = "ALREADY_EXISTS"
	CodeNoCapacity       = "NO_CAPACITY"
	CodeTableOccupied    = "TABLE_OCCUPIED"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeValidation       = "VALIDATION_ERROR"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeInternal         = "INTERNAL_ERROR"
	CodeRateLimited      = "RATE_LIMITED"
	CodeRequestInFlight  = "REQUEST_IN_PROGRESS"
)

// Error is a domain failure with a stable code and optional details
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches on kind so callers can use errors.Is with the sentinels below
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is checks
var (
	ErrNotFound      = &Error{Kind: KindNotFound, Code: CodeResourceNotFound}
	ErrAlreadyExists = &Error{Kind: KindAlreadyExists, Code: CodeAlreadyExists}
	ErrNoCapacity    = &Error{Kind: KindNoCapacity, Code: CodeNoCapacity}
	ErrTableOccupied = &Error{Kind: KindTableOccupied, Code: CodeTableOccupied}
	ErrInvalidInput  = &Error{Kind: KindInvalidInput, Code: CodeInvalidInput}
	ErrUnauthorized  = &Error{Kind: KindUnauthorized, Code: CodeUnauthorized}
)

func NotFound(resource string, details map[string]any) *Error {
	return &Error{
		Kind:    KindNotFound,
		Code:    CodeResourceNotFound,
		Message: resource + " not found",
		Details: details,
	}
}

// EventNotFound is the lookup failure for an unknown event id
func EventNotFound(eventID string) *Error {
	return NotFound("Event", map[string]any{"eventId": eventID})
}

// EntryNotFound is the lookup failure for an unknown waitlist entry
func EntryNotFound(eventID, entryID string) *Error {
	return NotFound("Entry", map[string]any{"eventId": eventID, "entryId": entryID})
}

func AlreadyExists(reason string) *Error {
	return &Error{Kind: KindAlreadyExists, Code: CodeAlreadyExists, Message: reason}
}

func NoCapacity(reason string) *Error {
	return &Error{Kind: KindNoCapacity, Code: CodeNoCapacity, Message: reason}
}

func TableOccupied(reason string) *Error {
	return &Error{Kind: KindTableOccupied, Code: CodeTableOccupied, Message: reason}
}

func InvalidInput(reason string) *Error {
	return &Error{Kind: KindInvalidInput, Code: CodeInvalidInput, Message: reason}
}

func Validation(reason string, details map[string]any) *Error {
	return &Error{Kind: KindValidation, Code: CodeValidation, Message: reason, Details: details}
}

func Unauthorized(reason string) *Error {
	return &Error{Kind: KindUnauthorized, Code: CodeUnauthorized, Message: reason}
}

// From extracts the domain error from a wrapped chain.
// Anything that is not an *Error becomes an internal error.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindInternal, Code: CodeInternal, Message: "Internal server error"}
}

// HTTPStatus maps an error kind to its transport status
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindAlreadyExists, KindNoCapacity, KindTableOccupied, KindInvalidInput:
		return http.StatusConflict
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
