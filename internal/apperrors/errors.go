package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
// Resolvers that lose a create race receive this and must retry as a lookup.
var ErrDuplicate = errors.New("resource already exists")

// ErrMissingIdentifier indicates that a row or scan carried neither an item
// number nor an item name, so no item could be resolved or created.
var ErrMissingIdentifier = errors.New("no usable item identifier")

// ErrMissingRequiredField indicates that a mandatory ledger field was absent
// under all of its known column headers.
var ErrMissingRequiredField = errors.New("required field missing")

// ErrLookupFailed indicates that the device registry was unreachable or
// returned a non-success status. Callers treat this as recoverable.
var ErrLookupFailed = errors.New("device registry lookup failed")

// ErrIncompleteRecord indicates that the registry responded but the record
// lacked the product code or identifier entries needed to build an item.
var ErrIncompleteRecord = errors.New("registry record incomplete")

// ErrUnknownItem indicates that a stock adjustment referenced an item number
// that does not resolve to an existing item.
var ErrUnknownItem = errors.New("unknown item")

// ErrInvalidParLevel indicates that a par-level change carried a negative or
// otherwise unusable target value.
var ErrInvalidParLevel = errors.New("invalid par level")

// ErrProtected indicates that a delete was rejected because transaction or
// order history still references the record.
var ErrProtected = errors.New("record is referenced by history")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
// Repositories use it for storage failures that have no sentinel.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
