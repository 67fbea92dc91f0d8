/*
Package errors - application error codes.

The API layer maps these codes to HTTP statuses; nothing below the API layer
knows about HTTP. FromDomainError translates domain sentinel errors into
coded application errors.
*/
package errors

import (
	"errors"
	"fmt"

	"shop/domain/item"
	"shop/domain/member"
	"shop/domain/order"
	"shop/domain/shared"
)

// ErrorCode classifies an application-level failure.
type ErrorCode string

const (
	// Generic codes
	CodeInternal   ErrorCode = "INTERNAL_ERROR"
	CodeBadRequest ErrorCode = "BAD_REQUEST"
	CodeNotFound   ErrorCode = "NOT_FOUND"
	CodeConflict   ErrorCode = "CONFLICT"
	CodeValidation ErrorCode = "VALIDATION_ERROR"

	// Business codes
	CodeOrderNotFound     ErrorCode = "ORDER_NOT_FOUND"
	CodeMemberNotFound    ErrorCode = "MEMBER_NOT_FOUND"
	CodeItemNotFound      ErrorCode = "ITEM_NOT_FOUND"
	CodeNotEnoughStock    ErrorCode = "NOT_ENOUGH_STOCK"
	CodeInvalidOrderState ErrorCode = "INVALID_ORDER_STATE"
	CodeDuplicateName     ErrorCode = "DUPLICATE_MEMBER_NAME"
)

// AppError is the application-facing error: a code, a user-visible message
// and the wrapped cause.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a coded error.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap creates a coded error around a cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func BadRequest(message string) *AppError { return New(CodeBadRequest, message) }
func NotFound(message string) *AppError   { return New(CodeNotFound, message) }
func Internal(message string) *AppError   { return New(CodeInternal, message) }
func Conflict(message string) *AppError   { return New(CodeConflict, message) }
func Validation(message string) *AppError { return New(CodeValidation, message) }

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// FromDomainError maps domain sentinel errors onto coded application errors.
// Anything unrecognized is a store/internal failure and is wrapped, not
// swallowed.
func FromDomainError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		return Wrap(err, CodeOrderNotFound, err.Error())
	case errors.Is(err, member.ErrMemberNotFound):
		return Wrap(err, CodeMemberNotFound, err.Error())
	case errors.Is(err, item.ErrItemNotFound):
		return Wrap(err, CodeItemNotFound, err.Error())
	case errors.Is(err, item.ErrNotEnoughStock):
		return Wrap(err, CodeNotEnoughStock, err.Error())
	case errors.Is(err, order.ErrInvalidOrderState):
		return Wrap(err, CodeInvalidOrderState, err.Error())
	case errors.Is(err, member.ErrDuplicateName):
		return Wrap(err, CodeDuplicateName, err.Error())
	case errors.Is(err, order.ErrEmptyOrderItems),
		errors.Is(err, order.ErrInvalidCount),
		errors.Is(err, shared.ErrInvalidInput):
		return Wrap(err, CodeValidation, err.Error())
	case errors.Is(err, shared.ErrNotFound):
		return Wrap(err, CodeNotFound, err.Error())
	case errors.Is(err, shared.ErrConflict):
		return Wrap(err, CodeConflict, err.Error())
	case errors.Is(err, shared.ErrInvalidState):
		return Wrap(err, CodeInvalidOrderState, err.Error())
	default:
		return Wrap(err, CodeInternal, "internal error")
	}
}
