/*
Package shared - domain layer building blocks used by every subdomain.

Error design:
1. Sentinel errors support type-safe errors.Is() checks across layers.
2. DomainError captures the stack at creation time and formats it lazily.
3. Domain errors never carry transport concepts such as HTTP status codes.
*/
package shared

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ============================================================================
// Sentinel Errors
// Used with errors.Is() to classify failures without carrying detail.
// ============================================================================

var (
	// ErrNotFound - a lookup by identifier yielded no row.
	ErrNotFound = errors.New("not found")

	// ErrConflict - resource conflict (unique constraint, concurrent change).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput - input validation failure.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidState - operation not allowed in the entity's current state.
	ErrInvalidState = errors.New("invalid state transition")
)

// DomainError is a structured error carrying business context and the stack
// of the point where it was raised. Supports errors.Is() and errors.As()
// through Unwrap.
type DomainError struct {
	// Err is the underlying sentinel used for errors.Is() classification.
	Err error

	// Entity names the entity the error relates to ("order", "member", ...).
	Entity string

	// Message is the human-readable description.
	Message string

	// Field optionally names the offending field for validation errors.
	Field string

	// stack holds raw frames captured at creation, formatted on demand.
	stack []uintptr
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Stack formats the captured stack; called only when the error is logged.
func (e *DomainError) Stack() []string {
	return FormatStack(e.stack)
}

// Stacker is implemented by errors that can report the stack of their origin.
// The API layer uses it to log where a failure was raised.
type Stacker interface {
	Stack() []string
}

// CaptureStack records the current call stack.
// skip is the number of frames to drop (usually 3: Callers, CaptureStack,
// and the error constructor itself).
func CaptureStack(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

// FormatStack renders captured frames, filtering runtime internals.
// At most 10 frames are returned.
func FormatStack(stack []uintptr) []string {
	if len(stack) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(stack)
	var result []string
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			result = append(result, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more || len(result) > 10 {
			break
		}
	}
	return result
}

// ============================================================================
// Constructors
// ============================================================================

// NewNotFoundError creates a "not found" domain error for the given entity.
func NewNotFoundError(entity string) error {
	return &DomainError{
		Err:     ErrNotFound,
		Entity:  entity,
		Message: entity + " not found",
		stack:   CaptureStack(3),
	}
}

// NewConflictError creates a conflict domain error.
func NewConflictError(entity, message string) error {
	return &DomainError{
		Err:     ErrConflict,
		Entity:  entity,
		Message: message,
		stack:   CaptureStack(3),
	}
}

// NewValidationError creates a validation domain error.
func NewValidationError(entity, field, reason string) error {
	return &DomainError{
		Err:     ErrInvalidInput,
		Entity:  entity,
		Field:   field,
		Message: reason,
		stack:   CaptureStack(3),
	}
}

// NewInvalidStateError creates an invalid-state-transition domain error.
func NewInvalidStateError(entity, reason string) error {
	return &DomainError{
		Err:     ErrInvalidState,
		Entity:  entity,
		Message: reason,
		stack:   CaptureStack(3),
	}
}
