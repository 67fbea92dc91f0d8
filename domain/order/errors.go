package order

import (
	"errors"

	"shop/domain/shared"
)

var (
	// ErrOrderNotFound - lookup by id yielded no order.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidOrderState - the requested transition is not allowed from
	// the order's current state.
	ErrInvalidOrderState = errors.New("invalid order state transition")

	// ErrEmptyOrderItems - an order needs at least one line.
	ErrEmptyOrderItems = errors.New("order must have at least one item")

	// ErrInvalidCount - order line count must be positive.
	ErrInvalidCount = errors.New("count must be positive")

	// ErrItemsNotLoaded - an operation needed the line items' item entities
	// but the order was loaded without them.
	ErrItemsNotLoaded = errors.New("order items are not fully loaded")
)

// NewOrderNotFoundError creates an order-not-found error with stack.
func NewOrderNotFoundError(orderID string) error {
	return &orderError{
		sentinel: ErrOrderNotFound,
		message:  "order not found: " + orderID,
		stack:    shared.CaptureStack(3),
	}
}

// NewAlreadyDeliveredError - cancellation rejected because the delivery is
// already completed.
func NewAlreadyDeliveredError(orderID string) error {
	return &orderError{
		sentinel: ErrInvalidOrderState,
		message:  "order " + orderID + " has a completed delivery and cannot be cancelled",
		stack:    shared.CaptureStack(3),
	}
}

// NewAlreadyCancelledError - cancellation rejected because the order is
// already cancelled; a second cancel must not double-restore stock.
func NewAlreadyCancelledError(orderID string) error {
	return &orderError{
		sentinel: ErrInvalidOrderState,
		message:  "order " + orderID + " is already cancelled",
		stack:    shared.CaptureStack(3),
	}
}

type orderError struct {
	sentinel error
	message  string
	stack    []uintptr
}

func (e *orderError) Error() string { return e.message }
func (e *orderError) Unwrap() error { return e.sentinel }

// Stack implements shared.Stacker.
func (e *orderError) Stack() []string {
	return shared.FormatStack(e.stack)
}
