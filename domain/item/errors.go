package item

import (
	"errors"
	"fmt"

	"shop/domain/shared"
)

var (
	// ErrItemNotFound - lookup by id yielded no item.
	ErrItemNotFound = errors.New("item not found")

	// ErrNotEnoughStock - requested quantity exceeds current stock.
	ErrNotEnoughStock = errors.New("not enough stock")
)

// NewItemNotFoundError creates an item-not-found error with stack.
func NewItemNotFoundError(itemID string) error {
	return &itemError{
		sentinel: ErrItemNotFound,
		message:  "item not found: " + itemID,
		stack:    shared.CaptureStack(3),
	}
}

// NewNotEnoughStockError creates an insufficient-stock error with stack.
func NewNotEnoughStockError(itemID string, available, requested int) error {
	return &itemError{
		sentinel: ErrNotEnoughStock,
		message:  fmt.Sprintf("not enough stock for item %s: available %d, requested %d", itemID, available, requested),
		stack:    shared.CaptureStack(3),
	}
}

type itemError struct {
	sentinel error
	message  string
	stack    []uintptr
}

func (e *itemError) Error() string { return e.message }
func (e *itemError) Unwrap() error { return e.sentinel }

// Stack implements shared.Stacker.
func (e *itemError) Stack() []string {
	return shared.FormatStack(e.stack)
}
