package item

import "context"

// Repository - item persistence contract. Plain CRUD; items need no special
// loading strategy.
type Repository interface {
	// Save persists an item, creating or updating by id.
	Save(ctx context.Context, i *Item) error

	// FindByID finds an item by id; ErrItemNotFound when absent.
	FindByID(ctx context.Context, id string) (*Item, error)

	// FindAll lists all items.
	FindAll(ctx context.Context) ([]*Item, error)
}
