package member

import "context"

// Repository - member persistence contract.
type Repository interface {
	// Save persists a member. A duplicate display name surfaces as a
	// conflict error from the store's unique index.
	Save(ctx context.Context, m *Member) error

	// FindByID finds a member by id; ErrMemberNotFound when absent.
	FindByID(ctx context.Context, id string) (*Member, error)

	// FindAll lists all members.
	FindAll(ctx context.Context) ([]*Member, error)
}
