package memory

import (
	"context"

	"shop/domain/shared"
)

// UnitOfWork - in-memory unit of work. There is no transaction to open: fn
// runs against the live store and its writes apply as they happen. Partial
// failures are not rolled back, which the in-memory mode accepts.
type UnitOfWork struct{}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{}
}

func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Compile-time interface implementation check
var _ shared.UnitOfWork = (*UnitOfWork)(nil)
