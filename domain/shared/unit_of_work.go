package shared

import "context"

// UnitOfWork manages an atomic read-write session. Everything executed inside
// fn either commits as a whole or rolls back; repositories pick the session
// up from the context. Order placement and cancellation mutate both order
// state and item stock and must run inside one unit of work.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}
