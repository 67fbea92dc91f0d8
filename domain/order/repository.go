package order

import "context"

// MaxSearchResults caps every dynamic search regardless of filters, to bound
// the worst-case scan.
const MaxSearchResults = 1000

// SearchFilter is the optional dynamic search criteria. A nil Status applies
// no status predicate; an empty MemberName applies no name predicate. Name
// matching is case-sensitive substring containment.
type SearchFilter struct {
	Status     *Status
	MemberName string
}

// Page is standard offset/limit pagination. Only loaders without a to-many
// join honor it at the database level; see the Repository method docs.
type Page struct {
	Offset int
	Limit  int
}

// DefaultPage returns the default pagination window.
func DefaultPage() Page {
	return Page{Offset: 0, Limit: 100}
}

// Normalize clamps a page to sane values.
func (p Page) Normalize() Page {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPage().Limit
	}
	return p
}

// Repository - order aggregate persistence and the entity-loading strategies.
//
// Each loader makes a different trade between round trips, payload size and
// pageability; the choice is a design-time decision per use case, never made
// adaptively at runtime.
type Repository interface {
	// Save persists the aggregate as a unit: order, delivery and lines.
	Save(ctx context.Context, o *Order) error

	// FindByID loads one full aggregate: order, delivery, lines and each
	// line's item entity (so cancellation can restore stock). The member is
	// loaded too. ErrOrderNotFound when absent.
	FindByID(ctx context.Context, id string) (*Order, error)

	// Search loads orders matching the filter, inner-joined to member for
	// the name predicate, capped at MaxSearchResults. Member and delivery
	// are loaded; lines are not.
	Search(ctx context.Context, filter SearchFilter) ([]*Order, error)

	// FindAllWithMemberDelivery is the eager to-one loader: orders joined
	// with member and delivery in ONE query. To-one joins never duplicate
	// rows, so offset/limit is exact at the database level. Lines are not
	// loaded.
	FindAllWithMemberDelivery(ctx context.Context, page Page) ([]*Order, error)

	// FindAllWithItems is the collection fetch loader: the whole graph in
	// ONE query, duplicate order rows collapsed after materialization.
	// The page is NOT honored by the store - it is applied in application
	// memory after every matching row was fetched. Use only for small,
	// bounded result sets. At most one to-many association participates.
	FindAllWithItems(ctx context.Context, page Page) ([]*Order, error)

	// FindPageWithItems is the batch prefetch loader: one exactly-paginated
	// query for orders with their to-one joins, then the lines for the
	// whole page via chunked "order_id IN (...)" queries. Round trips:
	// 1 + ceil(orderCount/batchSize).
	FindPageWithItems(ctx context.Context, page Page) ([]*Order, error)
}

// QueryService - the read side: queries whose rows are constructed directly
// as flat read-model records, bypassing entity materialization. Cheaper on
// the wire, but single-purpose; introduce one of these only after the
// entity loaders above proved insufficient.
type QueryService interface {
	// FindOrderSummaries projects orders with their to-one data only, one
	// row per order, one round trip.
	FindOrderSummaries(ctx context.Context) ([]OrderSummary, error)

	// FindOrderLines projects the lines of a single order, for detail
	// views. One round trip.
	FindOrderLines(ctx context.Context, orderID string) ([]OrderItemLine, error)

	// FindOrderSummariesEach fills each summary's lines with one query per
	// order: 1 + N round trips. Kept as the explicit baseline; fine for a
	// single order, ruinous for large listings.
	FindOrderSummariesEach(ctx context.Context) ([]OrderSummary, error)

	// FindOrderSummariesBatched fills all lines with one IN-clause query
	// over the collected order ids: 1 + 1 round trips, reconciled onto
	// summaries through a map keyed by order id.
	FindOrderSummariesBatched(ctx context.Context) ([]OrderSummary, error)

	// FindOrderSummariesFlat runs ONE query joining the whole graph - one
	// row per order line - and regroups the flat rows into nested
	// summaries in memory. Exactly one round trip, but pagination by order
	// is impossible: the database-level row count is the line count.
	FindOrderSummariesFlat(ctx context.Context) ([]OrderSummary, error)
}
