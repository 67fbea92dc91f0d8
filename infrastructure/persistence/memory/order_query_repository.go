package memory

import (
	"context"

	"shop/domain/order"
)

// OrderQueryRepository - in-memory read side. Projects the flat records
// straight into read models, mirroring the SQL query service's strategies
// (the round-trip counts collapse here, the shapes do not).
type OrderQueryRepository struct {
	store *Store
}

func NewOrderQueryRepository(store *Store) *OrderQueryRepository {
	return &OrderQueryRepository{store: store}
}

// FindOrderSummaries projects orders with their to-one data only.
func (r *OrderQueryRepository) FindOrderSummaries(ctx context.Context) ([]order.OrderSummary, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.summaries(), nil
}

// FindOrderLines projects the lines of one order.
func (r *OrderQueryRepository) FindOrderLines(ctx context.Context, orderID string) ([]order.OrderItemLine, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.orders[orderID]
	if !ok {
		return []order.OrderItemLine{}, nil
	}
	return r.lines(rec), nil
}

// FindOrderSummariesEach fills each summary's lines one order at a time.
func (r *OrderQueryRepository) FindOrderSummariesEach(ctx context.Context) ([]order.OrderSummary, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	summaries := r.summaries()
	for i := range summaries {
		summaries[i].Items = r.lines(r.store.orders[summaries[i].OrderID])
	}
	return summaries, nil
}

// FindOrderSummariesBatched fills all lines in one pass, reconciled onto the
// summaries through a map keyed by order id.
func (r *OrderQueryRepository) FindOrderSummariesBatched(ctx context.Context) ([]order.OrderSummary, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	summaries := r.summaries()

	linesByOrder := make(map[string][]order.OrderItemLine, len(summaries))
	for _, s := range summaries {
		linesByOrder[s.OrderID] = r.lines(r.store.orders[s.OrderID])
	}

	for i := range summaries {
		summaries[i].Items = linesByOrder[summaries[i].OrderID]
	}
	return summaries, nil
}

// FindOrderSummariesFlat produces the denormalized row set - one row per
// order line - and regroups it with the shared reconstructor.
func (r *OrderQueryRepository) FindOrderSummariesFlat(ctx context.Context) ([]order.OrderSummary, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var flat []order.FlatOrderRow
	for _, rec := range r.store.ordersByDateDesc() {
		memberName := r.store.members[rec.MemberID].Name
		for _, line := range rec.Lines {
			flat = append(flat, order.FlatOrderRow{
				OrderID:    rec.ID,
				MemberName: memberName,
				OrderDate:  rec.OrderDate,
				Status:     order.Status(rec.Status),
				Address:    deliveryAddress(rec.Delivery),
				ItemName:   r.store.items[line.ItemID].Name,
				OrderPrice: line.OrderPrice,
				Count:      line.Count,
			})
		}
	}

	return order.GroupFlatRows(flat), nil
}

func (r *OrderQueryRepository) summaries() []order.OrderSummary {
	records := r.store.ordersByDateDesc()
	summaries := make([]order.OrderSummary, len(records))
	for i, rec := range records {
		summaries[i] = order.OrderSummary{
			OrderID:    rec.ID,
			MemberName: r.store.members[rec.MemberID].Name,
			OrderDate:  rec.OrderDate,
			Status:     order.Status(rec.Status),
			Address:    deliveryAddress(rec.Delivery),
		}
	}
	return summaries
}

func (r *OrderQueryRepository) lines(rec orderRecord) []order.OrderItemLine {
	lines := make([]order.OrderItemLine, len(rec.Lines))
	for i, line := range rec.Lines {
		lines[i] = order.OrderItemLine{
			OrderID:    rec.ID,
			ItemName:   r.store.items[line.ItemID].Name,
			OrderPrice: line.OrderPrice,
			Count:      line.Count,
		}
	}
	return lines
}

// Compile-time interface implementation check
var _ order.QueryService = (*OrderQueryRepository)(nil)
