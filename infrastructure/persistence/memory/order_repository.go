package memory

import (
	"context"
	"strings"

	"shop/domain/item"
	"shop/domain/order"
)

// OrderRepository - in-memory order repository. Every loading strategy
// rebuilds aggregates from flat records with exactly the associations that
// strategy promises, nothing more.
type OrderRepository struct {
	store *Store
}

func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// Save persists the aggregate as a unit.
func (r *OrderRepository) Save(ctx context.Context, o *order.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.orders[o.ID()] = snapshotOrder(o)
	return nil
}

// FindByID loads one full aggregate: member, delivery, lines and each line's
// item entity.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.orders[id]
	if !ok {
		return nil, order.NewOrderNotFoundError(id)
	}
	return r.rebuild(rec, true), nil
}

// Search filters orders by optional status and case-sensitive member-name
// containment, capped at order.MaxSearchResults. Lines are not loaded.
func (r *OrderRepository) Search(ctx context.Context, filter order.SearchFilter) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	orders := make([]*order.Order, 0)
	for _, rec := range r.store.ordersByDateDesc() {
		if filter.Status != nil && rec.Status != string(*filter.Status) {
			continue
		}
		if filter.MemberName != "" {
			m, ok := r.store.members[rec.MemberID]
			if !ok || !strings.Contains(m.Name, filter.MemberName) {
				continue
			}
		}

		orders = append(orders, r.rebuild(rec, false))
		if len(orders) == order.MaxSearchResults {
			break
		}
	}
	return orders, nil
}

// FindAllWithMemberDelivery pages orders with member and delivery loaded,
// lines absent. Pagination is exact.
func (r *OrderRepository) FindAllWithMemberDelivery(ctx context.Context, page order.Page) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	records := pageRecords(r.store.ordersByDateDesc(), page)
	orders := make([]*order.Order, len(records))
	for i, rec := range records {
		orders[i] = r.rebuild(rec, false)
	}
	return orders, nil
}

// FindAllWithItems loads every order with its full line set, then cuts the
// page window in memory, mirroring the collection fetch strategy.
func (r *OrderRepository) FindAllWithItems(ctx context.Context, page order.Page) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	all := r.store.ordersByDateDesc()
	orders := make([]*order.Order, len(all))
	for i, rec := range all {
		orders[i] = r.rebuild(rec, true)
	}

	page = page.Normalize()
	if page.Offset >= len(orders) {
		return []*order.Order{}, nil
	}
	end := page.Offset + page.Limit
	if end > len(orders) {
		end = len(orders)
	}
	return orders[page.Offset:end], nil
}

// FindPageWithItems pages orders exactly, then attaches the page's lines,
// mirroring the batch prefetch strategy.
func (r *OrderRepository) FindPageWithItems(ctx context.Context, page order.Page) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	records := pageRecords(r.store.ordersByDateDesc(), page)
	orders := make([]*order.Order, len(records))
	for i, rec := range records {
		orders[i] = r.rebuild(rec, true)
	}
	return orders, nil
}

// rebuild turns a record into an aggregate. Member and delivery are always
// loaded; withLines controls whether the lines (and their item entities)
// come along. Lines referencing the same item share one rebuilt entity, so
// stock mutations from any line act on one counter.
func (r *OrderRepository) rebuild(rec orderRecord, withLines bool) *order.Order {
	dto := order.ReconstructionDTO{
		ID:        rec.ID,
		MemberID:  rec.MemberID,
		OrderDate: rec.OrderDate,
		Status:    order.Status(rec.Status),
		Delivery: order.RebuildDeliveryFromDTO(order.DeliveryReconstructionDTO{
			ID:      rec.Delivery.ID,
			Address: deliveryAddress(rec.Delivery),
			Status:  order.DeliveryStatus(rec.Delivery.Status),
		}),
	}

	if m, ok := r.store.members[rec.MemberID]; ok {
		dto.Member = m.rebuild()
	}

	if withLines {
		itemsByID := make(map[string]*item.Item, len(rec.Lines))
		for _, line := range rec.Lines {
			itemDTO := order.ItemReconstructionDTO{
				ID:         line.ID,
				ItemID:     line.ItemID,
				OrderPrice: line.OrderPrice,
				Count:      line.Count,
			}
			if it, ok := itemsByID[line.ItemID]; ok {
				itemDTO.Item = it
			} else if itemRec, ok := r.store.items[line.ItemID]; ok {
				itemDTO.Item = itemRec.rebuild()
				itemsByID[line.ItemID] = itemDTO.Item
			}
			dto.Items = append(dto.Items, order.RebuildOrderItemFromDTO(itemDTO))
		}
	}

	return order.RebuildFromDTO(dto)
}

func pageRecords(records []orderRecord, page order.Page) []orderRecord {
	page = page.Normalize()
	if page.Offset >= len(records) {
		return nil
	}
	end := page.Offset + page.Limit
	if end > len(records) {
		end = len(records)
	}
	return records[page.Offset:end]
}

// Compile-time interface implementation check
var _ order.Repository = (*OrderRepository)(nil)
