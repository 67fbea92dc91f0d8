package memory

import (
	"context"
	"sort"

	"shop/domain/item"
)

// ItemRepository - in-memory item repository.
type ItemRepository struct {
	store *Store
}

func NewItemRepository(store *Store) *ItemRepository {
	return &ItemRepository{store: store}
}

// Save persists an item, creating or updating by id.
func (r *ItemRepository) Save(ctx context.Context, i *item.Item) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.items[i.ID()] = snapshotItem(i)
	return nil
}

// FindByID finds an item by id.
func (r *ItemRepository) FindByID(ctx context.Context, id string) (*item.Item, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.items[id]
	if !ok {
		return nil, item.NewItemNotFoundError(id)
	}
	return rec.rebuild(), nil
}

// FindAll lists all items, newest first.
func (r *ItemRepository) FindAll(ctx context.Context) ([]*item.Item, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	records := make([]itemRecord, 0, len(r.store.items))
	for _, rec := range r.store.items {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].ID < records[j].ID
	})

	items := make([]*item.Item, len(records))
	for i, rec := range records {
		items[i] = rec.rebuild()
	}
	return items, nil
}

// Compile-time interface implementation check
var _ item.Repository = (*ItemRepository)(nil)
