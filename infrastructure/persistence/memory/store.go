/*
Package memory - in-memory persistence, selected with database.type "memory".

The store keeps flat records shaped like the database rows, not domain
entities: repositories snapshot aggregates on write and rebuild them on read,
exactly as the MySQL implementations do. That keeps the loading strategies
honest - a loader that skips the lines really returns orders without lines,
and loader-equivalence tests compare real reconstruction paths instead of
shared pointers.
*/
package memory

import (
	"sort"
	"sync"
	"time"

	"shop/domain/item"
	"shop/domain/member"
	"shop/domain/order"
	"shop/domain/shared"
)

type memberRecord struct {
	ID        string
	Name      string
	City      string
	Street    string
	Zipcode   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type itemRecord struct {
	ID        string
	Kind      string
	Name      string
	Price     int64
	Stock     int
	Author    string
	ISBN      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type orderRecord struct {
	ID        string
	MemberID  string
	OrderDate time.Time
	Status    string
	Delivery  deliveryRecord
	Lines     []lineRecord
}

type deliveryRecord struct {
	ID      string
	City    string
	Street  string
	Zipcode string
	Status  string
}

type lineRecord struct {
	ID         string
	ItemID     string
	OrderPrice int64
	Count      int
}

// Store is the shared record space behind all in-memory repositories.
type Store struct {
	mu      sync.RWMutex
	members map[string]memberRecord
	items   map[string]itemRecord
	orders  map[string]orderRecord
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		members: make(map[string]memberRecord),
		items:   make(map[string]itemRecord),
		orders:  make(map[string]orderRecord),
	}
}

// ordersByDateDesc returns all order records sorted newest first, id as the
// tiebreaker, matching the SQL loaders' ordering.
func (s *Store) ordersByDateDesc() []orderRecord {
	records := make([]orderRecord, 0, len(s.orders))
	for _, rec := range s.orders {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].OrderDate.Equal(records[j].OrderDate) {
			return records[i].OrderDate.After(records[j].OrderDate)
		}
		return records[i].ID < records[j].ID
	})
	return records
}

func snapshotMember(m *member.Member) memberRecord {
	addr := m.Address()
	return memberRecord{
		ID:        m.ID(),
		Name:      m.Name(),
		City:      addr.City,
		Street:    addr.Street,
		Zipcode:   addr.Zipcode,
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	}
}

func (rec memberRecord) rebuild() *member.Member {
	return member.RebuildFromDTO(member.ReconstructionDTO{
		ID:        rec.ID,
		Name:      rec.Name,
		Address:   shared.NewAddress(rec.City, rec.Street, rec.Zipcode),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	})
}

func snapshotItem(i *item.Item) itemRecord {
	return itemRecord{
		ID:        i.ID(),
		Kind:      string(i.Kind()),
		Name:      i.Name(),
		Price:     i.Price(),
		Stock:     i.StockQuantity(),
		Author:    i.Author(),
		ISBN:      i.ISBN(),
		CreatedAt: i.CreatedAt(),
		UpdatedAt: i.UpdatedAt(),
	}
}

func (rec itemRecord) rebuild() *item.Item {
	return item.RebuildFromDTO(item.ReconstructionDTO{
		ID:            rec.ID,
		Kind:          item.Kind(rec.Kind),
		Name:          rec.Name,
		Price:         rec.Price,
		StockQuantity: rec.Stock,
		Author:        rec.Author,
		ISBN:          rec.ISBN,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	})
}

func deliveryAddress(rec deliveryRecord) shared.Address {
	return shared.NewAddress(rec.City, rec.Street, rec.Zipcode)
}

func snapshotOrder(o *order.Order) orderRecord {
	d := o.Delivery()
	addr := d.Address()
	rec := orderRecord{
		ID:        o.ID(),
		MemberID:  o.MemberID(),
		OrderDate: o.OrderDate(),
		Status:    string(o.Status()),
		Delivery: deliveryRecord{
			ID:      d.ID(),
			City:    addr.City,
			Street:  addr.Street,
			Zipcode: addr.Zipcode,
			Status:  string(d.Status()),
		},
	}
	for _, line := range o.Items() {
		rec.Lines = append(rec.Lines, lineRecord{
			ID:         line.ID(),
			ItemID:     line.ItemID(),
			OrderPrice: line.OrderPrice(),
			Count:      line.Count(),
		})
	}
	return rec
}
