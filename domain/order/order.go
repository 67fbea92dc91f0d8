/*
Package order - order subdomain, the aggregate at the center of the system.

Order is the aggregate root. It exclusively owns its order lines and its
delivery: they are created and deleted with the order and are only reachable
through it. The member placing the order and the items being ordered live
outside the aggregate; the order references them by id and optionally carries
a loaded copy when a loader fetched them in the same round trip.

There are no bidirectional references and no lazy proxies. An association is
either loaded (non-nil, fully populated) or not loaded (nil), and the
accessors report which explicitly.
*/
package order

import (
	"fmt"
	"time"

	"shop/domain/item"
	"shop/domain/member"
	"shop/domain/shared"

	"github.com/google/uuid"
)

// Status - order status.
type Status string

const (
	StatusOrder  Status = "ORDER"
	StatusCancel Status = "CANCEL"
)

// DeliveryStatus - delivery status.
type DeliveryStatus string

const (
	DeliveryReady DeliveryStatus = "READY"
	DeliveryComp  DeliveryStatus = "COMP"
)

// Order aggregate root.
type Order struct {
	id       string
	memberID string

	// member is populated by loaders that fetch the to-one association in
	// the same round trip; nil means "not loaded", never "absent".
	member *member.Member

	items    []OrderItem
	delivery Delivery

	orderDate time.Time
	status    Status
}

// OrderItem - order line, an entity inside the aggregate. It references the
// ordered item by id and snapshots the price at order time; the snapshot is
// independent of later item price changes.
type OrderItem struct {
	id     string
	itemID string

	// itemRef is populated when a loader fetched the item in the same
	// round trip; nil means "not loaded".
	itemRef *item.Item

	orderPrice int64
	count      int
}

// Delivery - owned one-to-one entity, lifecycle-bound to its order.
type Delivery struct {
	id      string
	address shared.Address
	status  DeliveryStatus
}

// ============================================================================
// Factory Methods
// ============================================================================

// NewOrderItem creates an order line for the given item, deducting stock
// atomically with construction. The order price is passed separately from the
// item's current price because discounts may apply at order time.
func NewOrderItem(it *item.Item, orderPrice int64, count int) (OrderItem, error) {
	if it == nil {
		return OrderItem{}, shared.NewValidationError("orderItem", "item", "order line requires an item")
	}
	if count <= 0 {
		return OrderItem{}, ErrInvalidCount
	}

	if err := it.RemoveStock(count); err != nil {
		return OrderItem{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return OrderItem{}, fmt.Errorf("failed to generate order item ID: %w", err)
	}

	return OrderItem{
		id:         id.String(),
		itemID:     it.ID(),
		itemRef:    it,
		orderPrice: orderPrice,
		count:      count,
	}, nil
}

// NewOrder creates an order for the member with the given lines. The delivery
// is created with it, in READY status, addressed to the member's address.
func NewOrder(m *member.Member, items ...OrderItem) (*Order, error) {
	if m == nil {
		return nil, shared.NewValidationError("order", "member", "order requires a member")
	}
	if len(items) == 0 {
		return nil, ErrEmptyOrderItems
	}

	orderID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate order ID: %w", err)
	}
	deliveryID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate delivery ID: %w", err)
	}

	return &Order{
		id:       orderID.String(),
		memberID: m.ID(),
		member:   m,
		items:    items,
		delivery: Delivery{
			id:      deliveryID.String(),
			address: m.Address(),
			status:  DeliveryReady,
		},
		orderDate: time.Now(),
		status:    StatusOrder,
	}, nil
}

// ============================================================================
// Domain Behavior
// ============================================================================

// Cancel cancels the order and restores every line's item stock.
// Fails without mutating anything when the delivery is already completed,
// when the order is already cancelled, or when the line items were not loaded
// with the order (stock cannot be restored blindly).
func (o *Order) Cancel() error {
	if o.delivery.status == DeliveryComp {
		return NewAlreadyDeliveredError(o.id)
	}
	if o.status == StatusCancel {
		return NewAlreadyCancelledError(o.id)
	}
	for _, it := range o.items {
		if it.itemRef == nil {
			return ErrItemsNotLoaded
		}
	}

	o.status = StatusCancel
	for _, it := range o.items {
		it.itemRef.AddStock(it.count)
	}
	return nil
}

// TotalPrice is the sum over all lines of orderPrice x count.
// Purely derived; nothing redundant is stored.
func (o *Order) TotalPrice() int64 {
	var total int64
	for _, it := range o.items {
		total += it.TotalPrice()
	}
	return total
}

// ============================================================================
// Accessors
// ============================================================================

func (o *Order) ID() string       { return o.id }
func (o *Order) MemberID() string { return o.memberID }

// Member returns the loaded member and whether it was loaded at all.
func (o *Order) Member() (*member.Member, bool) {
	return o.member, o.member != nil
}

// Items returns a copy of the order lines.
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Delivery() Delivery   { return o.delivery }
func (o *Order) OrderDate() time.Time { return o.orderDate }
func (o *Order) Status() Status       { return o.status }

func (it OrderItem) ID() string        { return it.id }
func (it OrderItem) ItemID() string    { return it.itemID }
func (it OrderItem) OrderPrice() int64 { return it.orderPrice }
func (it OrderItem) Count() int        { return it.count }

// Item returns the loaded item and whether it was loaded at all.
func (it OrderItem) Item() (*item.Item, bool) {
	return it.itemRef, it.itemRef != nil
}

// TotalPrice is orderPrice x count for this line.
func (it OrderItem) TotalPrice() int64 {
	return it.orderPrice * int64(it.count)
}

func (d Delivery) ID() string              { return d.id }
func (d Delivery) Address() shared.Address { return d.address }
func (d Delivery) Status() DeliveryStatus  { return d.status }

// ============================================================================
// Reconstruction - Repository Layer Use Only
// ============================================================================
//
// Fields are private, so the persistence layer rebuilds aggregates through
// DTO + factory functions instead of setters or reflection.

// ReconstructionDTO carries raw order state out of the store.
type ReconstructionDTO struct {
	ID        string
	MemberID  string
	Member    *member.Member // nil when the loader did not fetch the member
	Items     []OrderItem
	Delivery  Delivery
	OrderDate time.Time
	Status    Status
}

// RebuildFromDTO reconstructs an Order from persisted state.
func RebuildFromDTO(dto ReconstructionDTO) *Order {
	return &Order{
		id:        dto.ID,
		memberID:  dto.MemberID,
		member:    dto.Member,
		items:     dto.Items,
		delivery:  dto.Delivery,
		orderDate: dto.OrderDate,
		status:    dto.Status,
	}
}

// ItemReconstructionDTO carries raw order-line state out of the store.
type ItemReconstructionDTO struct {
	ID         string
	ItemID     string
	Item       *item.Item // nil when the loader did not fetch the item
	OrderPrice int64
	Count      int
}

// RebuildOrderItemFromDTO reconstructs an order line from persisted state.
func RebuildOrderItemFromDTO(dto ItemReconstructionDTO) OrderItem {
	return OrderItem{
		id:         dto.ID,
		itemID:     dto.ItemID,
		itemRef:    dto.Item,
		orderPrice: dto.OrderPrice,
		count:      dto.Count,
	}
}

// DeliveryReconstructionDTO carries raw delivery state out of the store.
type DeliveryReconstructionDTO struct {
	ID      string
	Address shared.Address
	Status  DeliveryStatus
}

// RebuildDeliveryFromDTO reconstructs a Delivery from persisted state.
func RebuildDeliveryFromDTO(dto DeliveryReconstructionDTO) Delivery {
	return Delivery{
		id:      dto.ID,
		address: dto.Address,
		status:  dto.Status,
	}
}
