package po

import (
	"time"

	"shop/domain/order"
	"shop/domain/shared"
)

// OrderPO - order persistence object. Mapping only, no business logic.
//
// Only the to-one associations (Member, Delivery) are declared, and only so
// the loaders can fetch-join them in a single query; they never cascade
// writes. The to-many order_items association is deliberately absent: lines
// are loaded explicitly by whichever loading strategy the use case picked,
// keeping the aggregate boundary visible in code.
type OrderPO struct {
	ID        string    `gorm:"primaryKey;size:64"`
	MemberID  string    `gorm:"size:64;index;not null"`
	OrderDate time.Time `gorm:"not null;index"`
	Status    string    `gorm:"size:20;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Member   *MemberPO   `gorm:"foreignKey:MemberID;references:ID"`
	Delivery *DeliveryPO `gorm:"foreignKey:OrderID;references:ID"`
}

func (OrderPO) TableName() string {
	return "orders"
}

// DeliveryPO - delivery persistence object, owned exclusively by one order.
type DeliveryPO struct {
	ID      string `gorm:"primaryKey;size:64"`
	OrderID string `gorm:"size:64;uniqueIndex;not null"`
	City    string `gorm:"size:100"`
	Street  string `gorm:"size:255"`
	Zipcode string `gorm:"size:20"`
	Status  string `gorm:"size:20;not null"`
}

func (DeliveryPO) TableName() string {
	return "deliveries"
}

// OrderItemPO - order line persistence object. References its item by id
// only; the item row outlives the order.
type OrderItemPO struct {
	ID         string `gorm:"primaryKey;size:64"`
	OrderID    string `gorm:"size:64;index;not null"`
	ItemID     string `gorm:"size:64;index;not null"`
	OrderPrice int64  `gorm:"not null"`
	Count      int    `gorm:"not null"`
}

func (OrderItemPO) TableName() string {
	return "order_items"
}

// FromOrderDomain decomposes the aggregate into its persistence objects.
func FromOrderDomain(o *order.Order) (*OrderPO, *DeliveryPO, []OrderItemPO) {
	orderPO := &OrderPO{
		ID:        o.ID(),
		MemberID:  o.MemberID(),
		OrderDate: o.OrderDate(),
		Status:    string(o.Status()),
	}

	d := o.Delivery()
	addr := d.Address()
	deliveryPO := &DeliveryPO{
		ID:      d.ID(),
		OrderID: o.ID(),
		City:    addr.City,
		Street:  addr.Street,
		Zipcode: addr.Zipcode,
		Status:  string(d.Status()),
	}

	items := o.Items()
	itemPOs := make([]OrderItemPO, len(items))
	for i, it := range items {
		itemPOs[i] = OrderItemPO{
			ID:         it.ID(),
			OrderID:    o.ID(),
			ItemID:     it.ItemID(),
			OrderPrice: it.OrderPrice(),
			Count:      it.Count(),
		}
	}

	return orderPO, deliveryPO, itemPOs
}

// ToDomain rebuilds an Order from its persistence objects. Member and
// Delivery come from the PO's joined associations when the loader fetched
// them; items are whatever lines the chosen strategy loaded (possibly none).
func (po *OrderPO) ToDomain(items []order.OrderItem) *order.Order {
	dto := order.ReconstructionDTO{
		ID:        po.ID,
		MemberID:  po.MemberID,
		Items:     items,
		OrderDate: po.OrderDate,
		Status:    order.Status(po.Status),
	}

	if po.Member != nil && po.Member.ID != "" {
		dto.Member = po.Member.ToDomain()
	}
	if po.Delivery != nil && po.Delivery.ID != "" {
		dto.Delivery = po.Delivery.ToDomain()
	}

	return order.RebuildFromDTO(dto)
}

// ToDomain rebuilds a Delivery from its persistence object.
func (po *DeliveryPO) ToDomain() order.Delivery {
	return order.RebuildDeliveryFromDTO(order.DeliveryReconstructionDTO{
		ID:      po.ID,
		Address: shared.NewAddress(po.City, po.Street, po.Zipcode),
		Status:  order.DeliveryStatus(po.Status),
	})
}
