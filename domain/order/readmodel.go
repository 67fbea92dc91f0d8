package order

import (
	"time"

	"shop/domain/shared"
)

// Read models: value records with no identity beyond their fields, produced
// by the query side and consumed by presentation. The one exception is
// OrderSummary, whose deduplication key is the order id alone - GroupFlatRows
// depends on that.

// OrderSummary is the flat order shape for list views: order-level fields
// plus, for the collection variants, the nested line records.
type OrderSummary struct {
	OrderID    string          `json:"order_id"`
	MemberName string          `json:"member_name"`
	OrderDate  time.Time       `json:"order_date"`
	Status     Status          `json:"status"`
	Address    shared.Address  `json:"delivery_address"`
	Items      []OrderItemLine `json:"order_items,omitempty"`
}

// OrderItemLine is one line record: the intermediate shape produced before
// grouping, and the element type of OrderSummary.Items.
type OrderItemLine struct {
	OrderID    string `json:"order_id"`
	ItemName   string `json:"item_name"`
	OrderPrice int64  `json:"order_price"`
	Count      int    `json:"count"`
}

// FlatOrderRow is one fully denormalized row of the single-query flat
// strategy: order-level fields repeated once per line item.
type FlatOrderRow struct {
	OrderID    string
	MemberName string
	OrderDate  time.Time
	Status     Status
	Address    shared.Address
	ItemName   string
	OrderPrice int64
	Count      int
}
