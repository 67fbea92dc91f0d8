package order

import "time"

// PlaceOrderRequest - input for placing an order.
type PlaceOrderRequest struct {
	MemberID string             `json:"member_id" binding:"required"`
	Items    []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

// OrderLineRequest - one requested line: which item and how many.
type OrderLineRequest struct {
	ItemID string `json:"item_id" binding:"required"`
	Count  int    `json:"count" binding:"required,min=1"`
}

// SearchOrdersRequest - optional dynamic search criteria, bound from query
// parameters. Absent fields apply no predicate.
type SearchOrdersRequest struct {
	Status     string `form:"status" binding:"omitempty,oneof=ORDER CANCEL"`
	MemberName string `form:"member_name"`
}

// PageRequest - offset/limit pagination, bound from query parameters.
type PageRequest struct {
	Offset int `form:"offset" binding:"omitempty,min=0"`
	Limit  int `form:"limit" binding:"omitempty,min=1,max=1000"`
}

// OrderResponse - order return model. MemberName and line ItemNames are
// present only when the loading strategy behind the endpoint fetched them.
type OrderResponse struct {
	ID             string              `json:"id"`
	MemberID       string              `json:"member_id"`
	MemberName     string              `json:"member_name,omitempty"`
	Status         string              `json:"status"`
	OrderDate      time.Time           `json:"order_date"`
	TotalPrice     int64               `json:"total_price"`
	DeliveryStatus string              `json:"delivery_status"`
	Address        AddressResponse     `json:"delivery_address"`
	Items          []OrderLineResponse `json:"items,omitempty"`
}

// OrderLineResponse - order line return model.
type OrderLineResponse struct {
	ItemID     string `json:"item_id"`
	ItemName   string `json:"item_name,omitempty"`
	OrderPrice int64  `json:"order_price"`
	Count      int    `json:"count"`
	TotalPrice int64  `json:"total_price"`
}

// AddressResponse - address return model.
type AddressResponse struct {
	City    string `json:"city"`
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
}
