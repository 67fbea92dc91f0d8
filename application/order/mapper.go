package order

import (
	"shop/domain/order"
)

// toOrderResponse converts an aggregate to its response DTO. Associations the
// loading strategy did not fetch stay empty rather than triggering extra
// reads: the strategy choice is visible in the response shape.
func toOrderResponse(o *order.Order) *OrderResponse {
	d := o.Delivery()
	addr := d.Address()

	resp := &OrderResponse{
		ID:             o.ID(),
		MemberID:       o.MemberID(),
		Status:         string(o.Status()),
		OrderDate:      o.OrderDate(),
		TotalPrice:     o.TotalPrice(),
		DeliveryStatus: string(d.Status()),
		Address: AddressResponse{
			City:    addr.City,
			Street:  addr.Street,
			Zipcode: addr.Zipcode,
		},
	}

	if m, ok := o.Member(); ok {
		resp.MemberName = m.Name()
	}

	for _, line := range o.Items() {
		lineResp := OrderLineResponse{
			ItemID:     line.ItemID(),
			OrderPrice: line.OrderPrice(),
			Count:      line.Count(),
			TotalPrice: line.TotalPrice(),
		}
		if it, ok := line.Item(); ok {
			lineResp.ItemName = it.Name()
		}
		resp.Items = append(resp.Items, lineResp)
	}

	return resp
}

func toOrderResponses(orders []*order.Order) []*OrderResponse {
	responses := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = toOrderResponse(o)
	}
	return responses
}

// toPage converts the pagination request, falling back to the default window.
func toPage(req PageRequest) order.Page {
	return order.Page{Offset: req.Offset, Limit: req.Limit}.Normalize()
}
