package order

// GroupFlatRows rebuilds nested order summaries from the denormalized rows of
// a single fully-joined query (one row per order line).
//
// Grouping is keyed by order id ALONE, deliberately: all order-level fields
// in rows sharing an id derive from the same order, so comparing them would
// add nothing - and equality over derived fields must be a decision, not an
// accident. Summaries come out in first-appearance order; each summary's
// lines keep their row order.
func GroupFlatRows(rows []FlatOrderRow) []OrderSummary {
	index := make(map[string]int, len(rows))
	summaries := make([]OrderSummary, 0, len(rows))

	for _, row := range rows {
		i, ok := index[row.OrderID]
		if !ok {
			i = len(summaries)
			index[row.OrderID] = i
			summaries = append(summaries, OrderSummary{
				OrderID:    row.OrderID,
				MemberName: row.MemberName,
				OrderDate:  row.OrderDate,
				Status:     row.Status,
				Address:    row.Address,
			})
		}
		summaries[i].Items = append(summaries[i].Items, OrderItemLine{
			OrderID:    row.OrderID,
			ItemName:   row.ItemName,
			OrderPrice: row.OrderPrice,
			Count:      row.Count,
		})
	}

	return summaries
}
