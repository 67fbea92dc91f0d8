package order

import (
	"testing"
	"time"

	"shop/domain/shared"
)

func flatRow(orderID, memberName, itemName string, price int64, count int) FlatOrderRow {
	return FlatOrderRow{
		OrderID:    orderID,
		MemberName: memberName,
		OrderDate:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Status:     StatusOrder,
		Address:    shared.NewAddress("Seoul", "Teheran-ro 1", "06000"),
		ItemName:   itemName,
		OrderPrice: price,
		Count:      count,
	}
}

func TestGroupFlatRows(t *testing.T) {
	rows := []FlatOrderRow{
		flatRow("order-1", "kim", "JPA Book", 10000, 1),
		flatRow("order-1", "kim", "Spring Book", 20000, 2),
		flatRow("order-2", "lee", "Pen", 500, 3),
	}

	summaries := GroupFlatRows(rows)

	if len(summaries) != 2 {
		t.Fatalf("len(summaries) = %d, want 2", len(summaries))
	}
	if summaries[0].OrderID != "order-1" || summaries[1].OrderID != "order-2" {
		t.Errorf("summaries out of first-appearance order: %s, %s", summaries[0].OrderID, summaries[1].OrderID)
	}
	if len(summaries[0].Items) != 2 {
		t.Fatalf("len(summaries[0].Items) = %d, want 2", len(summaries[0].Items))
	}
	if summaries[0].Items[0].ItemName != "JPA Book" || summaries[0].Items[1].ItemName != "Spring Book" {
		t.Errorf("lines lost row order: %+v", summaries[0].Items)
	}
	if len(summaries[1].Items) != 1 || summaries[1].Items[0].ItemName != "Pen" {
		t.Errorf("summaries[1].Items = %+v, want one Pen line", summaries[1].Items)
	}
}

func TestGroupFlatRowsKeyedByOrderIDAlone(t *testing.T) {
	// Rows sharing an order id group together even if an order-level field
	// differs; grouping must not silently compare derived fields.
	rows := []FlatOrderRow{
		flatRow("order-1", "kim", "JPA Book", 10000, 1),
		flatRow("order-1", "KIM CHANGED", "Spring Book", 20000, 2),
	}

	summaries := GroupFlatRows(rows)

	if len(summaries) != 1 {
		t.Fatalf("len(summaries) = %d, want 1", len(summaries))
	}
	if summaries[0].MemberName != "kim" {
		t.Errorf("MemberName = %q, want first row's value", summaries[0].MemberName)
	}
	if len(summaries[0].Items) != 2 {
		t.Errorf("len(Items) = %d, want 2", len(summaries[0].Items))
	}
}

func TestGroupFlatRowsInterleaved(t *testing.T) {
	// Interleaved rows must still land on their own order.
	rows := []FlatOrderRow{
		flatRow("order-1", "kim", "A", 100, 1),
		flatRow("order-2", "lee", "B", 200, 1),
		flatRow("order-1", "kim", "C", 300, 1),
	}

	summaries := GroupFlatRows(rows)

	if len(summaries) != 2 {
		t.Fatalf("len(summaries) = %d, want 2", len(summaries))
	}
	if len(summaries[0].Items) != 2 || len(summaries[1].Items) != 1 {
		t.Errorf("line distribution = %d/%d, want 2/1", len(summaries[0].Items), len(summaries[1].Items))
	}
	if summaries[0].Items[1].ItemName != "C" {
		t.Errorf("interleaved line lost: %+v", summaries[0].Items)
	}
}

func TestGroupFlatRowsEmpty(t *testing.T) {
	if got := GroupFlatRows(nil); len(got) != 0 {
		t.Errorf("GroupFlatRows(nil) = %v, want empty", got)
	}
}
