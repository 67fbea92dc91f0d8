package mysql

import (
	"fmt"
	"testing"
	"time"
)

func TestChunkIDs(t *testing.T) {
	ids := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = fmt.Sprintf("order-%d", i)
		}
		return out
	}

	tests := []struct {
		name       string
		count      int
		size       int
		wantChunks int
		wantLast   int
	}{
		{"empty", 0, 100, 0, 0},
		{"single partial chunk", 5, 100, 1, 5},
		{"exact multiple", 200, 100, 2, 100},
		{"remainder chunk", 250, 100, 3, 50},
		{"size one", 3, 1, 3, 1},
		{"size below one clamps", 3, 0, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := chunkIDs(ids(tt.count), tt.size)

			if len(chunks) != tt.wantChunks {
				t.Fatalf("len(chunks) = %d, want %d", len(chunks), tt.wantChunks)
			}
			if tt.wantChunks == 0 {
				return
			}
			if got := len(chunks[len(chunks)-1]); got != tt.wantLast {
				t.Errorf("last chunk size = %d, want %d", got, tt.wantLast)
			}

			// Chunks must cover every id exactly once, in order.
			var flattened []string
			for _, c := range chunks {
				flattened = append(flattened, c...)
			}
			want := ids(tt.count)
			if len(flattened) != len(want) {
				t.Fatalf("flattened %d ids, want %d", len(flattened), len(want))
			}
			for i := range want {
				if flattened[i] != want[i] {
					t.Fatalf("flattened[%d] = %s, want %s", i, flattened[i], want[i])
				}
			}
		})
	}
}

// Lines referencing the same item must come back holding one shared item
// entity, so a cancellation restores stock to a single counter.
func TestCollapseGraphRowsSharesItemEntities(t *testing.T) {
	base := orderGraphRow{
		OrderID:        "order-1",
		MemberID:       "member-1",
		MemberName:     "kim",
		OrderDate:      time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Status:         "ORDER",
		DeliveryID:     "delivery-1",
		DeliveryStatus: "READY",
		ItemID:         "item-1",
		ItemKind:       "BOOK",
		ItemName:       "JPA Book",
		ItemPrice:      10000,
		ItemStock:      5,
	}

	first := base
	first.OrderItemID = "line-1"
	first.OrderPrice = 10000
	first.Count = 2

	second := base
	second.OrderItemID = "line-2"
	second.OrderPrice = 9000
	second.Count = 3

	orders := collapseGraphRows([]orderGraphRow{first, second})
	if len(orders) != 1 {
		t.Fatalf("len(orders) = %d, want 1", len(orders))
	}

	lines := orders[0].Items()
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}

	itemA, okA := lines[0].Item()
	itemB, okB := lines[1].Item()
	if !okA || !okB {
		t.Fatal("both lines must carry their item entity")
	}
	if itemA != itemB {
		t.Error("lines of the same item must share one entity")
	}

	if err := orders[0].Cancel(); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if got := itemA.StockQuantity(); got != 10 {
		t.Errorf("StockQuantity() after cancel = %d, want 10", got)
	}
}

// The batch prefetch loader promises 1 + ceil(N/B) round trips; the chunk
// count is the ceil term.
func TestChunkCountMatchesRoundTripBound(t *testing.T) {
	for _, n := range []int{1, 99, 100, 101, 1000} {
		ids := make([]string, n)
		chunks := chunkIDs(ids, 100)
		want := (n + 99) / 100
		if len(chunks) != want {
			t.Errorf("n=%d: %d chunks, want %d", n, len(chunks), want)
		}
	}
}
