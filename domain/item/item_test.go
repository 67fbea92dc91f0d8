package item

import (
	"errors"
	"testing"

	"shop/domain/shared"
)

func TestNewItemValidation(t *testing.T) {
	tests := []struct {
		name      string
		itemName  string
		price     int64
		stock     int
		wantError bool
	}{
		{"valid", "JPA Book", 10000, 10, false},
		{"empty name", "", 10000, 10, true},
		{"negative price", "JPA Book", -1, 10, true},
		{"negative stock", "JPA Book", 10000, -1, true},
		{"zero stock ok", "JPA Book", 10000, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewItem(tt.itemName, tt.price, tt.stock)
			if (err != nil) != tt.wantError {
				t.Errorf("NewItem() error = %v, wantError %v", err, tt.wantError)
			}
			if tt.wantError && !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("NewItem() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestNewBook(t *testing.T) {
	b, err := NewBook("JPA Book", 10000, 10, "kim", "979-11-0000-000-0")
	if err != nil {
		t.Fatalf("NewBook() error = %v", err)
	}
	if b.Kind() != KindBook {
		t.Errorf("Kind() = %v, want %v", b.Kind(), KindBook)
	}
	if b.Author() != "kim" || b.ISBN() != "979-11-0000-000-0" {
		t.Errorf("book fields = %q/%q", b.Author(), b.ISBN())
	}
}

func TestRemoveStock(t *testing.T) {
	it, _ := NewItem("JPA Book", 10000, 10)

	if err := it.RemoveStock(3); err != nil {
		t.Fatalf("RemoveStock(3) error = %v", err)
	}
	if got := it.StockQuantity(); got != 7 {
		t.Errorf("StockQuantity() = %d, want 7", got)
	}

	// Removing down to exactly zero is allowed.
	if err := it.RemoveStock(7); err != nil {
		t.Fatalf("RemoveStock(7) error = %v", err)
	}
	if got := it.StockQuantity(); got != 0 {
		t.Errorf("StockQuantity() = %d, want 0", got)
	}
}

func TestRemoveStockInsufficient(t *testing.T) {
	it, _ := NewItem("JPA Book", 10000, 2)

	err := it.RemoveStock(3)
	if !errors.Is(err, ErrNotEnoughStock) {
		t.Fatalf("RemoveStock() error = %v, want ErrNotEnoughStock", err)
	}
	if got := it.StockQuantity(); got != 2 {
		t.Errorf("StockQuantity() = %d, failed removal must not mutate", got)
	}
}

func TestAddStock(t *testing.T) {
	it, _ := NewItem("JPA Book", 10000, 2)
	it.AddStock(3)
	if got := it.StockQuantity(); got != 5 {
		t.Errorf("StockQuantity() = %d, want 5", got)
	}
}

func TestUpdate(t *testing.T) {
	it, _ := NewBook("JPA Book", 10000, 10, "kim", "979-11-0000-000-0")

	if err := it.Update("JPA Book 2nd", 12000, 20); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if it.Name() != "JPA Book 2nd" || it.Price() != 12000 || it.StockQuantity() != 20 {
		t.Errorf("updated fields = %q/%d/%d", it.Name(), it.Price(), it.StockQuantity())
	}
	// Fields outside the update stay put.
	if it.Author() != "kim" || it.Kind() != KindBook {
		t.Errorf("untouched fields changed: %q/%v", it.Author(), it.Kind())
	}
}

func TestUpdateValidation(t *testing.T) {
	it, _ := NewItem("JPA Book", 10000, 10)

	if err := it.Update("", 10000, 10); !errors.Is(err, shared.ErrInvalidInput) {
		t.Errorf("Update(empty name) error = %v, want ErrInvalidInput", err)
	}
	if it.Name() != "JPA Book" {
		t.Errorf("Name() = %q, rejected update must not mutate", it.Name())
	}
}
