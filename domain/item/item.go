/*
Package item - item subdomain.

Items outlive the orders that reference them; order lines point at items by
id and snapshot the price at order time. The one invariant that matters is
stockQuantity >= 0: stock is deducted when an order line is created and
restored when the order is cancelled, always through RemoveStock/AddStock.
*/
package item

import (
	"fmt"
	"time"

	"shop/domain/shared"

	"github.com/google/uuid"
)

// Kind discriminates item subtypes. Books carry extra fields; the store keeps
// all kinds in a single table with the discriminator column.
type Kind string

const (
	KindItem Kind = "ITEM"
	KindBook Kind = "BOOK"
)

// Item entity. Private fields, behavior-first: stock can only move through
// AddStock/RemoveStock so the non-negative invariant cannot be bypassed.
type Item struct {
	id            string
	kind          Kind
	name          string
	price         int64
	stockQuantity int

	// Book-only fields, empty for plain items.
	author string
	isbn   string

	createdAt time.Time
	updatedAt time.Time
}

// NewItem creates a plain item.
func NewItem(name string, price int64, stockQuantity int) (*Item, error) {
	return newItem(KindItem, name, price, stockQuantity, "", "")
}

// NewBook creates a book item with its extra fields.
func NewBook(name string, price int64, stockQuantity int, author, isbn string) (*Item, error) {
	return newItem(KindBook, name, price, stockQuantity, author, isbn)
}

func newItem(kind Kind, name string, price int64, stockQuantity int, author, isbn string) (*Item, error) {
	if name == "" {
		return nil, shared.NewValidationError("item", "name", "item name must not be empty")
	}
	if price < 0 {
		return nil, shared.NewValidationError("item", "price", "item price must not be negative")
	}
	if stockQuantity < 0 {
		return nil, shared.NewValidationError("item", "stockQuantity", "stock quantity must not be negative")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate item ID: %w", err)
	}

	now := time.Now()
	return &Item{
		id:            id.String(),
		kind:          kind,
		name:          name,
		price:         price,
		stockQuantity: stockQuantity,
		author:        author,
		isbn:          isbn,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// AddStock restores stock, used when an order is cancelled.
func (i *Item) AddStock(quantity int) {
	i.stockQuantity += quantity
	i.updatedAt = time.Now()
}

// RemoveStock deducts stock for an order line. Fails with ErrNotEnoughStock
// before any mutation when the requested quantity exceeds what is available.
func (i *Item) RemoveStock(quantity int) error {
	rest := i.stockQuantity - quantity
	if rest < 0 {
		return NewNotEnoughStockError(i.id, i.stockQuantity, quantity)
	}
	i.stockQuantity = rest
	i.updatedAt = time.Now()
	return nil
}

// Update changes the named fields explicitly. Unnamed fields are untouched -
// there is deliberately no whole-object merge that could null them out.
func (i *Item) Update(name string, price int64, stockQuantity int) error {
	if name == "" {
		return shared.NewValidationError("item", "name", "item name must not be empty")
	}
	if price < 0 {
		return shared.NewValidationError("item", "price", "item price must not be negative")
	}
	if stockQuantity < 0 {
		return shared.NewValidationError("item", "stockQuantity", "stock quantity must not be negative")
	}

	i.name = name
	i.price = price
	i.stockQuantity = stockQuantity
	i.updatedAt = time.Now()
	return nil
}

func (i *Item) ID() string         { return i.id }
func (i *Item) Kind() Kind         { return i.kind }
func (i *Item) Name() string       { return i.name }
func (i *Item) Price() int64       { return i.price }
func (i *Item) StockQuantity() int { return i.stockQuantity }
func (i *Item) Author() string     { return i.author }
func (i *Item) ISBN() string       { return i.isbn }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }

// ReconstructionDTO carries raw item state out of the store.
// Repository layer use only.
type ReconstructionDTO struct {
	ID            string
	Kind          Kind
	Name          string
	Price         int64
	StockQuantity int
	Author        string
	ISBN          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RebuildFromDTO reconstructs an Item from persisted state.
// Repository layer use only.
func RebuildFromDTO(dto ReconstructionDTO) *Item {
	return &Item{
		id:            dto.ID,
		kind:          dto.Kind,
		name:          dto.Name,
		price:         dto.Price,
		stockQuantity: dto.StockQuantity,
		author:        dto.Author,
		isbn:          dto.ISBN,
		createdAt:     dto.CreatedAt,
		updatedAt:     dto.UpdatedAt,
	}
}
