// Package item Application Layer - item catalog use cases.
package item

import (
	"context"
	"time"

	"shop/domain/item"
)

// CreateItemRequest - input for adding an item to the catalog. Kind selects
// the subtype; author and isbn apply to books only.
type CreateItemRequest struct {
	Kind          string `json:"kind" binding:"omitempty,oneof=ITEM BOOK"`
	Name          string `json:"name" binding:"required"`
	Price         int64  `json:"price" binding:"min=0"`
	StockQuantity int    `json:"stock_quantity" binding:"min=0"`
	Author        string `json:"author"`
	ISBN          string `json:"isbn"`
}

// UpdateItemRequest - input for the explicit field-level update.
type UpdateItemRequest struct {
	Name          string `json:"name" binding:"required"`
	Price         int64  `json:"price" binding:"min=0"`
	StockQuantity int    `json:"stock_quantity" binding:"min=0"`
}

// ItemResponse - item return model.
type ItemResponse struct {
	ID            string    `json:"id"`
	Kind          string    `json:"kind"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
	Author        string    `json:"author,omitempty"`
	ISBN          string    `json:"isbn,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ApplicationService - item application service.
type ApplicationService struct {
	items item.Repository
}

// NewApplicationService creates the item application service.
func NewApplicationService(items item.Repository) *ApplicationService {
	return &ApplicationService{items: items}
}

// CreateItem adds an item to the catalog.
func (s *ApplicationService) CreateItem(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	var (
		it  *item.Item
		err error
	)
	if item.Kind(req.Kind) == item.KindBook {
		it, err = item.NewBook(req.Name, req.Price, req.StockQuantity, req.Author, req.ISBN)
	} else {
		it, err = item.NewItem(req.Name, req.Price, req.StockQuantity)
	}
	if err != nil {
		return nil, err
	}

	if err := s.items.Save(ctx, it); err != nil {
		return nil, err
	}
	return toItemResponse(it), nil
}

// UpdateItem loads the item and applies the explicit field-level update:
// named fields change, everything else is untouched.
func (s *ApplicationService) UpdateItem(ctx context.Context, itemID string, req UpdateItemRequest) (*ItemResponse, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if err := it.Update(req.Name, req.Price, req.StockQuantity); err != nil {
		return nil, err
	}

	if err := s.items.Save(ctx, it); err != nil {
		return nil, err
	}
	return toItemResponse(it), nil
}

// GetItem loads one item.
func (s *ApplicationService) GetItem(ctx context.Context, itemID string) (*ItemResponse, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return toItemResponse(it), nil
}

// ListItems lists the catalog.
func (s *ApplicationService) ListItems(ctx context.Context) ([]*ItemResponse, error) {
	items, err := s.items.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*ItemResponse, len(items))
	for i, it := range items {
		responses[i] = toItemResponse(it)
	}
	return responses, nil
}

func toItemResponse(it *item.Item) *ItemResponse {
	return &ItemResponse{
		ID:            it.ID(),
		Kind:          string(it.Kind()),
		Name:          it.Name(),
		Price:         it.Price(),
		StockQuantity: it.StockQuantity(),
		Author:        it.Author(),
		ISBN:          it.ISBN(),
		CreatedAt:     it.CreatedAt(),
		UpdatedAt:     it.UpdatedAt(),
	}
}
