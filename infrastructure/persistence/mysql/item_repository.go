package mysql

import (
	"context"
	"errors"

	"shop/domain/item"
	"shop/infrastructure/persistence"
	"shop/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

// ItemRepository - MySQL/GORM implementation of the item repository.
type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Save persists an item, creating or updating by id.
func (r *ItemRepository) Save(ctx context.Context, i *item.Item) error {
	return r.getDB(ctx).Save(po.FromItemDomain(i)).Error
}

// FindByID finds an item by id.
func (r *ItemRepository) FindByID(ctx context.Context, id string) (*item.Item, error) {
	var itemPO po.ItemPO
	result := r.getDB(ctx).First(&itemPO, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, item.NewItemNotFoundError(id)
		}
		return nil, result.Error
	}
	return itemPO.ToDomain(), nil
}

// FindAll lists all items, newest first.
func (r *ItemRepository) FindAll(ctx context.Context) ([]*item.Item, error) {
	var rows []po.ItemPO
	if err := r.getDB(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]*item.Item, len(rows))
	for i := range rows {
		items[i] = rows[i].ToDomain()
	}
	return items, nil
}

// Compile-time interface implementation check
var _ item.Repository = (*ItemRepository)(nil)
