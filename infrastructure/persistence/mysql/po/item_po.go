package po

import (
	"time"

	"shop/domain/item"
)

// ItemPO - item persistence object. All kinds share one table; Kind is the
// discriminator and the book-only columns stay empty for plain items.
type ItemPO struct {
	ID            string    `gorm:"primaryKey;size:64"`
	Kind          string    `gorm:"size:10;not null"`
	Name          string    `gorm:"size:255;not null"`
	Price         int64     `gorm:"not null"`
	StockQuantity int       `gorm:"not null"`
	Author        string    `gorm:"size:255"`
	ISBN          string    `gorm:"column:isbn;size:32"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (ItemPO) TableName() string {
	return "items"
}

// FromItemDomain converts the domain model to its persistence object.
func FromItemDomain(i *item.Item) *ItemPO {
	return &ItemPO{
		ID:            i.ID(),
		Kind:          string(i.Kind()),
		Name:          i.Name(),
		Price:         i.Price(),
		StockQuantity: i.StockQuantity(),
		Author:        i.Author(),
		ISBN:          i.ISBN(),
		CreatedAt:     i.CreatedAt(),
		UpdatedAt:     i.UpdatedAt(),
	}
}

// ToDomain converts the persistence object back to the domain model.
func (po *ItemPO) ToDomain() *item.Item {
	return item.RebuildFromDTO(item.ReconstructionDTO{
		ID:            po.ID,
		Kind:          item.Kind(po.Kind),
		Name:          po.Name,
		Price:         po.Price,
		StockQuantity: po.StockQuantity,
		Author:        po.Author,
		ISBN:          po.ISBN,
		CreatedAt:     po.CreatedAt,
		UpdatedAt:     po.UpdatedAt,
	})
}
