package mysql

import (
	"context"

	"shop/domain/shared"
	"shop/infrastructure/persistence"
	"shop/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

// UnitOfWork wraps a function in one database transaction. The transaction
// travels down through the context; repositories pick it up via
// persistence.TxFromContext so every operation inside fn shares it.
type UnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// Execute runs fn inside a transaction. Any error from fn rolls everything
// back; nil commits.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(persistence.ContextWithTx(ctx, tx))
	})
}

// Migrate creates or updates the schema for all persistence objects.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&po.MemberPO{},
		&po.ItemPO{},
		&po.OrderPO{},
		&po.DeliveryPO{},
		&po.OrderItemPO{},
	)
}

// Compile-time interface implementation check
var _ shared.UnitOfWork = (*UnitOfWork)(nil)
