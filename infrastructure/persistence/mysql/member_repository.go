package mysql

import (
	"context"
	"errors"

	"shop/domain/member"
	"shop/infrastructure/persistence"
	"shop/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

// MemberRepository - MySQL/GORM implementation of the member repository.
type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Save persists a member. The unique index on name surfaces duplicates as
// member.ErrDuplicateName.
func (r *MemberRepository) Save(ctx context.Context, m *member.Member) error {
	memberPO := po.FromMemberDomain(m)

	if err := r.getDB(ctx).Save(memberPO).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return member.NewDuplicateNameError(m.Name())
		}
		return err
	}
	return nil
}

// FindByID finds a member by id.
func (r *MemberRepository) FindByID(ctx context.Context, id string) (*member.Member, error) {
	var memberPO po.MemberPO
	result := r.getDB(ctx).First(&memberPO, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, member.NewMemberNotFoundError(id)
		}
		return nil, result.Error
	}
	return memberPO.ToDomain(), nil
}

// FindAll lists all members, newest first.
func (r *MemberRepository) FindAll(ctx context.Context) ([]*member.Member, error) {
	var rows []po.MemberPO
	if err := r.getDB(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	members := make([]*member.Member, len(rows))
	for i := range rows {
		members[i] = rows[i].ToDomain()
	}
	return members, nil
}

// Compile-time interface implementation check
var _ member.Repository = (*MemberRepository)(nil)
