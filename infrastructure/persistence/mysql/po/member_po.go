package po

import (
	"time"

	"shop/domain/member"
	"shop/domain/shared"
)

// MemberPO - member persistence object. Mapping only, no business logic.
type MemberPO struct {
	ID        string    `gorm:"primaryKey;size:64"`
	Name      string    `gorm:"size:100;uniqueIndex;not null"`
	City      string    `gorm:"size:100"`
	Street    string    `gorm:"size:255"`
	Zipcode   string    `gorm:"size:20"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (MemberPO) TableName() string {
	return "members"
}

// FromMemberDomain converts the domain model to its persistence object.
func FromMemberDomain(m *member.Member) *MemberPO {
	addr := m.Address()
	return &MemberPO{
		ID:        m.ID(),
		Name:      m.Name(),
		City:      addr.City,
		Street:    addr.Street,
		Zipcode:   addr.Zipcode,
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	}
}

// ToDomain converts the persistence object back to the domain model.
func (po *MemberPO) ToDomain() *member.Member {
	return member.RebuildFromDTO(member.ReconstructionDTO{
		ID:        po.ID,
		Name:      po.Name,
		Address:   shared.NewAddress(po.City, po.Street, po.Zipcode),
		CreatedAt: po.CreatedAt,
		UpdatedAt: po.UpdatedAt,
	})
}
