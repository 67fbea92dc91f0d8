/*
Package member - member subdomain.

Members are plain entities with no special loading strategy: create, read by
id, list. Orders reference members one-directionally by id; the member side
keeps no back-reference collection, so the object graph stays acyclic.
*/
package member

import (
	"fmt"
	"time"

	"shop/domain/shared"

	"github.com/google/uuid"
)

// Member entity. Fields are private; construction goes through NewMember so
// invariants hold from the first moment. The display name is unique, enforced
// by the store's unique index and surfaced as a conflict error on save.
type Member struct {
	id        string
	name      string
	address   shared.Address
	createdAt time.Time
	updatedAt time.Time
}

// NewMember creates a member with a fresh identity.
func NewMember(name string, address shared.Address) (*Member, error) {
	if name == "" {
		return nil, shared.NewValidationError("member", "name", "member name must not be empty")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate member ID: %w", err)
	}

	now := time.Now()
	return &Member{
		id:        id.String(),
		name:      name,
		address:   address,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func (m *Member) ID() string              { return m.id }
func (m *Member) Name() string            { return m.name }
func (m *Member) Address() shared.Address { return m.address }
func (m *Member) CreatedAt() time.Time    { return m.createdAt }
func (m *Member) UpdatedAt() time.Time    { return m.updatedAt }

// ReconstructionDTO carries raw member state out of the store.
// Repository layer use only.
type ReconstructionDTO struct {
	ID        string
	Name      string
	Address   shared.Address
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RebuildFromDTO reconstructs a Member from persisted state.
// Repository layer use only.
func RebuildFromDTO(dto ReconstructionDTO) *Member {
	return &Member{
		id:        dto.ID,
		name:      dto.Name,
		address:   dto.Address,
		createdAt: dto.CreatedAt,
		updatedAt: dto.UpdatedAt,
	}
}
