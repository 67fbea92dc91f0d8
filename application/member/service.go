// Package member Application Layer - member use cases.
package member

import (
	"context"
	"time"

	"shop/domain/member"
	"shop/domain/shared"
)

// RegisterMemberRequest - input for registering a member.
type RegisterMemberRequest struct {
	Name    string `json:"name" binding:"required"`
	City    string `json:"city"`
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
}

// MemberResponse - member return model.
type MemberResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Street    string    `json:"street"`
	Zipcode   string    `json:"zipcode"`
	CreatedAt time.Time `json:"created_at"`
}

// ApplicationService - member application service.
type ApplicationService struct {
	members member.Repository
}

// NewApplicationService creates the member application service.
func NewApplicationService(members member.Repository) *ApplicationService {
	return &ApplicationService{members: members}
}

// RegisterMember registers a new member. A duplicate display name surfaces
// as a conflict from the repository.
func (s *ApplicationService) RegisterMember(ctx context.Context, req RegisterMemberRequest) (*MemberResponse, error) {
	m, err := member.NewMember(req.Name, shared.NewAddress(req.City, req.Street, req.Zipcode))
	if err != nil {
		return nil, err
	}

	if err := s.members.Save(ctx, m); err != nil {
		return nil, err
	}
	return toMemberResponse(m), nil
}

// GetMember loads one member.
func (s *ApplicationService) GetMember(ctx context.Context, memberID string) (*MemberResponse, error) {
	m, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return toMemberResponse(m), nil
}

// ListMembers lists all members.
func (s *ApplicationService) ListMembers(ctx context.Context) ([]*MemberResponse, error) {
	members, err := s.members.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*MemberResponse, len(members))
	for i, m := range members {
		responses[i] = toMemberResponse(m)
	}
	return responses, nil
}

func toMemberResponse(m *member.Member) *MemberResponse {
	addr := m.Address()
	return &MemberResponse{
		ID:        m.ID(),
		Name:      m.Name(),
		City:      addr.City,
		Street:    addr.Street,
		Zipcode:   addr.Zipcode,
		CreatedAt: m.CreatedAt(),
	}
}
