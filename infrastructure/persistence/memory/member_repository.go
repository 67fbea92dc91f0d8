package memory

import (
	"context"
	"sort"

	"shop/domain/member"
)

// MemberRepository - in-memory member repository.
type MemberRepository struct {
	store *Store
}

func NewMemberRepository(store *Store) *MemberRepository {
	return &MemberRepository{store: store}
}

// Save persists a member. Duplicate display names are rejected the way the
// database unique index would reject them.
func (r *MemberRepository) Save(ctx context.Context, m *member.Member) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, rec := range r.store.members {
		if rec.Name == m.Name() && rec.ID != m.ID() {
			return member.NewDuplicateNameError(m.Name())
		}
	}

	r.store.members[m.ID()] = snapshotMember(m)
	return nil
}

// FindByID finds a member by id.
func (r *MemberRepository) FindByID(ctx context.Context, id string) (*member.Member, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.members[id]
	if !ok {
		return nil, member.NewMemberNotFoundError(id)
	}
	return rec.rebuild(), nil
}

// FindAll lists all members, newest first.
func (r *MemberRepository) FindAll(ctx context.Context) ([]*member.Member, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	records := make([]memberRecord, 0, len(r.store.members))
	for _, rec := range r.store.members {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].ID < records[j].ID
	})

	members := make([]*member.Member, len(records))
	for i, rec := range records {
		members[i] = rec.rebuild()
	}
	return members, nil
}

// Compile-time interface implementation check
var _ member.Repository = (*MemberRepository)(nil)
