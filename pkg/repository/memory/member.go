package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/types"
)

type memberRepository struct {
	mu      sync.RWMutex
	members map[types.UserID]*model.Member
}

func newMemberRepository() *memberRepository {
	return &memberRepository{
		members: make(map[types.UserID]*model.Member),
	}
}

func copyMember(m *model.Member) *model.Member {
	copied := *m
	return &copied
}

func (r *memberRepository) Put(ctx context.Context, m *model.Member) (*model.Member, error) {
	if m.ID == "" {
		return nil, goerr.New("member ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyMember(m)
	stored.UpdatedAt = time.Now().UTC()
	if stored.JoinedAt.IsZero() {
		stored.JoinedAt = stored.UpdatedAt
	}

	r.members[stored.ID] = stored
	return copyMember(stored), nil
}

func (r *memberRepository) Get(ctx context.Context, id types.UserID) (*model.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, exists := r.members[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "member not found", goerr.V("id", id))
	}

	return copyMember(m), nil
}

func (r *memberRepository) List(ctx context.Context) ([]*model.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := make([]*model.Member, 0, len(r.members))
	for _, m := range r.members {
		members = append(members, copyMember(m))
	}

	return members, nil
}

func (r *memberRepository) Delete(ctx context.Context, id types.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.members[id]; !exists {
		return goerr.Wrap(ErrNotFound, "member not found", goerr.V("id", id))
	}

	delete(r.members, id)
	return nil
}
