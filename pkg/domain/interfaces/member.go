package interfaces

import (
	"context"

	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/types"
)

// MemberRepository defines the interface for Member data access
type MemberRepository interface {
	// Put creates or replaces the member record keyed by its UserID
	Put(ctx context.Context, m *model.Member) (*model.Member, error)

	// Get retrieves a member by ID
	Get(ctx context.Context, id types.UserID) (*model.Member, error)

	// List retrieves all members
	List(ctx context.Context) ([]*model.Member, error)

	// Delete removes a member record
	Delete(ctx context.Context, id types.UserID) error
}
