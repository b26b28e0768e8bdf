package interfaces

import (
	"context"

	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/types"
)

// EventRepository defines the interface for Event data access
type EventRepository interface {
	Create(ctx context.Context, ev *model.Event) (*model.Event, error)
	Get(ctx context.Context, id types.EventID) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
	Update(ctx context.Context, ev *model.Event) (*model.Event, error)
	Delete(ctx context.Context, id types.EventID) error

	// SetEnrolled overwrites the enrollment counter. Used by the
	// reconciliation worker to repair drift; normal advancement happens
	// inside ResponseRepository.Submit.
	SetEnrolled(ctx context.Context, id types.EventID, n int) error
}
