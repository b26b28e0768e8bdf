package interfaces

import (
	"context"

	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/types"
)

// ResponseRepository defines the interface for Response data access.
type ResponseRepository interface {
	// Submit atomically creates the response and advances the owning
	// event's enrollment counter by one. At most one response may exist per
	// (event, form, user) triple; a second submit fails with
	// ErrAlreadySubmitted carrying the original submission time, writes
	// nothing, and leaves the counter untouched. Anonymous responses
	// (empty UserID) are each stored independently.
	Submit(ctx context.Context, resp *model.Response) (*model.Response, error)

	// Get retrieves a response by ID
	Get(ctx context.Context, id types.ResponseID) (*model.Response, error)

	// GetByTriple retrieves the response for an exact (event, form, user)
	// triple. Returns ErrNotFound when the user has not submitted.
	GetByTriple(ctx context.Context, eventID types.EventID, formID types.FormID, userID types.UserID) (*model.Response, error)

	// ListByUser retrieves a user's responses ordered by creation time
	// descending, paginated by limit/offset. limit <= 0 means no limit.
	ListByUser(ctx context.Context, userID types.UserID, limit, offset int) ([]*model.Response, error)

	// ListByEvent retrieves all responses for an event
	ListByEvent(ctx context.Context, eventID types.EventID) ([]*model.Response, error)

	// List retrieves all responses
	List(ctx context.Context) ([]*model.Response, error)

	// CountByEvent counts stored responses for an event
	CountByEvent(ctx context.Context, eventID types.EventID) (int, error)

	// UpdateMeta replaces the review and payment metadata of an existing
	// response. Answers and snapshot are never touched.
	UpdateMeta(ctx context.Context, id types.ResponseID, review model.ReviewState, payment model.PaymentState) (*model.Response, error)
}
