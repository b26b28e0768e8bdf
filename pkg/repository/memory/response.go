package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/aster-works/agora/pkg/domain/interfaces"
	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/types"
)

type responseRepository struct {
	mu        sync.Mutex
	responses map[string]*model.Response // key = submission key
	events    *eventRepository
}

func newResponseRepository(events *eventRepository) *responseRepository {
	return &responseRepository{
		responses: make(map[string]*model.Response),
		events:    events,
	}
}

func submissionKey(resp *model.Response) string {
	if resp.UserID.IsAnonymous() {
		return fmt.Sprintf("%s_%s_anon_%s", resp.EventID, resp.FormID, resp.ID)
	}
	return fmt.Sprintf("%s_%s_%s", resp.EventID, resp.FormID, resp.UserID)
}

func (r *responseRepository) Submit(ctx context.Context, resp *model.Response) (*model.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := resp.Clone()
	created.ID = types.NewResponseID()
	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now
	created.Payment.Status = created.Payment.Status.Normalize()
	created.Payment.Method = created.Payment.Method.Normalize()

	key := submissionKey(created)
	if existing, exists := r.responses[key]; exists {
		return nil, goerr.Wrap(ErrAlreadySubmitted, "duplicate submission",
			goerr.V(interfaces.SubmittedAtKey, existing.CreatedAt),
			goerr.V("event_id", created.EventID),
			goerr.V("form_id", created.FormID),
			goerr.V("user_id", created.UserID))
	}

	if !r.events.exists(created.EventID) {
		return nil, goerr.Wrap(ErrNotFound, "event not found", goerr.V("id", created.EventID))
	}

	// The repository mutex is held across the duplicate check, the store,
	// and the counter advance, matching the Firestore transaction.
	if err := r.events.incrementEnrolled(created.EventID, now); err != nil {
		return nil, err
	}

	r.responses[key] = created
	return created.Clone(), nil
}

func (r *responseRepository) Get(ctx context.Context, id types.ResponseID) (*model.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, resp := range r.responses {
		if resp.ID == id {
			return resp.Clone(), nil
		}
	}

	return nil, goerr.Wrap(ErrNotFound, "response not found", goerr.V("id", id))
}

func (r *responseRepository) GetByTriple(ctx context.Context, eventID types.EventID, formID types.FormID, userID types.UserID) (*model.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s_%s_%s", eventID, formID, userID)
	resp, exists := r.responses[key]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "response not found",
			goerr.V("event_id", eventID), goerr.V("form_id", formID), goerr.V("user_id", userID))
	}

	return resp.Clone(), nil
}

func (r *responseRepository) ListByUser(ctx context.Context, userID types.UserID, limit, offset int) ([]*model.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*model.Response
	for _, resp := range r.responses {
		if resp.UserID == userID {
			matched = append(matched, resp)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	result := make([]*model.Response, len(matched))
	for i, resp := range matched {
		result[i] = resp.Clone()
	}

	return result, nil
}

func (r *responseRepository) ListByEvent(ctx context.Context, eventID types.EventID) ([]*model.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*model.Response
	for _, resp := range r.responses {
		if resp.EventID == eventID {
			result = append(result, resp.Clone())
		}
	}

	return result, nil
}

func (r *responseRepository) List(ctx context.Context) ([]*model.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*model.Response, 0, len(r.responses))
	for _, resp := range r.responses {
		result = append(result, resp.Clone())
	}

	return result, nil
}

func (r *responseRepository) CountByEvent(ctx context.Context, eventID types.EventID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, resp := range r.responses {
		if resp.EventID == eventID {
			count++
		}
	}

	return count, nil
}

func (r *responseRepository) UpdateMeta(ctx context.Context, id types.ResponseID, review model.ReviewState, payment model.PaymentState) (*model.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, resp := range r.responses {
		if resp.ID != id {
			continue
		}

		updated := resp.Clone()
		updated.Review = review
		updated.Payment = payment
		updated.Payment.Status = updated.Payment.Status.Normalize()
		updated.Payment.Method = updated.Payment.Method.Normalize()
		updated.UpdatedAt = time.Now().UTC()

		r.responses[key] = updated
		return updated.Clone(), nil
	}

	return nil, goerr.Wrap(ErrNotFound, "response not found", goerr.V("id", id))
}
