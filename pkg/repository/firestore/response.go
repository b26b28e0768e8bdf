package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/aster-works/agora/pkg/domain/interfaces"
	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/types"
)

type responseRepository struct {
	client           *firestore.Client
	events           *eventRepository
	collectionPrefix string
}

func newResponseRepository(client *firestore.Client, events *eventRepository) *responseRepository {
	return &responseRepository{client: client, events: events}
}

func (r *responseRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_responses"
	}
	return "responses"
}

// submissionKey is the document ID of a response. For identified users it
// is deterministic over the (event, form, user) triple, so Firestore's
// per-document semantics enforce the submit-once invariant and the key
// doubles as an idempotency key for retries. Anonymous submissions get an
// independent key per response.
func submissionKey(resp *model.Response) string {
	if resp.UserID.IsAnonymous() {
		return fmt.Sprintf("%s_%s_anon_%s", resp.EventID, resp.FormID, resp.ID)
	}
	return fmt.Sprintf("%s_%s_%s", resp.EventID, resp.FormID, resp.UserID)
}

func (r *responseRepository) Submit(ctx context.Context, resp *model.Response) (*model.Response, error) {
	created := resp.Clone()
	created.ID = types.NewResponseID()
	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now
	created.Payment.Status = created.Payment.Status.Normalize()
	created.Payment.Method = created.Payment.Method.Normalize()

	respRef := r.client.Collection(r.collection()).Doc(submissionKey(created))
	eventRef := r.client.Collection(r.events.collection()).Doc(created.EventID.String())

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		// Duplicate check and counter advance share one transaction: two
		// concurrent submits for the same triple cannot both commit, and a
		// committed submit advances the counter exactly once.
		existing, err := tx.Get(respRef)
		if err == nil {
			var prev model.Response
			if derr := existing.DataTo(&prev); derr != nil {
				return goerr.Wrap(derr, "failed to decode existing response")
			}
			return goerr.Wrap(ErrAlreadySubmitted, "duplicate submission",
				goerr.V(interfaces.SubmittedAtKey, prev.CreatedAt),
				goerr.V("event_id", created.EventID),
				goerr.V("form_id", created.FormID),
				goerr.V("user_id", created.UserID))
		}
		if status.Code(err) != codes.NotFound {
			return goerr.Wrap(err, "failed to check existing response")
		}

		eventSnap, err := tx.Get(eventRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(ErrNotFound, "event not found", goerr.V("id", created.EventID))
			}
			return goerr.Wrap(err, "failed to get event")
		}

		var ev model.Event
		if err := eventSnap.DataTo(&ev); err != nil {
			return goerr.Wrap(err, "failed to decode event", goerr.V("id", created.EventID))
		}

		if err := tx.Create(respRef, created); err != nil {
			return goerr.Wrap(err, "failed to create response")
		}

		return tx.Update(eventRef, []firestore.Update{
			{Path: "Enrolled", Value: ev.Enrolled + 1},
			{Path: "UpdatedAt", Value: now},
		})
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *responseRepository) Get(ctx context.Context, id types.ResponseID) (*model.Response, error) {
	iter := r.client.Collection(r.collection()).Where("ID", "==", id.String()).Limit(1).Documents(ctx)
	defer iter.Stop()

	docSnap, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(ErrNotFound, "response not found", goerr.V("id", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get response", goerr.V("id", id))
	}

	var resp model.Response
	if err := docSnap.DataTo(&resp); err != nil {
		return nil, goerr.Wrap(err, "failed to decode response", goerr.V("id", id))
	}

	return &resp, nil
}

func (r *responseRepository) GetByTriple(ctx context.Context, eventID types.EventID, formID types.FormID, userID types.UserID) (*model.Response, error) {
	docID := fmt.Sprintf("%s_%s_%s", eventID, formID, userID)
	docSnap, err := r.client.Collection(r.collection()).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "response not found",
				goerr.V("event_id", eventID), goerr.V("form_id", formID), goerr.V("user_id", userID))
		}
		return nil, goerr.Wrap(err, "failed to get response")
	}

	var resp model.Response
	if err := docSnap.DataTo(&resp); err != nil {
		return nil, goerr.Wrap(err, "failed to decode response")
	}

	return &resp, nil
}

func (r *responseRepository) ListByUser(ctx context.Context, userID types.UserID, limit, offset int) ([]*model.Response, error) {
	query := r.client.Collection(r.collection()).
		Where("UserID", "==", userID.String()).
		OrderBy("CreatedAt", firestore.Desc)
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	return r.collect(query.Documents(ctx))
}

func (r *responseRepository) ListByEvent(ctx context.Context, eventID types.EventID) ([]*model.Response, error) {
	query := r.client.Collection(r.collection()).Where("EventID", "==", eventID.String())
	return r.collect(query.Documents(ctx))
}

func (r *responseRepository) List(ctx context.Context) ([]*model.Response, error) {
	return r.collect(r.client.Collection(r.collection()).Documents(ctx))
}

func (r *responseRepository) collect(iter *firestore.DocumentIterator) ([]*model.Response, error) {
	defer iter.Stop()

	var responses []*model.Response
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate responses")
		}

		var resp model.Response
		if err := docSnap.DataTo(&resp); err != nil {
			return nil, goerr.Wrap(err, "failed to decode response", goerr.V("doc_id", docSnap.Ref.ID))
		}

		responses = append(responses, &resp)
	}

	return responses, nil
}

func (r *responseRepository) CountByEvent(ctx context.Context, eventID types.EventID) (int, error) {
	iter := r.client.Collection(r.collection()).
		Where("EventID", "==", eventID.String()).
		Select().
		Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, goerr.Wrap(err, "failed to count responses", goerr.V("event_id", eventID))
		}
		count++
	}

	return count, nil
}

func (r *responseRepository) UpdateMeta(ctx context.Context, id types.ResponseID, review model.ReviewState, payment model.PaymentState) (*model.Response, error) {
	iter := r.client.Collection(r.collection()).Where("ID", "==", id.String()).Limit(1).Documents(ctx)
	defer iter.Stop()

	docSnap, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(ErrNotFound, "response not found", goerr.V("id", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find response", goerr.V("id", id))
	}

	var resp model.Response
	if err := docSnap.DataTo(&resp); err != nil {
		return nil, goerr.Wrap(err, "failed to decode response", goerr.V("id", id))
	}

	resp.Review = review
	resp.Payment = payment
	resp.Payment.Status = resp.Payment.Status.Normalize()
	resp.Payment.Method = resp.Payment.Method.Normalize()
	resp.UpdatedAt = time.Now().UTC()

	if _, err := docSnap.Ref.Set(ctx, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to update response metadata", goerr.V("id", id))
	}

	return &resp, nil
}
