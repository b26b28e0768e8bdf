package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/types"
)

type eventRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newEventRepository(client *firestore.Client) *eventRepository {
	return &eventRepository{client: client}
}

func (r *eventRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_events"
	}
	return "events"
}

func (r *eventRepository) Create(ctx context.Context, ev *model.Event) (*model.Event, error) {
	now := time.Now().UTC()
	created := *ev
	created.ID = types.NewEventID()
	created.Enrolled = 0
	created.CreatedAt = now
	created.UpdatedAt = now

	if _, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create event", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *eventRepository) Get(ctx context.Context, id types.EventID) (*model.Event, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "event not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get event", goerr.V("id", id))
	}

	var ev model.Event
	if err := docSnap.DataTo(&ev); err != nil {
		return nil, goerr.Wrap(err, "failed to decode event", goerr.V("id", id))
	}

	return &ev, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*model.Event, error) {
	iter := r.client.Collection(r.collection()).Documents(ctx)
	defer iter.Stop()

	var events []*model.Event
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate events")
		}

		var ev model.Event
		if err := docSnap.DataTo(&ev); err != nil {
			return nil, goerr.Wrap(err, "failed to decode event", goerr.V("doc_id", docSnap.Ref.ID))
		}

		events = append(events, &ev)
	}

	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, ev *model.Event) (*model.Event, error) {
	docRef := r.client.Collection(r.collection()).Doc(ev.ID.String())

	existing, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "event not found", goerr.V("id", ev.ID))
		}
		return nil, goerr.Wrap(err, "failed to check event existence", goerr.V("id", ev.ID))
	}

	var prev model.Event
	if err := existing.DataTo(&prev); err != nil {
		return nil, goerr.Wrap(err, "failed to decode event", goerr.V("id", ev.ID))
	}

	// Enrolled is owned by response submission; an event update keeps the
	// stored counter.
	updated := *ev
	updated.Enrolled = prev.Enrolled
	updated.CreatedAt = prev.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update event", goerr.V("id", ev.ID))
	}

	return &updated, nil
}

func (r *eventRepository) Delete(ctx context.Context, id types.EventID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "event not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check event existence", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete event", goerr.V("id", id))
	}

	return nil
}

func (r *eventRepository) SetEnrolled(ctx context.Context, id types.EventID, n int) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	_, err := docRef.Update(ctx, []firestore.Update{
		{Path: "Enrolled", Value: n},
		{Path: "UpdatedAt", Value: time.Now().UTC()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "event not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to set enrolled count", goerr.V("id", id))
	}

	return nil
}
