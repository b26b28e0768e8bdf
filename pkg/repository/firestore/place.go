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

type placeRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newPlaceRepository(client *firestore.Client) *placeRepository {
	return &placeRepository{client: client}
}

func (r *placeRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_places"
	}
	return "places"
}

func (r *placeRepository) Create(ctx context.Context, p *model.Place) (*model.Place, error) {
	now := time.Now().UTC()
	created := *p
	created.ID = types.NewPlaceID()
	created.CreatedAt = now
	created.UpdatedAt = now

	if _, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create place", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *placeRepository) Get(ctx context.Context, id types.PlaceID) (*model.Place, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "place not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get place", goerr.V("id", id))
	}

	var p model.Place
	if err := docSnap.DataTo(&p); err != nil {
		return nil, goerr.Wrap(err, "failed to decode place", goerr.V("id", id))
	}

	return &p, nil
}

func (r *placeRepository) List(ctx context.Context) ([]*model.Place, error) {
	iter := r.client.Collection(r.collection()).Documents(ctx)
	defer iter.Stop()

	var items []*model.Place
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate places")
		}

		var p model.Place
		if err := docSnap.DataTo(&p); err != nil {
			return nil, goerr.Wrap(err, "failed to decode place", goerr.V("doc_id", docSnap.Ref.ID))
		}

		items = append(items, &p)
	}

	return items, nil
}

func (r *placeRepository) Update(ctx context.Context, p *model.Place) (*model.Place, error) {
	docRef := r.client.Collection(r.collection()).Doc(p.ID.String())

	existing, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "place not found", goerr.V("id", p.ID))
		}
		return nil, goerr.Wrap(err, "failed to check place existence", goerr.V("id", p.ID))
	}

	var prev model.Place
	if err := existing.DataTo(&prev); err != nil {
		return nil, goerr.Wrap(err, "failed to decode place", goerr.V("id", p.ID))
	}

	updated := *p
	updated.CreatedAt = prev.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update place", goerr.V("id", p.ID))
	}

	return &updated, nil
}

func (r *placeRepository) Delete(ctx context.Context, id types.PlaceID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "place not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check place existence", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete place", goerr.V("id", id))
	}

	return nil
}
