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

type newsRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newNewsRepository(client *firestore.Client) *newsRepository {
	return &newsRepository{client: client}
}

func (r *newsRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_news"
	}
	return "news"
}

func (r *newsRepository) Create(ctx context.Context, n *model.News) (*model.News, error) {
	now := time.Now().UTC()
	created := *n
	created.ID = types.NewNewsID()
	created.CreatedAt = now
	created.UpdatedAt = now

	if _, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create news", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *newsRepository) Get(ctx context.Context, id types.NewsID) (*model.News, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "news not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get news", goerr.V("id", id))
	}

	var n model.News
	if err := docSnap.DataTo(&n); err != nil {
		return nil, goerr.Wrap(err, "failed to decode news", goerr.V("id", id))
	}

	return &n, nil
}

func (r *newsRepository) List(ctx context.Context) ([]*model.News, error) {
	iter := r.client.Collection(r.collection()).Documents(ctx)
	defer iter.Stop()

	var items []*model.News
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate news")
		}

		var n model.News
		if err := docSnap.DataTo(&n); err != nil {
			return nil, goerr.Wrap(err, "failed to decode news", goerr.V("doc_id", docSnap.Ref.ID))
		}

		items = append(items, &n)
	}

	return items, nil
}

func (r *newsRepository) Update(ctx context.Context, n *model.News) (*model.News, error) {
	docRef := r.client.Collection(r.collection()).Doc(n.ID.String())

	existing, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "news not found", goerr.V("id", n.ID))
		}
		return nil, goerr.Wrap(err, "failed to check news existence", goerr.V("id", n.ID))
	}

	var prev model.News
	if err := existing.DataTo(&prev); err != nil {
		return nil, goerr.Wrap(err, "failed to decode news", goerr.V("id", n.ID))
	}

	updated := *n
	updated.CreatedAt = prev.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update news", goerr.V("id", n.ID))
	}

	return &updated, nil
}

func (r *newsRepository) Delete(ctx context.Context, id types.NewsID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "news not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check news existence", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete news", goerr.V("id", id))
	}

	return nil
}
