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

type recordRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newRecordRepository(client *firestore.Client) *recordRepository {
	return &recordRepository{client: client}
}

func (r *recordRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_records"
	}
	return "records"
}

func (r *recordRepository) Create(ctx context.Context, rec *model.Record) (*model.Record, error) {
	now := time.Now().UTC()
	created := *rec
	created.ID = types.NewRecordID()
	created.CreatedAt = now
	created.UpdatedAt = now

	if _, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create record", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *recordRepository) Get(ctx context.Context, id types.RecordID) (*model.Record, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "record not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get record", goerr.V("id", id))
	}

	var rec model.Record
	if err := docSnap.DataTo(&rec); err != nil {
		return nil, goerr.Wrap(err, "failed to decode record", goerr.V("id", id))
	}

	return &rec, nil
}

func (r *recordRepository) List(ctx context.Context) ([]*model.Record, error) {
	iter := r.client.Collection(r.collection()).Documents(ctx)
	defer iter.Stop()

	var items []*model.Record
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate records")
		}

		var rec model.Record
		if err := docSnap.DataTo(&rec); err != nil {
			return nil, goerr.Wrap(err, "failed to decode record", goerr.V("doc_id", docSnap.Ref.ID))
		}

		items = append(items, &rec)
	}

	return items, nil
}

func (r *recordRepository) Update(ctx context.Context, rec *model.Record) (*model.Record, error) {
	docRef := r.client.Collection(r.collection()).Doc(rec.ID.String())

	existing, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "record not found", goerr.V("id", rec.ID))
		}
		return nil, goerr.Wrap(err, "failed to check record existence", goerr.V("id", rec.ID))
	}

	var prev model.Record
	if err := existing.DataTo(&prev); err != nil {
		return nil, goerr.Wrap(err, "failed to decode record", goerr.V("id", rec.ID))
	}

	updated := *rec
	updated.CreatedAt = prev.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update record", goerr.V("id", rec.ID))
	}

	return &updated, nil
}

func (r *recordRepository) Delete(ctx context.Context, id types.RecordID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "record not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check record existence", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete record", goerr.V("id", id))
	}

	return nil
}
