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

type formRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newFormRepository(client *firestore.Client) *formRepository {
	return &formRepository{client: client}
}

func (r *formRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_forms"
	}
	return "forms"
}

func (r *formRepository) Create(ctx context.Context, form *model.FormDefinition) (*model.FormDefinition, error) {
	now := time.Now().UTC()
	created := form.Clone()
	created.ID = types.NewFormID()
	created.CreatedAt = now
	created.UpdatedAt = now

	if _, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, created); err != nil {
		return nil, goerr.Wrap(err, "failed to create form", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *formRepository) Get(ctx context.Context, id types.FormID) (*model.FormDefinition, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "form not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get form", goerr.V("id", id))
	}

	var form model.FormDefinition
	if err := docSnap.DataTo(&form); err != nil {
		return nil, goerr.Wrap(err, "failed to decode form", goerr.V("id", id))
	}

	return &form, nil
}

func (r *formRepository) List(ctx context.Context) ([]*model.FormDefinition, error) {
	iter := r.client.Collection(r.collection()).Documents(ctx)
	defer iter.Stop()

	var forms []*model.FormDefinition
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate forms")
		}

		var form model.FormDefinition
		if err := docSnap.DataTo(&form); err != nil {
			return nil, goerr.Wrap(err, "failed to decode form", goerr.V("doc_id", docSnap.Ref.ID))
		}

		forms = append(forms, &form)
	}

	return forms, nil
}

func (r *formRepository) Update(ctx context.Context, form *model.FormDefinition) (*model.FormDefinition, error) {
	docRef := r.client.Collection(r.collection()).Doc(form.ID.String())

	existing, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "form not found", goerr.V("id", form.ID))
		}
		return nil, goerr.Wrap(err, "failed to check form existence", goerr.V("id", form.ID))
	}

	var prev model.FormDefinition
	if err := existing.DataTo(&prev); err != nil {
		return nil, goerr.Wrap(err, "failed to decode form", goerr.V("id", form.ID))
	}

	updated := form.Clone()
	updated.CreatedAt = prev.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update form", goerr.V("id", form.ID))
	}

	return &updated, nil
}

func (r *formRepository) Delete(ctx context.Context, id types.FormID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "form not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check form existence", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete form", goerr.V("id", id))
	}

	return nil
}
