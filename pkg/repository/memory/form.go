package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/types"
)

type formRepository struct {
	mu    sync.RWMutex
	forms map[types.FormID]*model.FormDefinition
}

func newFormRepository() *formRepository {
	return &formRepository{
		forms: make(map[types.FormID]*model.FormDefinition),
	}
}

func (r *formRepository) Create(ctx context.Context, form *model.FormDefinition) (*model.FormDefinition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := form.Clone()
	created.ID = types.NewFormID()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.forms[created.ID] = &created

	result := created.Clone()
	return &result, nil
}

func (r *formRepository) Get(ctx context.Context, id types.FormID) (*model.FormDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	form, exists := r.forms[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "form not found", goerr.V("id", id))
	}

	result := form.Clone()
	return &result, nil
}

func (r *formRepository) List(ctx context.Context) ([]*model.FormDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	forms := make([]*model.FormDefinition, 0, len(r.forms))
	for _, form := range r.forms {
		f := form.Clone()
		forms = append(forms, &f)
	}

	return forms, nil
}

func (r *formRepository) Update(ctx context.Context, form *model.FormDefinition) (*model.FormDefinition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.forms[form.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "form not found", goerr.V("id", form.ID))
	}

	updated := form.Clone()
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.forms[updated.ID] = &updated

	result := updated.Clone()
	return &result, nil
}

func (r *formRepository) Delete(ctx context.Context, id types.FormID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.forms[id]; !exists {
		return goerr.Wrap(ErrNotFound, "form not found", goerr.V("id", id))
	}

	delete(r.forms, id)
	return nil
}
