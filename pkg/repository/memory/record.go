package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/types"
)

type recordRepository struct {
	mu    sync.RWMutex
	items map[types.RecordID]*model.Record
}

func newRecordRepository() *recordRepository {
	return &recordRepository{
		items: make(map[types.RecordID]*model.Record),
	}
}

func (r *recordRepository) Create(ctx context.Context, rec *model.Record) (*model.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := *rec
	created.ID = types.NewRecordID()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.items[created.ID] = &created
	result := created
	return &result, nil
}

func (r *recordRepository) Get(ctx context.Context, id types.RecordID) (*model.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, exists := r.items[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "record not found", goerr.V("id", id))
	}

	result := *rec
	return &result, nil
}

func (r *recordRepository) List(ctx context.Context) ([]*model.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*model.Record, 0, len(r.items))
	for _, rec := range r.items {
		copied := *rec
		items = append(items, &copied)
	}

	return items, nil
}

func (r *recordRepository) Update(ctx context.Context, rec *model.Record) (*model.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.items[rec.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "record not found", goerr.V("id", rec.ID))
	}

	updated := *rec
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.items[updated.ID] = &updated
	result := updated
	return &result, nil
}

func (r *recordRepository) Delete(ctx context.Context, id types.RecordID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return goerr.Wrap(ErrNotFound, "record not found", goerr.V("id", id))
	}

	delete(r.items, id)
	return nil
}
