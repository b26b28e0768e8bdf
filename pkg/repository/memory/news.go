package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/types"
)

type newsRepository struct {
	mu    sync.RWMutex
	items map[types.NewsID]*model.News
}

func newNewsRepository() *newsRepository {
	return &newsRepository{
		items: make(map[types.NewsID]*model.News),
	}
}

func (r *newsRepository) Create(ctx context.Context, n *model.News) (*model.News, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := *n
	created.ID = types.NewNewsID()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.items[created.ID] = &created
	result := created
	return &result, nil
}

func (r *newsRepository) Get(ctx context.Context, id types.NewsID) (*model.News, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, exists := r.items[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "news not found", goerr.V("id", id))
	}

	result := *n
	return &result, nil
}

func (r *newsRepository) List(ctx context.Context) ([]*model.News, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*model.News, 0, len(r.items))
	for _, n := range r.items {
		copied := *n
		items = append(items, &copied)
	}

	return items, nil
}

func (r *newsRepository) Update(ctx context.Context, n *model.News) (*model.News, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.items[n.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "news not found", goerr.V("id", n.ID))
	}

	updated := *n
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.items[updated.ID] = &updated
	result := updated
	return &result, nil
}

func (r *newsRepository) Delete(ctx context.Context, id types.NewsID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return goerr.Wrap(ErrNotFound, "news not found", goerr.V("id", id))
	}

	delete(r.items, id)
	return nil
}
