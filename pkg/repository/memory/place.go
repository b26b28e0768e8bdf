package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/types"
)

type placeRepository struct {
	mu    sync.RWMutex
	items map[types.PlaceID]*model.Place
}

func newPlaceRepository() *placeRepository {
	return &placeRepository{
		items: make(map[types.PlaceID]*model.Place),
	}
}

func (r *placeRepository) Create(ctx context.Context, p *model.Place) (*model.Place, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := *p
	created.ID = types.NewPlaceID()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.items[created.ID] = &created
	result := created
	return &result, nil
}

func (r *placeRepository) Get(ctx context.Context, id types.PlaceID) (*model.Place, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.items[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "place not found", goerr.V("id", id))
	}

	result := *p
	return &result, nil
}

func (r *placeRepository) List(ctx context.Context) ([]*model.Place, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*model.Place, 0, len(r.items))
	for _, p := range r.items {
		copied := *p
		items = append(items, &copied)
	}

	return items, nil
}

func (r *placeRepository) Update(ctx context.Context, p *model.Place) (*model.Place, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.items[p.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "place not found", goerr.V("id", p.ID))
	}

	updated := *p
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.items[updated.ID] = &updated
	result := updated
	return &result, nil
}

func (r *placeRepository) Delete(ctx context.Context, id types.PlaceID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return goerr.Wrap(ErrNotFound, "place not found", goerr.V("id", id))
	}

	delete(r.items, id)
	return nil
}
