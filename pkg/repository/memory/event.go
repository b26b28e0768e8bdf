package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/types"
)

type eventRepository struct {
	mu     sync.RWMutex
	events map[types.EventID]*model.Event
}

func newEventRepository() *eventRepository {
	return &eventRepository{
		events: make(map[types.EventID]*model.Event),
	}
}

func copyEvent(ev *model.Event) *model.Event {
	copied := *ev
	if ev.Restrict.Departments != nil {
		copied.Restrict.Departments = append([]string(nil), ev.Restrict.Departments...)
	}
	if ev.Restrict.ClassYears != nil {
		copied.Restrict.ClassYears = append([]int(nil), ev.Restrict.ClassYears...)
	}
	return &copied
}

func (r *eventRepository) Create(ctx context.Context, ev *model.Event) (*model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyEvent(ev)
	created.ID = types.NewEventID()
	created.Enrolled = 0
	created.CreatedAt = now
	created.UpdatedAt = now

	r.events[created.ID] = created
	return copyEvent(created), nil
}

func (r *eventRepository) Get(ctx context.Context, id types.EventID) (*model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ev, exists := r.events[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "event not found", goerr.V("id", id))
	}

	return copyEvent(ev), nil
}

func (r *eventRepository) List(ctx context.Context) ([]*model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]*model.Event, 0, len(r.events))
	for _, ev := range r.events {
		events = append(events, copyEvent(ev))
	}

	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, ev *model.Event) (*model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.events[ev.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "event not found", goerr.V("id", ev.ID))
	}

	updated := copyEvent(ev)
	updated.Enrolled = existing.Enrolled
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.events[updated.ID] = updated
	return copyEvent(updated), nil
}

func (r *eventRepository) Delete(ctx context.Context, id types.EventID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.events[id]; !exists {
		return goerr.Wrap(ErrNotFound, "event not found", goerr.V("id", id))
	}

	delete(r.events, id)
	return nil
}

func (r *eventRepository) SetEnrolled(ctx context.Context, id types.EventID, n int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ev, exists := r.events[id]
	if !exists {
		return goerr.Wrap(ErrNotFound, "event not found", goerr.V("id", id))
	}

	ev.Enrolled = n
	ev.UpdatedAt = time.Now().UTC()
	return nil
}

// incrementEnrolled is used by the response repository within its
// submission critical section.
func (r *eventRepository) incrementEnrolled(id types.EventID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ev, exists := r.events[id]
	if !exists {
		return goerr.Wrap(ErrNotFound, "event not found", goerr.V("id", id))
	}

	ev.Enrolled++
	ev.UpdatedAt = at
	return nil
}

func (r *eventRepository) exists(id types.EventID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.events[id]
	return ok
}
