package usecase

import (
	"context"

	"github.com/aster-works/agora/pkg/domain/interfaces"
	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type EventUseCase struct {
	repo interfaces.Repository
}

func validateEvent(ev *model.Event) error {
	if ev.Title == "" {
		return goerr.Wrap(ErrInvalidInput, "event title is required")
	}
	if ev.Capacity < 0 {
		return goerr.Wrap(ErrInvalidInput, "capacity must not be negative")
	}
	if ev.Price < 0 {
		return goerr.Wrap(ErrInvalidInput, "price must not be negative")
	}
	if !ev.EnrollStart.IsZero() && !ev.EnrollEnd.IsZero() && ev.EnrollEnd.Before(ev.EnrollStart) {
		return goerr.Wrap(ErrInvalidInput, "enrollment window ends before it starts")
	}
	return nil
}

func (u *EventUseCase) Create(ctx context.Context, ev *model.Event) (*model.Event, error) {
	if err := validateEvent(ev); err != nil {
		return nil, err
	}
	return u.repo.Event().Create(ctx, ev)
}

func (u *EventUseCase) Get(ctx context.Context, id types.EventID) (*model.Event, error) {
	return u.repo.Event().Get(ctx, id)
}

func (u *EventUseCase) List(ctx context.Context) ([]*model.Event, error) {
	return u.repo.Event().List(ctx)
}

// ListVisible returns only events published to members.
func (u *EventUseCase) ListVisible(ctx context.Context) ([]*model.Event, error) {
	all, err := u.repo.Event().List(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]*model.Event, 0, len(all))
	for _, ev := range all {
		if ev.Visible {
			visible = append(visible, ev)
		}
	}
	return visible, nil
}

func (u *EventUseCase) Update(ctx context.Context, ev *model.Event) (*model.Event, error) {
	if err := validateEvent(ev); err != nil {
		return nil, err
	}
	return u.repo.Event().Update(ctx, ev)
}

func (u *EventUseCase) Delete(ctx context.Context, id types.EventID) error {
	return u.repo.Event().Delete(ctx, id)
}
