package usecase

import (
	"context"

	"github.com/aster-works/agora/pkg/domain/interfaces"
	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type FormUseCase struct {
	repo interfaces.Repository
}

// Create validates and stores a new form definition. When the form names
// an event, the event must exist and gets linked back to the form.
func (u *FormUseCase) Create(ctx context.Context, form *model.FormDefinition) (*model.FormDefinition, error) {
	if err := form.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidInput, err.Error())
	}

	if form.EventID != "" {
		if _, err := u.repo.Event().Get(ctx, form.EventID); err != nil {
			return nil, err
		}
	}

	created, err := u.repo.Form().Create(ctx, form)
	if err != nil {
		return nil, err
	}

	if created.EventID != "" {
		if err := u.linkEvent(ctx, created.EventID, created.ID); err != nil {
			return nil, err
		}
	}

	return created, nil
}

func (u *FormUseCase) linkEvent(ctx context.Context, eventID types.EventID, formID types.FormID) error {
	ev, err := u.repo.Event().Get(ctx, eventID)
	if err != nil {
		return err
	}
	ev.FormID = formID
	_, err = u.repo.Event().Update(ctx, ev)
	return err
}

func (u *FormUseCase) Get(ctx context.Context, id types.FormID) (*model.FormDefinition, error) {
	return u.repo.Form().Get(ctx, id)
}

func (u *FormUseCase) List(ctx context.Context) ([]*model.FormDefinition, error) {
	return u.repo.Form().List(ctx)
}

// Update replaces a form definition. Responses submitted against the old
// definition keep their own snapshot.
func (u *FormUseCase) Update(ctx context.Context, form *model.FormDefinition) (*model.FormDefinition, error) {
	if err := form.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidInput, err.Error())
	}
	return u.repo.Form().Update(ctx, form)
}

func (u *FormUseCase) Delete(ctx context.Context, id types.FormID) error {
	return u.repo.Form().Delete(ctx, id)
}
