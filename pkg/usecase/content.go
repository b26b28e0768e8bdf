package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/aster-works/agora/pkg/domain/interfaces"
	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/types"
)

type NewsUseCase struct {
	repo interfaces.Repository
}

func (u *NewsUseCase) Create(ctx context.Context, n *model.News) (*model.News, error) {
	if n.Title == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "news title is required")
	}
	return u.repo.News().Create(ctx, n)
}

func (u *NewsUseCase) Get(ctx context.Context, id types.NewsID) (*model.News, error) {
	return u.repo.News().Get(ctx, id)
}

func (u *NewsUseCase) List(ctx context.Context) ([]*model.News, error) {
	return u.repo.News().List(ctx)
}

// ListPublished filters out drafts for the public feed.
func (u *NewsUseCase) ListPublished(ctx context.Context) ([]*model.News, error) {
	all, err := u.repo.News().List(ctx)
	if err != nil {
		return nil, err
	}
	published := make([]*model.News, 0, len(all))
	for _, n := range all {
		if n.Published {
			published = append(published, n)
		}
	}
	return published, nil
}

func (u *NewsUseCase) Update(ctx context.Context, n *model.News) (*model.News, error) {
	if n.Title == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "news title is required")
	}
	return u.repo.News().Update(ctx, n)
}

func (u *NewsUseCase) Delete(ctx context.Context, id types.NewsID) error {
	return u.repo.News().Delete(ctx, id)
}

type PlaceUseCase struct {
	repo interfaces.Repository
}

func (u *PlaceUseCase) Create(ctx context.Context, p *model.Place) (*model.Place, error) {
	if p.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "place name is required")
	}
	return u.repo.Place().Create(ctx, p)
}

func (u *PlaceUseCase) Get(ctx context.Context, id types.PlaceID) (*model.Place, error) {
	return u.repo.Place().Get(ctx, id)
}

func (u *PlaceUseCase) List(ctx context.Context) ([]*model.Place, error) {
	return u.repo.Place().List(ctx)
}

func (u *PlaceUseCase) Update(ctx context.Context, p *model.Place) (*model.Place, error) {
	if p.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "place name is required")
	}
	return u.repo.Place().Update(ctx, p)
}

func (u *PlaceUseCase) Delete(ctx context.Context, id types.PlaceID) error {
	return u.repo.Place().Delete(ctx, id)
}

type RecordUseCase struct {
	repo interfaces.Repository
}

func (u *RecordUseCase) Create(ctx context.Context, rec *model.Record) (*model.Record, error) {
	if rec.Title == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "record title is required")
	}
	return u.repo.Record().Create(ctx, rec)
}

func (u *RecordUseCase) Get(ctx context.Context, id types.RecordID) (*model.Record, error) {
	return u.repo.Record().Get(ctx, id)
}

func (u *RecordUseCase) List(ctx context.Context) ([]*model.Record, error) {
	return u.repo.Record().List(ctx)
}

func (u *RecordUseCase) Update(ctx context.Context, rec *model.Record) (*model.Record, error) {
	if rec.Title == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "record title is required")
	}
	return u.repo.Record().Update(ctx, rec)
}

func (u *RecordUseCase) Delete(ctx context.Context, id types.RecordID) error {
	return u.repo.Record().Delete(ctx, id)
}
