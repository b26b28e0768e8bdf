package interfaces

import (
	"context"

	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/types"
)

// NewsRepository defines the interface for News data access
type NewsRepository interface {
	Create(ctx context.Context, n *model.News) (*model.News, error)
	Get(ctx context.Context, id types.NewsID) (*model.News, error)
	List(ctx context.Context) ([]*model.News, error)
	Update(ctx context.Context, n *model.News) (*model.News, error)
	Delete(ctx context.Context, id types.NewsID) error
}

// PlaceRepository defines the interface for food map Place data access
type PlaceRepository interface {
	Create(ctx context.Context, p *model.Place) (*model.Place, error)
	Get(ctx context.Context, id types.PlaceID) (*model.Place, error)
	List(ctx context.Context) ([]*model.Place, error)
	Update(ctx context.Context, p *model.Place) (*model.Place, error)
	Delete(ctx context.Context, id types.PlaceID) error
}

// RecordRepository defines the interface for conference Record data access
type RecordRepository interface {
	Create(ctx context.Context, rec *model.Record) (*model.Record, error)
	Get(ctx context.Context, id types.RecordID) (*model.Record, error)
	List(ctx context.Context) ([]*model.Record, error)
	Update(ctx context.Context, rec *model.Record) (*model.Record, error)
	Delete(ctx context.Context, id types.RecordID) error
}
