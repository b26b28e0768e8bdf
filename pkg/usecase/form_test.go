package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/aster-works/agora/pkg/domain/interfaces"
	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/types"
	"github.com/aster-works/agora/pkg/repository/memory"
	"github.com/aster-works/agora/pkg/usecase"
)

func TestFormCreateRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	cases := []struct {
		name string
		form model.FormDefinition
	}{
		{"missing title", model.FormDefinition{
			Fields: []model.FormField{{ID: "f1", Label: "A", Type: types.FieldTypeShortText}},
		}},
		{"no fields", model.FormDefinition{Title: "Empty"}},
		{"duplicate field IDs", model.FormDefinition{
			Title: "Dup",
			Fields: []model.FormField{
				{ID: "f1", Label: "A", Type: types.FieldTypeShortText},
				{ID: "f1", Label: "B", Type: types.FieldTypeShortText},
			},
		}},
		{"choice without options", model.FormDefinition{
			Title:  "No options",
			Fields: []model.FormField{{ID: "f1", Label: "A", Type: types.FieldTypeRadio}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Form.Create(ctx, &tc.form)
			gt.Bool(t, errors.Is(err, usecase.ErrInvalidInput)).True()
		})
	}
}

func TestFormCreateRequiresExistingEvent(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	form := &model.FormDefinition{
		Title:   "Orphan",
		EventID: types.NewEventID(),
		Fields:  []model.FormField{{ID: "f1", Label: "A", Type: types.FieldTypeShortText}},
	}
	_, err := uc.Form.Create(ctx, form)
	gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
}

func TestFormDelete(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	form := &model.FormDefinition{
		Title:  "Short-lived",
		Fields: []model.FormField{{ID: "f1", Label: "A", Type: types.FieldTypeShortText}},
	}
	created, err := uc.Form.Create(ctx, form)
	gt.NoError(t, err).Required()

	gt.NoError(t, uc.Form.Delete(ctx, created.ID))

	_, err = uc.Form.Get(ctx, created.ID)
	gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
}

func TestEventValidation(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	_, err := uc.Event.Create(ctx, &model.Event{})
	gt.Bool(t, errors.Is(err, usecase.ErrInvalidInput)).True()

	_, err = uc.Event.Create(ctx, &model.Event{Title: "Bad capacity", Capacity: -1})
	gt.Bool(t, errors.Is(err, usecase.ErrInvalidInput)).True()

	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	_, err = uc.Event.Create(ctx, &model.Event{
		Title:       "Inverted window",
		EnrollStart: start,
		EnrollEnd:   start.Add(-time.Hour),
	})
	gt.Bool(t, errors.Is(err, usecase.ErrInvalidInput)).True()
}

func TestEventListVisible(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	_, err := uc.Event.Create(ctx, &model.Event{Title: "Public", Visible: true})
	gt.NoError(t, err).Required()
	_, err = uc.Event.Create(ctx, &model.Event{Title: "Draft"})
	gt.NoError(t, err).Required()

	visible, err := uc.Event.ListVisible(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, visible).Length(1)
	gt.Value(t, visible[0].Title).Equal("Public")
}

func TestNewsListPublished(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	_, err := uc.News.Create(ctx, &model.News{Title: "Launch", Published: true})
	gt.NoError(t, err).Required()
	_, err = uc.News.Create(ctx, &model.News{Title: "Draft"})
	gt.NoError(t, err).Required()

	published, err := uc.News.ListPublished(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, published).Length(1)
	gt.Value(t, published[0].Title).Equal("Launch")
}
