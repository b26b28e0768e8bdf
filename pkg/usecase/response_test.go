package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/aster-works/agora/pkg/domain/interfaces"
	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/model/auth"
	"github.com/aster-works/agora/pkg/domain/types"
	"github.com/aster-works/agora/pkg/repository/memory"
	"github.com/aster-works/agora/pkg/usecase"
)

func principal(id string) *auth.Principal {
	return &auth.Principal{UserID: types.UserID(id)}
}

func setupEventWithForm(t *testing.T, uc *usecase.UseCases, ev *model.Event) (*model.Event, *model.FormDefinition) {
	t.Helper()
	ctx := context.Background()

	createdEvent, err := uc.Event.Create(ctx, ev)
	gt.NoError(t, err).Required()

	form := &model.FormDefinition{
		Title:   ev.Title + " signup",
		EventID: createdEvent.ID,
		Fields: []model.FormField{
			{ID: "name", Label: "Name", Type: types.FieldTypeShortText, Required: true},
			{ID: "size", Label: "Size", Type: types.FieldTypeRadio, Required: true, Options: []string{"S", "M", "L"}},
		},
	}
	createdForm, err := uc.Form.Create(ctx, form)
	gt.NoError(t, err).Required()

	// Creating a linked form stamps FormID onto the event.
	createdEvent, err = uc.Event.Get(ctx, createdEvent.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, createdEvent.FormID).Equal(createdForm.ID)

	return createdEvent, createdForm
}

func validAnswers() model.Answers {
	return model.Answers{
		"name": model.NewTextAnswer("Alex"),
		"size": model.NewTextAnswer("M"),
	}
}

func TestSubmitLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo)

	ev, form := setupEventWithForm(t, uc, &model.Event{Title: "Spring camp", Visible: true})

	// First submission succeeds and advances the counter.
	resp1, err := uc.Response.Submit(ctx, principal("u1"), ev.ID, form.ID, validAnswers())
	gt.NoError(t, err).Required()
	gt.Value(t, resp1.UserID).Equal("u1")
	gt.Value(t, resp1.Snapshot.Title).Equal(form.Title)

	after, err := uc.Event.Get(ctx, ev.ID)
	gt.NoError(t, err).Required()
	gt.Number(t, after.Enrolled).Equal(1)

	// A second submission by the same user is rejected and carries the
	// original submission time.
	_, err = uc.Response.Submit(ctx, principal("u1"), ev.ID, form.ID, validAnswers())
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, interfaces.ErrAlreadySubmitted)).True()

	var ge *goerr.Error
	gt.Bool(t, errors.As(err, &ge)).True()
	submittedAt, ok := ge.Values()[interfaces.SubmittedAtKey].(time.Time)
	gt.Bool(t, ok).True()
	gt.Value(t, submittedAt).Equal(resp1.CreatedAt)

	// The failed submit left the counter untouched.
	after, err = uc.Event.Get(ctx, ev.ID)
	gt.NoError(t, err).Required()
	gt.Number(t, after.Enrolled).Equal(1)

	// A different user may still submit.
	_, err = uc.Response.Submit(ctx, principal("u2"), ev.ID, form.ID, validAnswers())
	gt.NoError(t, err).Required()

	after, err = uc.Event.Get(ctx, ev.ID)
	gt.NoError(t, err).Required()
	gt.Number(t, after.Enrolled).Equal(2)
}

func TestSubmitValidatesAnswers(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())
	ev, form := setupEventWithForm(t, uc, &model.Event{Title: "Hike", Visible: true})

	_, err := uc.Response.Submit(ctx, principal("u1"), ev.ID, form.ID, model.Answers{
		"name": model.NewTextAnswer("Alex"),
		"size": model.NewTextAnswer("XXL"),
	})
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, model.ErrInvalidOption)).True()

	// Rejected answers must not advance the counter.
	after, err := uc.Event.Get(ctx, ev.ID)
	gt.NoError(t, err).Required()
	gt.Number(t, after.Enrolled).Equal(0)
}

func TestSubmitKeepsRepeatedChoices(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo)

	ev, err := uc.Event.Create(ctx, &model.Event{Title: "BBQ", Visible: true})
	gt.NoError(t, err).Required()

	form, err := uc.Form.Create(ctx, &model.FormDefinition{
		Title:   "BBQ signup",
		EventID: ev.ID,
		Fields: []model.FormField{
			{ID: "meals", Label: "Meals", Type: types.FieldTypeCheckbox, Options: []string{"x", "y", "z"}},
		},
	})
	gt.NoError(t, err).Required()

	// Repeated selections pass through to storage as submitted.
	resp, err := uc.Response.Submit(ctx, principal("u1"), ev.ID, form.ID, model.Answers{
		"meals": model.NewListAnswer([]string{"x", "x", "y"}),
	})
	gt.NoError(t, err).Required()

	stored, err := repo.Response().Get(ctx, resp.ID)
	gt.NoError(t, err).Required()
	gt.Array(t, stored.Answers["meals"].List).Equal([]string{"x", "x", "y"})
}

func TestSubmitFormEventMismatch(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	_, form := setupEventWithForm(t, uc, &model.Event{Title: "Dinner", Visible: true})
	other, err := uc.Event.Create(ctx, &model.Event{Title: "Other", Visible: true})
	gt.NoError(t, err).Required()

	_, err = uc.Response.Submit(ctx, principal("u1"), other.ID, form.ID, validAnswers())
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, usecase.ErrInvalidInput)).True()
}

func TestSubmitEligibility(t *testing.T) {
	ctx := context.Background()

	t.Run("hidden event rejects non-admins", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ev, form := setupEventWithForm(t, uc, &model.Event{Title: "Staff only", Visible: false})

		_, err := uc.Response.Submit(ctx, principal("u1"), ev.ID, form.ID, validAnswers())
		gt.Bool(t, errors.Is(err, usecase.ErrEventHidden)).True()

		admin := &auth.Principal{UserID: "boss", Admin: true}
		_, err = uc.Response.Submit(ctx, admin, ev.ID, form.ID, validAnswers())
		gt.NoError(t, err)
	})

	t.Run("closed enrollment window", func(t *testing.T) {
		now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
		uc := usecase.New(memory.New(), usecase.WithClock(func() time.Time { return now }))

		ev, form := setupEventWithForm(t, uc, &model.Event{
			Title:       "Past event",
			Visible:     true,
			EnrollStart: now.Add(-48 * time.Hour),
			EnrollEnd:   now.Add(-24 * time.Hour),
		})

		_, err := uc.Response.Submit(ctx, principal("u1"), ev.ID, form.ID, validAnswers())
		gt.Bool(t, errors.Is(err, usecase.ErrEnrollmentClosed)).True()
	})

	t.Run("full event", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ev, form := setupEventWithForm(t, uc, &model.Event{Title: "Tiny room", Visible: true, Capacity: 1})

		_, err := uc.Response.Submit(ctx, principal("u1"), ev.ID, form.ID, validAnswers())
		gt.NoError(t, err).Required()

		_, err = uc.Response.Submit(ctx, principal("u2"), ev.ID, form.ID, validAnswers())
		gt.Bool(t, errors.Is(err, usecase.ErrEventFull)).True()
	})

	t.Run("members only rejects anonymous and unregistered", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		ev, form := setupEventWithForm(t, uc, &model.Event{
			Title:    "General assembly",
			Visible:  true,
			Restrict: model.EventRestriction{MembersOnly: true},
		})

		_, err := uc.Response.Submit(ctx, auth.NewAnonymous(), ev.ID, form.ID, validAnswers())
		gt.Bool(t, errors.Is(err, usecase.ErrMembersOnly)).True()

		_, err = uc.Response.Submit(ctx, principal("stranger"), ev.ID, form.ID, validAnswers())
		gt.Bool(t, errors.Is(err, usecase.ErrMembersOnly)).True()

		_, err = repo.Member().Put(ctx, &model.Member{ID: "m1", Name: "Mel", Email: "mel@example.com", Verified: true})
		gt.NoError(t, err).Required()

		_, err = uc.Response.Submit(ctx, principal("m1"), ev.ID, form.ID, validAnswers())
		gt.NoError(t, err)
	})

	t.Run("department restriction", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		ev, form := setupEventWithForm(t, uc, &model.Event{
			Title:    "Science mixer",
			Visible:  true,
			Restrict: model.EventRestriction{Departments: []string{"science"}},
		})

		_, err := repo.Member().Put(ctx, &model.Member{ID: "a1", Name: "Art", Email: "art@example.com", Department: "arts", Verified: true})
		gt.NoError(t, err).Required()
		_, err = uc.Response.Submit(ctx, principal("a1"), ev.ID, form.ID, validAnswers())
		gt.Bool(t, errors.Is(err, usecase.ErrNotEligible)).True()

		_, err = repo.Member().Put(ctx, &model.Member{ID: "s1", Name: "Sci", Email: "sci@example.com", Department: "science", Verified: true})
		gt.NoError(t, err).Required()
		_, err = uc.Response.Submit(ctx, principal("s1"), ev.ID, form.ID, validAnswers())
		gt.NoError(t, err)
	})

	t.Run("anonymous allowed on unrestricted event", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ev, form := setupEventWithForm(t, uc, &model.Event{Title: "Open day", Visible: true})

		_, err := uc.Response.Submit(ctx, auth.NewAnonymous(), ev.ID, form.ID, validAnswers())
		gt.NoError(t, err).Required()
		_, err = uc.Response.Submit(ctx, auth.NewAnonymous(), ev.ID, form.ID, validAnswers())
		gt.NoError(t, err).Required()

		after, err := uc.Event.Get(ctx, ev.ID)
		gt.NoError(t, err).Required()
		gt.Number(t, after.Enrolled).Equal(2)
	})
}

func TestSubmitSnapshotSurvivesFormEdit(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())
	ev, form := setupEventWithForm(t, uc, &model.Event{Title: "Workshop", Visible: true})

	resp, err := uc.Response.Submit(ctx, principal("u1"), ev.ID, form.ID, validAnswers())
	gt.NoError(t, err).Required()

	form.Title = "Workshop v2"
	form.Fields = form.Fields[:1]
	_, err = uc.Form.Update(ctx, form)
	gt.NoError(t, err).Required()

	stored, err := uc.Response.Get(ctx, resp.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, stored.Snapshot.Title).Equal("Workshop signup")
	gt.Array(t, stored.Snapshot.Fields).Length(2)
}

func TestCheckSubmitted(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())
	ev, form := setupEventWithForm(t, uc, &model.Event{Title: "Picnic", Visible: true})

	// Nothing submitted yet.
	resp, err := uc.Response.CheckSubmitted(ctx, ev.ID, form.ID, "u1")
	gt.NoError(t, err).Required()
	gt.Value(t, resp).Nil()

	submitted, err := uc.Response.Submit(ctx, principal("u1"), ev.ID, form.ID, validAnswers())
	gt.NoError(t, err).Required()

	resp, err = uc.Response.CheckSubmitted(ctx, ev.ID, form.ID, "u1")
	gt.NoError(t, err).Required()
	gt.Value(t, resp).NotNil().Required()
	gt.Value(t, resp.ID).Equal(submitted.ID)
}

func TestListByUserDecoratesTitles(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	ev1, form1 := setupEventWithForm(t, uc, &model.Event{Title: "Camp", Visible: true})
	ev2, form2 := setupEventWithForm(t, uc, &model.Event{Title: "Dinner", Visible: true})

	_, err := uc.Response.Submit(ctx, principal("u1"), ev1.ID, form1.ID, validAnswers())
	gt.NoError(t, err).Required()
	_, err = uc.Response.Submit(ctx, principal("u1"), ev2.ID, form2.ID, validAnswers())
	gt.NoError(t, err).Required()

	enrollments, err := uc.Response.ListByUser(ctx, "u1", 0, 0)
	gt.NoError(t, err).Required()
	gt.Array(t, enrollments).Length(2)

	titles := map[string]bool{}
	for _, e := range enrollments {
		titles[e.EventTitle] = true
		gt.Value(t, e.FormTitle).Equal(e.EventTitle + " signup")
	}
	gt.Bool(t, titles["Camp"] && titles["Dinner"]).True()
}

func TestListByEventJoinsMembers(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo)

	ev, form := setupEventWithForm(t, uc, &model.Event{Title: "Assembly", Visible: true})
	_, err := repo.Member().Put(ctx, &model.Member{ID: "m1", Name: "Mel", Email: "mel@example.com", Verified: true})
	gt.NoError(t, err).Required()

	_, err = uc.Response.Submit(ctx, principal("m1"), ev.ID, form.ID, validAnswers())
	gt.NoError(t, err).Required()
	_, err = uc.Response.Submit(ctx, auth.NewAnonymous(), ev.ID, form.ID, validAnswers())
	gt.NoError(t, err).Required()

	details, err := uc.Response.ListByEvent(ctx, ev.ID)
	gt.NoError(t, err).Required()
	gt.Array(t, details).Length(2)

	var named, anon int
	for _, d := range details {
		if d.Response.UserID.IsAnonymous() {
			anon++
			gt.Value(t, d.MemberName).Equal("")
		} else {
			named++
			gt.Value(t, d.MemberName).Equal("Mel")
			gt.Value(t, d.MemberEmail).Equal("mel@example.com")
		}
	}
	gt.Number(t, named).Equal(1)
	gt.Number(t, anon).Equal(1)
}

func TestSetReviewAndPayment(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())
	ev, form := setupEventWithForm(t, uc, &model.Event{Title: "Gala", Visible: true, Price: 3000})

	resp, err := uc.Response.Submit(ctx, principal("u1"), ev.ID, form.ID, validAnswers())
	gt.NoError(t, err).Required()
	gt.Value(t, resp.Payment.Status).Equal(types.PaymentStatusUnpaid)

	reviewed, err := uc.Response.SetReview(ctx, resp.ID, "admin1", true, "looks fine")
	gt.NoError(t, err).Required()
	gt.Bool(t, reviewed.Review.Reviewed).True()
	gt.Value(t, reviewed.Review.ReviewerID).Equal("admin1")
	gt.Value(t, reviewed.Review.ReviewedAt).NotNil()

	paid, err := uc.Response.SetPayment(ctx, resp.ID, types.PaymentStatusPaid, types.PaymentMethodTransfer, "wired 3/4")
	gt.NoError(t, err).Required()
	gt.Value(t, paid.Payment.Status).Equal(types.PaymentStatusPaid)
	// Review metadata set earlier must survive a payment update.
	gt.Bool(t, paid.Review.Reviewed).True()

	_, err = uc.Response.SetPayment(ctx, resp.ID, types.PaymentStatus("magic"), types.PaymentMethodNone, "")
	gt.Bool(t, errors.Is(err, usecase.ErrInvalidInput)).True()

	// Answers and snapshot are immutable through metadata updates.
	stored, err := uc.Response.Get(ctx, resp.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, stored.Answers["name"].Text).Equal("Alex")
	gt.Array(t, stored.Snapshot.Fields).Length(2)
}
