package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/aster-works/agora/pkg/domain/interfaces"
	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/model/auth"
	"github.com/aster-works/agora/pkg/domain/types"
)

// joinConcurrency bounds parallel lookups when decorating response lists.
const joinConcurrency = 8

type ResponseUseCase struct {
	repo    interfaces.Repository
	members *MemberUseCase
	now     func() time.Time
}

// Enrollment is a user's response decorated with display titles.
type Enrollment struct {
	Response   *model.Response `json:"response"`
	EventTitle string          `json:"eventTitle"`
	FormTitle  string          `json:"formTitle"`
}

// EnrollmentDetail is the administrator view of one response, joined
// with the submitting member.
type EnrollmentDetail struct {
	Response    *model.Response `json:"response"`
	MemberName  string          `json:"memberName,omitempty"`
	MemberEmail string          `json:"memberEmail,omitempty"`
}

// EnrollmentRow is the cross-event administrator view of one response,
// joined with event, form, and member for display.
type EnrollmentRow struct {
	Response    *model.Response `json:"response"`
	EventTitle  string          `json:"eventTitle"`
	FormTitle   string          `json:"formTitle"`
	MemberName  string          `json:"memberName,omitempty"`
	MemberEmail string          `json:"memberEmail,omitempty"`
}

// CheckSubmitted reports whether the user already responded to the form
// for the event. Returns nil without error when no response exists.
func (u *ResponseUseCase) CheckSubmitted(ctx context.Context, eventID types.EventID, formID types.FormID, userID types.UserID) (*model.Response, error) {
	resp, err := u.repo.Response().GetByTriple(ctx, eventID, formID, userID)
	if errors.Is(err, interfaces.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Submit validates the answers against the current form definition,
// enforces the event's enrollment rules server-side, and stores the
// response with an embedded snapshot of the form. The storage layer
// guarantees at most one response per (event, form, user) triple and
// advances the enrollment counter in the same transaction.
func (u *ResponseUseCase) Submit(ctx context.Context, p *auth.Principal, eventID types.EventID, formID types.FormID, answers model.Answers) (*model.Response, error) {
	form, err := u.repo.Form().Get(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form.EventID != "" && form.EventID != eventID {
		return nil, goerr.Wrap(ErrInvalidInput, "form does not belong to this event",
			goerr.V(EventIDKey, eventID), goerr.V(FormIDKey, formID))
	}

	ev, err := u.repo.Event().Get(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := u.checkEligibility(ctx, p, ev); err != nil {
		return nil, err
	}

	if err := validateAnswers(form, answers); err != nil {
		return nil, err
	}

	resp := &model.Response{
		EventID:  eventID,
		FormID:   formID,
		Answers:  answers.Clone(),
		Snapshot: form.Clone(),
		Payment: model.PaymentState{
			Status: types.PaymentStatusUnpaid,
			Method: types.PaymentMethodNone,
		},
	}
	if !p.IsAnonymous() {
		resp.UserID = p.UserID
	}

	return u.repo.Response().Submit(ctx, resp)
}

func (u *ResponseUseCase) checkEligibility(ctx context.Context, p *auth.Principal, ev *model.Event) error {
	admin := p != nil && p.Admin

	if !ev.Visible && !admin {
		return goerr.Wrap(ErrEventHidden, "event is hidden", goerr.V(EventIDKey, ev.ID))
	}
	if !ev.EnrollmentOpen(u.now()) {
		return goerr.Wrap(ErrEnrollmentClosed, "outside enrollment window",
			goerr.V(EventIDKey, ev.ID),
			goerr.V("enroll_start", ev.EnrollStart),
			goerr.V("enroll_end", ev.EnrollEnd))
	}
	if ev.Full() {
		return goerr.Wrap(ErrEventFull, "no seats left",
			goerr.V(EventIDKey, ev.ID),
			goerr.V("capacity", ev.Capacity))
	}

	r := ev.Restrict
	restricted := r.MembersOnly || len(r.Departments) > 0 || len(r.ClassYears) > 0
	if !restricted {
		return nil
	}

	if p.IsAnonymous() {
		return goerr.Wrap(ErrMembersOnly, "restricted event requires sign-in", goerr.V(EventIDKey, ev.ID))
	}

	m, err := u.members.getWithRetry(ctx, p.UserID)
	if errors.Is(err, interfaces.ErrNotFound) {
		return goerr.Wrap(ErrMembersOnly, "no member record", goerr.V(UserIDKey, p.UserID))
	}
	if err != nil {
		return err
	}

	if !ev.Accepts(m) {
		return goerr.Wrap(ErrNotEligible, "member does not satisfy event restrictions",
			goerr.V(EventIDKey, ev.ID), goerr.V(UserIDKey, p.UserID))
	}

	return nil
}

// ListByUser returns the user's enrollments newest first, decorated with
// the event title and the form title from the embedded snapshot. Events
// deleted after submission leave an empty title.
func (u *ResponseUseCase) ListByUser(ctx context.Context, userID types.UserID, limit, offset int) ([]*Enrollment, error) {
	responses, err := u.repo.Response().ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	titles, err := u.eventTitles(ctx, responses)
	if err != nil {
		return nil, err
	}

	enrollments := make([]*Enrollment, len(responses))
	for i, resp := range responses {
		enrollments[i] = &Enrollment{
			Response:   resp,
			EventTitle: titles[resp.EventID],
			FormTitle:  resp.Snapshot.Title,
		}
	}
	return enrollments, nil
}

func (u *ResponseUseCase) eventTitles(ctx context.Context, responses []*model.Response) (map[types.EventID]string, error) {
	ids := make([]types.EventID, 0, len(responses))
	seen := make(map[types.EventID]struct{}, len(responses))
	for _, resp := range responses {
		if _, ok := seen[resp.EventID]; ok {
			continue
		}
		seen[resp.EventID] = struct{}{}
		ids = append(ids, resp.EventID)
	}

	var mu sync.Mutex
	titles := make(map[types.EventID]string, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(joinConcurrency)
	for _, id := range ids {
		g.Go(func() error {
			ev, err := u.repo.Event().Get(gctx, id)
			if errors.Is(err, interfaces.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			mu.Lock()
			titles[id] = ev.Title
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return titles, nil
}

// ListByEvent returns every response for an event joined with member
// identities, for the administrator roster view.
func (u *ResponseUseCase) ListByEvent(ctx context.Context, eventID types.EventID) ([]*EnrollmentDetail, error) {
	if _, err := u.repo.Event().Get(ctx, eventID); err != nil {
		return nil, err
	}

	responses, err := u.repo.Response().ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	details := make([]*EnrollmentDetail, len(responses))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(joinConcurrency)
	for i, resp := range responses {
		details[i] = &EnrollmentDetail{Response: resp}
		if resp.UserID.IsAnonymous() {
			continue
		}

		d := details[i]
		g.Go(func() error {
			m, err := u.members.getWithRetry(gctx, resp.UserID)
			if errors.Is(err, interfaces.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			d.MemberName = m.Name
			d.MemberEmail = m.Email
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return details, nil
}

// ListAll returns every stored response across events, joined with
// event titles and member identities. Deleted events and missing member
// records leave their columns empty rather than failing the listing.
func (u *ResponseUseCase) ListAll(ctx context.Context) ([]*EnrollmentRow, error) {
	responses, err := u.repo.Response().List(ctx)
	if err != nil {
		return nil, err
	}

	titles, err := u.eventTitles(ctx, responses)
	if err != nil {
		return nil, err
	}

	rows := make([]*EnrollmentRow, len(responses))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(joinConcurrency)
	for i, resp := range responses {
		rows[i] = &EnrollmentRow{
			Response:   resp,
			EventTitle: titles[resp.EventID],
			FormTitle:  resp.Snapshot.Title,
		}
		if resp.UserID.IsAnonymous() {
			continue
		}

		row := rows[i]
		g.Go(func() error {
			m, err := u.members.getWithRetry(gctx, resp.UserID)
			if errors.Is(err, interfaces.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			row.MemberName = m.Name
			row.MemberEmail = m.Email
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}

func (u *ResponseUseCase) Get(ctx context.Context, id types.ResponseID) (*model.Response, error) {
	return u.repo.Response().Get(ctx, id)
}

// SetReview stamps administrative review state on a response. Answers
// and the form snapshot are never modified.
func (u *ResponseUseCase) SetReview(ctx context.Context, id types.ResponseID, reviewerID types.UserID, reviewed bool, notes string) (*model.Response, error) {
	current, err := u.repo.Response().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	review := model.ReviewState{
		Reviewed: reviewed,
		Notes:    notes,
	}
	if reviewed {
		now := u.now().UTC()
		review.ReviewerID = reviewerID
		review.ReviewedAt = &now
	}

	return u.repo.Response().UpdateMeta(ctx, id, review, current.Payment)
}

// SetPayment records payment state on a response.
func (u *ResponseUseCase) SetPayment(ctx context.Context, id types.ResponseID, status types.PaymentStatus, method types.PaymentMethod, notes string) (*model.Response, error) {
	status = status.Normalize()
	method = method.Normalize()
	if !status.IsValid() {
		return nil, goerr.Wrap(ErrInvalidInput, "unknown payment status", goerr.V("status", status))
	}
	if !method.IsValid() {
		return nil, goerr.Wrap(ErrInvalidInput, "unknown payment method", goerr.V("method", method))
	}

	current, err := u.repo.Response().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	payment := model.PaymentState{
		Status: status,
		Method: method,
		Notes:  notes,
	}

	return u.repo.Response().UpdateMeta(ctx, id, current.Review, payment)
}
