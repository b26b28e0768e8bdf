package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/aster-works/agora/pkg/domain/interfaces"
	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/model/auth"
	"github.com/aster-works/agora/pkg/domain/types"
	"github.com/aster-works/agora/pkg/service/mail"
	"github.com/aster-works/agora/pkg/utils/async"
	"github.com/aster-works/agora/pkg/utils/logging"
)

const (
	memberGetAttempts = 3
	memberGetBackoff  = time.Second
)

type MemberUseCase struct {
	repo   interfaces.Repository
	mailer mail.Mailer
	policy *model.Policy
	sleep  func(time.Duration)
}

// RegisterInput is the profile a user supplies when joining.
type RegisterInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	ClassYear  int    `json:"classYear"`
}

func (u *MemberUseCase) validateRegister(in *RegisterInput) error {
	if in.Name == "" {
		return goerr.Wrap(ErrInvalidInput, "name is required")
	}
	if !strings.Contains(in.Email, "@") {
		return goerr.Wrap(ErrInvalidInput, "email address is malformed", goerr.V("email", in.Email))
	}
	if !u.policy.AllowsDepartment(in.Department) {
		return goerr.Wrap(ErrInvalidInput, "department is not recognized", goerr.V("department", in.Department))
	}
	if !u.policy.AllowsClassYear(in.ClassYear) {
		return goerr.Wrap(ErrInvalidInput, "class year is not recognized", goerr.V("class_year", in.ClassYear))
	}
	return nil
}

// Register creates or refreshes the member record for the authenticated
// principal and dispatches a verification email. Changing the email
// address resets the verified flag.
func (u *MemberUseCase) Register(ctx context.Context, p *auth.Principal, in *RegisterInput) (*model.Member, error) {
	if p.IsAnonymous() {
		return nil, goerr.New("registration requires authentication")
	}
	if err := u.validateRegister(in); err != nil {
		return nil, err
	}

	m := &model.Member{
		ID:          p.UserID,
		Name:        in.Name,
		Email:       in.Email,
		Department:  in.Department,
		ClassYear:   in.ClassYear,
		VerifyToken: uuid.NewString(),
	}

	if existing, err := u.getWithRetry(ctx, p.UserID); err == nil {
		m.Admin = existing.Admin
		m.JoinedAt = existing.JoinedAt
		if existing.Verified && existing.Email == in.Email {
			m.Verified = true
			m.VerifyToken = ""
		}
	} else if !errors.Is(err, interfaces.ErrNotFound) {
		return nil, err
	}

	stored, err := u.repo.Member().Put(ctx, m)
	if err != nil {
		return nil, err
	}

	if !stored.Verified {
		u.sendVerification(ctx, stored)
	}

	return stored, nil
}

func (u *MemberUseCase) sendVerification(ctx context.Context, m *model.Member) {
	msg := &mail.Message{
		To:      m.Email,
		ToName:  m.Name,
		Subject: "Verify your email address",
		Text: fmt.Sprintf("Hi %s,\n\nYour verification code is:\n\n    %s\n\nEnter it in the app to finish registration.\n",
			m.Name, m.VerifyToken),
	}

	async.Dispatch(ctx, func(ctx context.Context) error {
		if err := u.mailer.Send(ctx, msg); err != nil {
			return goerr.Wrap(err, "failed to send verification email", goerr.V(UserIDKey, m.ID))
		}
		logging.From(ctx).Info("verification email sent", "user_id", m.ID)
		return nil
	})
}

// Verify marks the member as verified when the presented token matches
// the outstanding one. Verifying an already-verified member is a no-op.
func (u *MemberUseCase) Verify(ctx context.Context, id types.UserID, token string) (*model.Member, error) {
	m, err := u.getWithRetry(ctx, id)
	if err != nil {
		return nil, err
	}

	if m.Verified {
		return m, nil
	}
	if token == "" || m.VerifyToken != token {
		return nil, goerr.Wrap(ErrVerifyTokenMismatch, "cannot verify member", goerr.V(UserIDKey, id))
	}

	m.Verified = true
	m.VerifyToken = ""
	return u.repo.Member().Put(ctx, m)
}

// Get reads a member profile. This is an identity read path: transient
// backend unavailability is retried with linear backoff before giving up.
func (u *MemberUseCase) Get(ctx context.Context, id types.UserID) (*model.Member, error) {
	return u.getWithRetry(ctx, id)
}

func (u *MemberUseCase) getWithRetry(ctx context.Context, id types.UserID) (*model.Member, error) {
	var lastErr error
	for attempt := 1; attempt <= memberGetAttempts; attempt++ {
		m, err := u.repo.Member().Get(ctx, id)
		if err == nil {
			return m, nil
		}
		if !errors.Is(err, interfaces.ErrUnavailable) {
			return nil, err
		}

		lastErr = err
		if attempt < memberGetAttempts {
			logging.From(ctx).Warn("member read failed, retrying",
				"user_id", id, "attempt", attempt)
			u.sleep(time.Duration(attempt) * memberGetBackoff)
		}
	}
	return nil, lastErr
}

func (u *MemberUseCase) List(ctx context.Context) ([]*model.Member, error) {
	return u.repo.Member().List(ctx)
}

func (u *MemberUseCase) Delete(ctx context.Context, id types.UserID) error {
	return u.repo.Member().Delete(ctx, id)
}
