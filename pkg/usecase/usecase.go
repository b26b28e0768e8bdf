package usecase

import (
	"time"

	"github.com/aster-works/agora/pkg/domain/interfaces"
	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/service/mail"
)

type UseCases struct {
	repo   interfaces.Repository
	mailer mail.Mailer
	policy *model.Policy
	now    func() time.Time

	Form     *FormUseCase
	Response *ResponseUseCase
	Event    *EventUseCase
	Member   *MemberUseCase
	News     *NewsUseCase
	Place    *PlaceUseCase
	Record   *RecordUseCase
}

type Option func(*UseCases)

func WithMailer(m mail.Mailer) Option {
	return func(uc *UseCases) {
		uc.mailer = m
	}
}

func WithPolicy(p *model.Policy) Option {
	return func(uc *UseCases) {
		uc.policy = p
	}
}

// WithClock overrides the time source. Tests use this to pin the
// enrollment window checks.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:   repo,
		mailer: mail.NewConsole(),
		policy: &model.Policy{},
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Form = &FormUseCase{repo: repo}
	uc.Event = &EventUseCase{repo: repo}
	uc.Member = &MemberUseCase{repo: repo, mailer: uc.mailer, policy: uc.policy, sleep: time.Sleep}
	uc.Response = &ResponseUseCase{repo: repo, members: uc.Member, now: uc.now}
	uc.News = &NewsUseCase{repo: repo}
	uc.Place = &PlaceUseCase{repo: repo}
	uc.Record = &RecordUseCase{repo: repo}

	return uc
}
