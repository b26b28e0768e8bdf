package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/aster-works/agora/pkg/domain/interfaces"
	"github.com/aster-works/agora/pkg/domain/model"
	"github.com/aster-works/agora/pkg/domain/types"
	"github.com/aster-works/agora/pkg/repository/memory"
	"github.com/aster-works/agora/pkg/service/mail"
	"github.com/aster-works/agora/pkg/usecase"
)

// captureMailer records sent messages and signals each delivery, so
// tests can wait on asynchronous dispatch.
type captureMailer struct {
	mu       sync.Mutex
	messages []*mail.Message
	sent     chan struct{}
}

func newCaptureMailer() *captureMailer {
	return &captureMailer{sent: make(chan struct{}, 16)}
}

func (m *captureMailer) Send(ctx context.Context, msg *mail.Message) error {
	m.mu.Lock()
	m.messages = append(m.messages, msg)
	m.mu.Unlock()
	m.sent <- struct{}{}
	return nil
}

func (m *captureMailer) wait(t *testing.T) *mail.Message {
	t.Helper()
	select {
	case <-m.sent:
	case <-time.After(5 * time.Second):
		t.Fatal("no email dispatched")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.messages[len(m.messages)-1]
}

func TestRegisterAndVerify(t *testing.T) {
	ctx := context.Background()
	mailer := newCaptureMailer()
	repo := memory.New()
	uc := usecase.New(repo, usecase.WithMailer(mailer))

	m, err := uc.Member.Register(ctx, principal("u1"), &usecase.RegisterInput{
		Name:       "Alex",
		Email:      "alex@example.com",
		Department: "science",
		ClassYear:  2,
	})
	gt.NoError(t, err).Required()
	gt.Bool(t, m.Verified).False()

	msg := mailer.wait(t)
	gt.Value(t, msg.To).Equal("alex@example.com")

	// The token is stored on the record but excluded from JSON.
	stored, err := repo.Member().Get(ctx, "u1")
	gt.NoError(t, err).Required()
	gt.Value(t, stored.VerifyToken).NotEqual("")

	// Wrong token does not verify.
	_, err = uc.Member.Verify(ctx, "u1", "wrong-token")
	gt.Bool(t, errors.Is(err, usecase.ErrVerifyTokenMismatch)).True()

	verified, err := uc.Member.Verify(ctx, "u1", stored.VerifyToken)
	gt.NoError(t, err).Required()
	gt.Bool(t, verified.Verified).True()
	gt.Value(t, verified.VerifyToken).Equal("")

	// Verifying again is a no-op.
	again, err := uc.Member.Verify(ctx, "u1", "anything")
	gt.NoError(t, err).Required()
	gt.Bool(t, again.Verified).True()
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New(), usecase.WithPolicy(&model.Policy{
		Departments: []string{"science", "arts"},
		ClassYears:  []int{1, 2, 3, 4},
	}))

	cases := []struct {
		name  string
		input usecase.RegisterInput
	}{
		{"missing name", usecase.RegisterInput{Email: "a@example.com", Department: "science", ClassYear: 1}},
		{"malformed email", usecase.RegisterInput{Name: "A", Email: "not-an-email", Department: "science", ClassYear: 1}},
		{"unknown department", usecase.RegisterInput{Name: "A", Email: "a@example.com", Department: "magic", ClassYear: 1}},
		{"unknown class year", usecase.RegisterInput{Name: "A", Email: "a@example.com", Department: "science", ClassYear: 9}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Member.Register(ctx, principal("u1"), &tc.input)
			gt.Bool(t, errors.Is(err, usecase.ErrInvalidInput)).True()
		})
	}

	t.Run("anonymous cannot register", func(t *testing.T) {
		_, err := uc.Member.Register(ctx, nil, &usecase.RegisterInput{
			Name: "A", Email: "a@example.com", Department: "science", ClassYear: 1,
		})
		gt.Error(t, err)
	})
}

func TestReRegisterKeepsVerifiedEmail(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	mailer := newCaptureMailer()
	uc := usecase.New(repo, usecase.WithMailer(mailer))

	in := &usecase.RegisterInput{Name: "Alex", Email: "alex@example.com", Department: "science", ClassYear: 2}
	_, err := uc.Member.Register(ctx, principal("u1"), in)
	gt.NoError(t, err).Required()
	mailer.wait(t)

	stored, err := repo.Member().Get(ctx, "u1")
	gt.NoError(t, err).Required()
	_, err = uc.Member.Verify(ctx, "u1", stored.VerifyToken)
	gt.NoError(t, err).Required()

	// Same email: stays verified, no new mail needed.
	in.Name = "Alexander"
	m, err := uc.Member.Register(ctx, principal("u1"), in)
	gt.NoError(t, err).Required()
	gt.Bool(t, m.Verified).True()
	gt.Value(t, m.Name).Equal("Alexander")

	// Changed email: verification starts over.
	in.Email = "new@example.com"
	m, err = uc.Member.Register(ctx, principal("u1"), in)
	gt.NoError(t, err).Required()
	gt.Bool(t, m.Verified).False()
	msg := mailer.wait(t)
	gt.Value(t, msg.To).Equal("new@example.com")
}

// flakyRepo wraps the in-memory repository and fails member reads a set
// number of times with a retriable error.
type flakyRepo struct {
	*memory.Memory
	members *flakyMemberRepo
}

func (r *flakyRepo) Member() interfaces.MemberRepository {
	return r.members
}

type flakyMemberRepo struct {
	interfaces.MemberRepository
	mu       sync.Mutex
	failures int
	calls    int
}

func (r *flakyMemberRepo) Get(ctx context.Context, id types.UserID) (*model.Member, error) {
	r.mu.Lock()
	r.calls++
	fail := r.calls <= r.failures
	r.mu.Unlock()

	if fail {
		return nil, goerr.Wrap(interfaces.ErrUnavailable, "injected outage")
	}
	return r.MemberRepository.Get(ctx, id)
}

func TestMemberGetRetriesOnUnavailable(t *testing.T) {
	ctx := context.Background()
	base := memory.New()

	_, err := base.Member().Put(ctx, &model.Member{ID: "u1", Name: "Alex", Email: "alex@example.com"})
	gt.NoError(t, err).Required()

	t.Run("recovers within budget", func(t *testing.T) {
		flaky := &flakyMemberRepo{MemberRepository: base.Member(), failures: 2}
		uc := usecase.New(&flakyRepo{Memory: base, members: flaky})

		var slept []time.Duration
		uc.Member.SetSleepForTest(func(d time.Duration) { slept = append(slept, d) })

		m, err := uc.Member.Get(ctx, "u1")
		gt.NoError(t, err).Required()
		gt.Value(t, m.Name).Equal("Alex")

		// Linear backoff: 1s after the first failure, 2s after the second.
		gt.Array(t, slept).Equal([]time.Duration{time.Second, 2 * time.Second})
	})

	t.Run("gives up after three attempts", func(t *testing.T) {
		flaky := &flakyMemberRepo{MemberRepository: base.Member(), failures: 10}
		uc := usecase.New(&flakyRepo{Memory: base, members: flaky})
		uc.Member.SetSleepForTest(func(time.Duration) {})

		_, err := uc.Member.Get(ctx, "u1")
		gt.Bool(t, errors.Is(err, interfaces.ErrUnavailable)).True()
		gt.Number(t, flaky.calls).Equal(3)
	})

	t.Run("not found is not retried", func(t *testing.T) {
		flaky := &flakyMemberRepo{MemberRepository: base.Member(), failures: 0}
		uc := usecase.New(&flakyRepo{Memory: base, members: flaky})
		uc.Member.SetSleepForTest(func(time.Duration) {})

		_, err := uc.Member.Get(ctx, "nobody")
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
		gt.Number(t, flaky.calls).Equal(1)
	})
}
