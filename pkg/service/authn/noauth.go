package authn

import (
	"context"

	"github.com/aster-works/agora/pkg/domain/model/auth"
	"github.com/aster-works/agora/pkg/domain/types"
)

// NoAuth trusts the presented token as a literal user ID. Development
// and tests only.
type NoAuth struct {
	admin bool
}

var _ Service = &NoAuth{}

func NewNoAuth(admin bool) *NoAuth {
	return &NoAuth{admin: admin}
}

func (s *NoAuth) Verify(ctx context.Context, token string) (*auth.Principal, error) {
	if token == "" {
		return auth.NewAnonymous(), nil
	}
	return &auth.Principal{
		UserID: types.UserID(token),
		Admin:  s.admin,
	}, nil
}
