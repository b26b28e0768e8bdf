package authn

import (
	"context"

	"github.com/aster-works/agora/pkg/domain/model/auth"
	"github.com/m-mizutani/goerr/v2"
)

// ErrInvalidToken is returned when a presented credential fails
// verification. Callers map this to 401.
var ErrInvalidToken = goerr.New("invalid token")

// ErrUpstreamUnavailable is returned when the identity provider cannot
// be reached. Callers on identity read paths retry; everything else
// maps it to 503.
var ErrUpstreamUnavailable = goerr.New("identity provider unavailable")

// Service verifies a bearer credential and resolves it to a principal.
type Service interface {
	Verify(ctx context.Context, token string) (*auth.Principal, error)
}
