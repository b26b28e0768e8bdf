package authn_test

import (
	"context"
	"testing"

	"github.com/aster-works/agora/pkg/service/authn"
	"github.com/m-mizutani/gt"
)

func TestNoAuth(t *testing.T) {
	s := authn.NewNoAuth(false)
	ctx := context.Background()

	p, err := s.Verify(ctx, "u1")
	gt.NoError(t, err).Required()
	gt.Value(t, string(p.UserID)).Equal("u1")
	gt.Bool(t, p.Admin).False()

	anon, err := s.Verify(ctx, "")
	gt.NoError(t, err).Required()
	gt.Bool(t, anon.IsAnonymous()).True()
}

func TestNoAuthAdmin(t *testing.T) {
	s := authn.NewNoAuth(true)
	p, err := s.Verify(context.Background(), "admin-user")
	gt.NoError(t, err).Required()
	gt.Bool(t, p.Admin).True()
}

func TestNewJWKSRequiresURL(t *testing.T) {
	_, err := authn.NewJWKS(context.Background(), "", "", "")
	gt.Error(t, err)
}
