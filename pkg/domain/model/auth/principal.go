package auth

import (
	"context"

	"github.com/aster-works/agora/pkg/domain/types"
)

// Principal is the verified caller identity attached to a request.
type Principal struct {
	UserID types.UserID
	Email  string
	Name   string
	Admin  bool
}

// NewAnonymous returns an unauthenticated principal.
func NewAnonymous() *Principal {
	return &Principal{}
}

// IsAnonymous reports whether the principal carries no identity.
func (p *Principal) IsAnonymous() bool {
	return p == nil || p.UserID == ""
}

type ctxKey struct{}

// ContextWith binds the principal to the context.
func ContextWith(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext extracts the principal from the context, or nil.
func FromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(ctxKey{}).(*Principal)
	return p
}
