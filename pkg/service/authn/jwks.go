package authn

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/aster-works/agora/pkg/domain/model/auth"
	"github.com/aster-works/agora/pkg/domain/types"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"
)

// JWKS verifies RS256 bearer tokens against a remote JWK set. The key
// set is cached and refreshed in the background.
type JWKS struct {
	cache    *jwk.Cache
	jwksURL  string
	issuer   string
	audience string
}

var _ Service = &JWKS{}

func NewJWKS(ctx context.Context, jwksURL, issuer, audience string) (*JWKS, error) {
	if jwksURL == "" {
		return nil, goerr.New("JWKS URL is required")
	}

	cache := jwk.NewCache(ctx)
	if err := cache.Register(jwksURL, jwk.WithMinRefreshInterval(15*time.Minute)); err != nil {
		return nil, goerr.Wrap(err, "failed to register JWKS endpoint", goerr.V("url", jwksURL))
	}

	return &JWKS{
		cache:    cache,
		jwksURL:  jwksURL,
		issuer:   issuer,
		audience: audience,
	}, nil
}

func (s *JWKS) Verify(ctx context.Context, token string) (*auth.Principal, error) {
	keySet, err := s.cache.Get(ctx, s.jwksURL)
	if err != nil {
		if isNetworkErr(err) {
			return nil, goerr.Wrap(ErrUpstreamUnavailable, "failed to fetch JWK set", goerr.V("url", s.jwksURL))
		}
		return nil, goerr.Wrap(err, "failed to load JWK set", goerr.V("url", s.jwksURL))
	}

	opts := []jwt.ParseOption{
		jwt.WithKeySet(keySet),
		jwt.WithValidate(true),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	if s.audience != "" {
		opts = append(opts, jwt.WithAudience(s.audience))
	}

	tok, err := jwt.Parse([]byte(token), opts...)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidToken, err.Error())
	}

	sub := tok.Subject()
	if sub == "" {
		return nil, goerr.Wrap(ErrInvalidToken, "token has no subject")
	}

	p := &auth.Principal{
		UserID: types.UserID(sub),
	}
	if v, ok := tok.Get("email"); ok {
		if email, ok := v.(string); ok {
			p.Email = email
		}
	}
	if v, ok := tok.Get("name"); ok {
		if name, ok := v.(string); ok {
			p.Name = name
		}
	}
	if v, ok := tok.Get("admin"); ok {
		if admin, ok := v.(bool); ok {
			p.Admin = admin
		}
	}

	return p, nil
}

func isNetworkErr(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
