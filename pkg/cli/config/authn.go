package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/aster-works/agora/pkg/service/authn"
	"github.com/aster-works/agora/pkg/utils/logging"
)

// Authn holds CLI flags for identity verification
type Authn struct {
	jwksURL     string
	issuer      string
	audience    string
	noAuth      bool
	noAuthAdmin bool
}

// Flags returns CLI flags for authentication configuration
func (a *Authn) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "jwks-url",
			Usage:       "JWK set endpoint of the identity provider",
			Category:    "Authentication",
			Sources:     cli.EnvVars("AGORA_JWKS_URL"),
			Destination: &a.jwksURL,
		},
		&cli.StringFlag{
			Name:        "jwt-issuer",
			Usage:       "Expected token issuer",
			Category:    "Authentication",
			Sources:     cli.EnvVars("AGORA_JWT_ISSUER"),
			Destination: &a.issuer,
		},
		&cli.StringFlag{
			Name:        "jwt-audience",
			Usage:       "Expected token audience",
			Category:    "Authentication",
			Sources:     cli.EnvVars("AGORA_JWT_AUDIENCE"),
			Destination: &a.audience,
		},
		&cli.BoolFlag{
			Name:        "no-auth",
			Usage:       "Trust bearer tokens as literal user IDs (development only)",
			Category:    "Authentication",
			Sources:     cli.EnvVars("AGORA_NO_AUTH"),
			Destination: &a.noAuth,
		},
		&cli.BoolFlag{
			Name:        "no-auth-admin",
			Usage:       "Grant admin to all no-auth users (development only)",
			Category:    "Authentication",
			Sources:     cli.EnvVars("AGORA_NO_AUTH_ADMIN"),
			Destination: &a.noAuthAdmin,
		},
	}
}

// IsNoAuthMode reports whether development no-auth mode is active.
func (a *Authn) IsNoAuthMode() bool {
	return a.noAuth
}

// Configure builds the identity verification service.
func (a *Authn) Configure(ctx context.Context) (authn.Service, error) {
	if a.noAuth {
		logging.Default().Warn("Running in no-auth mode (development only)", "admin", a.noAuthAdmin)
		return authn.NewNoAuth(a.noAuthAdmin), nil
	}

	if a.jwksURL == "" {
		return nil, goerr.New("jwks-url is required unless --no-auth is set")
	}

	svc, err := authn.NewJWKS(ctx, a.jwksURL, a.issuer, a.audience)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure JWKS verification")
	}

	logging.Default().Info("JWT authentication enabled",
		"jwks_url", a.jwksURL,
		"issuer", a.issuer,
		"audience", a.audience,
	)
	return svc, nil
}
