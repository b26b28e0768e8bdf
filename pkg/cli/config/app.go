package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/aster-works/agora/pkg/domain/model"
)

// AppConfig holds the path to the association policy file.
type AppConfig struct {
	policyPath string
}

// Flags returns CLI flags for application configuration
func (a *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "policy-file",
			Usage:       "TOML file with accepted departments and class years",
			Sources:     cli.EnvVars("AGORA_POLICY_FILE"),
			Destination: &a.policyPath,
		},
	}
}

// Configure loads the membership policy. Without a file, registration
// accepts any department and class year.
func (a *AppConfig) Configure() (*model.Policy, error) {
	if a.policyPath == "" {
		return &model.Policy{}, nil
	}

	data, err := os.ReadFile(a.policyPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read policy file", goerr.V("path", a.policyPath))
	}

	var policy model.Policy
	if err := toml.Unmarshal(data, &policy); err != nil {
		return nil, goerr.Wrap(err, "failed to parse policy file", goerr.V("path", a.policyPath))
	}

	return &policy, nil
}
