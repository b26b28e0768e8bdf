package config

import (
	"github.com/urfave/cli/v3"

	"github.com/aster-works/agora/pkg/service/mail"
	"github.com/aster-works/agora/pkg/utils/logging"
)

// Mail holds CLI flags for outbound email configuration
type Mail struct {
	sendgridKey string
	fromName    string
	fromEmail   string
}

// Flags returns CLI flags for mail configuration
func (m *Mail) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sendgrid-api-key",
			Usage:       "SendGrid API key (console delivery when unset)",
			Category:    "Mail",
			Sources:     cli.EnvVars("AGORA_SENDGRID_API_KEY"),
			Destination: &m.sendgridKey,
		},
		&cli.StringFlag{
			Name:        "mail-from-name",
			Usage:       "Display name of the sender",
			Category:    "Mail",
			Value:       "Agora",
			Sources:     cli.EnvVars("AGORA_MAIL_FROM_NAME"),
			Destination: &m.fromName,
		},
		&cli.StringFlag{
			Name:        "mail-from-email",
			Usage:       "Sender email address",
			Category:    "Mail",
			Sources:     cli.EnvVars("AGORA_MAIL_FROM_EMAIL"),
			Destination: &m.fromEmail,
		},
	}
}

// Configure builds the mailer. Without a SendGrid key, email is logged
// to the console instead of delivered.
func (m *Mail) Configure() (mail.Mailer, error) {
	if m.sendgridKey == "" {
		logging.Default().Info("SendGrid not configured, using console mail delivery")
		return mail.NewConsole(), nil
	}

	mailer, err := mail.NewSendGrid(m.sendgridKey, m.fromName, m.fromEmail)
	if err != nil {
		return nil, err
	}

	logging.Default().Info("SendGrid mail delivery enabled", "from", m.fromEmail)
	return mailer, nil
}
