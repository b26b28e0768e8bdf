package mail

import (
	"context"

	"github.com/aster-works/agora/pkg/utils/logging"
)

// Console logs outbound mail instead of delivering it. Used in
// development when no SendGrid key is configured.
type Console struct{}

var _ Mailer = &Console{}

func NewConsole() *Console {
	return &Console{}
}

func (c *Console) Send(ctx context.Context, msg *Message) error {
	logging.From(ctx).Info("mail (console)",
		"to", msg.To,
		"subject", msg.Subject,
		"text", msg.Text,
	)
	return nil
}
