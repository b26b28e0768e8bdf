package mail

import (
	"context"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGrid delivers mail through the SendGrid v3 API.
type SendGrid struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

var _ Mailer = &SendGrid{}

func NewSendGrid(apiKey, fromName, fromEmail string) (*SendGrid, error) {
	if apiKey == "" {
		return nil, goerr.New("sendgrid API key is required")
	}
	if fromEmail == "" {
		return nil, goerr.New("sender email is required")
	}

	return &SendGrid{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

func (s *SendGrid) Send(ctx context.Context, msg *Message) error {
	from := sgmail.NewEmail(s.fromName, s.fromEmail)
	to := sgmail.NewEmail(msg.ToName, msg.To)
	message := sgmail.NewSingleEmail(from, msg.Subject, to, msg.Text, "")

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return goerr.Wrap(err, "failed to send email", goerr.V("to", msg.To))
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return goerr.New("sendgrid rejected message",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", resp.Body),
			goerr.V("to", msg.To))
	}

	return nil
}
