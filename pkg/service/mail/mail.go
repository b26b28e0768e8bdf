package mail

import "context"

// Message is a single outbound email.
type Message struct {
	To      string
	ToName  string
	Subject string
	Text    string
}

// Mailer delivers transactional email. Delivery is best-effort from the
// caller's perspective; failures are logged, never fatal.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}
