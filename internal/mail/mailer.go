package mail

import (
	"context"
	"log"
)

// Attachment carries raw file bytes for outbound mail.
type Attachment struct {
	Filename string
	Content  []byte
}

type Message struct {
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Mailer dispatches one transactional message. Delivery is best-effort:
// callers decide whether a failure is fatal to their own operation.
type Mailer interface {
	Send(ctx context.Context, message Message) error
}

// LogMailer is used when no delivery credentials are configured. It keeps
// local development and tests working without an outbound provider.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (mailer *LogMailer) Send(_ context.Context, message Message) error {
	log.Printf("mail (not delivered): to=%s subject=%q attachments=%d", message.To, message.Subject, len(message.Attachments))
	return nil
}
