package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendMailer sends through the Resend transactional email API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

func NewResendMailer(apiKey string, from string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (mailer *ResendMailer) Send(ctx context.Context, message Message) error {
	params := &resend.SendEmailRequest{
		From:    mailer.from,
		To:      []string{message.To},
		Subject: message.Subject,
		Html:    message.HTML,
	}
	for _, attachment := range message.Attachments {
		params.Attachments = append(params.Attachments, &resend.Attachment{
			Filename: attachment.Filename,
			Content:  attachment.Content,
		})
	}

	if _, err := mailer.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("send via resend: %w", err)
	}
	return nil
}
