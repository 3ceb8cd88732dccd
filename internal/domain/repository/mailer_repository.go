package repository

import "context"

// MailerRepository defines the interface for the outbound notification
// channel. Delivery success per recipient is logged, not tracked.
type MailerRepository interface {
	SendHTML(ctx context.Context, to, subject, htmlBody string) error
}
