package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"flyright-service/internal/domain/repository"
	"flyright-service/pkg/logger"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// DigestSender delivers deal digest emails through the Gmail API.
type DigestSender struct {
	gmailService *gmail.Service
	from         string
	replyTo      string
	logger       logger.Logger
}

// NewDigestSender creates a new Gmail digest sender
func NewDigestSender(ctx context.Context, tokenSource oauth2.TokenSource, from, replyTo string, log logger.Logger) (*DigestSender, error) {
	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return &DigestSender{
		gmailService: service,
		from:         from,
		replyTo:      replyTo,
		logger:       log,
	}, nil
}

var _ repository.MailerRepository = (*DigestSender)(nil)

// SendHTML sends one HTML email to a single recipient
func (s *DigestSender) SendHTML(ctx context.Context, to, subject, htmlBody string) error {
	raw := buildMessage(s.from, s.replyTo, to, subject, htmlBody)

	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
	}

	_, err := s.gmailService.Users.Messages.Send("me", msg).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to send message to %s: %w", to, err)
	}

	s.logger.Info("Digest email sent", "to", to, "subject", subject)
	return nil
}

// buildMessage assembles an RFC 822 message with an HTML body
func buildMessage(from, replyTo, to, subject, htmlBody string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: FlyRight Deals <%s>\r\n", from))
	if replyTo != "" {
		b.WriteString(fmt.Sprintf("Reply-To: %s\r\n", replyTo))
	}
	b.WriteString(fmt.Sprintf("To: %s\r\n", to))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return b.String()
}
