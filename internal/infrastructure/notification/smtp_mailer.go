// Package notification delivers deployment and transfer notices over SMTP.
package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	appdeployment "github.com/talentflow/backend/internal/application/deployment"
	"github.com/talentflow/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// sendFunc matches smtp.SendMail so tests can stub the transport
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends HTML notices through a provider SMTP endpoint using
// the delivery manager's app-password credentials
type SMTPMailer struct {
	cfg    config.MailConfig
	send   sendFunc
	logger *zap.Logger
}

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(cfg config.MailConfig, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		cfg:    cfg,
		send:   smtp.SendMail,
		logger: logger,
	}
}

// Send delivers the mail to each recipient individually so one bounced
// address does not sink the rest. CC recipients count toward the totals.
func (m *SMTPMailer) Send(ctx context.Context, mail appdeployment.OutboundMail) (appdeployment.SendOutcome, error) {
	if mail.FromEmail == "" || mail.AppPassword == "" {
		return appdeployment.SendOutcome{}, fmt.Errorf("smtp mailer: sender credentials are missing")
	}

	recipients := append(append([]string{}, mail.To...), mail.CC...)
	if len(recipients) == 0 {
		return appdeployment.SendOutcome{}, fmt.Errorf("smtp mailer: no recipients")
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)
	auth := smtp.PlainAuth("", mail.FromEmail, mail.AppPassword, m.cfg.SMTPHost)

	outcome := appdeployment.SendOutcome{}
	for _, recipient := range recipients {
		if err := ctx.Err(); err != nil {
			return outcome, err
		}

		msg := buildMessage(mail)
		if err := m.send(addr, auth, mail.FromEmail, []string{recipient}, msg); err != nil {
			m.logger.Warn("Notice delivery failed for recipient",
				zap.String("recipient", recipient),
				zap.Error(err))
			outcome.Failed++
			outcome.FailedRecipients = append(outcome.FailedRecipients, recipient)
			continue
		}
		outcome.Successful++
	}

	if outcome.Successful == 0 {
		return outcome, fmt.Errorf("smtp mailer: delivery failed for all %d recipients", outcome.Failed)
	}

	return outcome, nil
}

// buildMessage assembles the HTML MIME message. The full To and CC lists
// stay in the headers so every delivered copy reads the same.
func buildMessage(mail appdeployment.OutboundMail) []byte {
	from := mail.FromEmail
	if mail.FromName != "" {
		from = fmt.Sprintf("%s <%s>", mail.FromName, mail.FromEmail)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(mail.To, ", "))
	if len(mail.CC) > 0 {
		fmt.Fprintf(&b, "Cc: %s\r\n", strings.Join(mail.CC, ", "))
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", mail.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(mail.HTMLBody)

	return []byte(b.String())
}

var _ appdeployment.Mailer = (*SMTPMailer)(nil)
