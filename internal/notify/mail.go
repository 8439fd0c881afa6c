// Package notify tells the site owner about new contact messages.
package notify

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/domain"
)

// Notifier delivers a contact message to the owner.
type Notifier interface {
	ContactReceived(ctx context.Context, c domain.Contact) error
}

// Noop drops every notification. Used when SMTP is not configured.
type Noop struct{}

func (Noop) ContactReceived(context.Context, domain.Contact) error { return nil }

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Mailer sends notifications over SMTP with PLAIN auth.
type Mailer struct {
	addr string
	host string
	user string
	pass string
	to   string
	send sendFunc
}

// NewMailer builds a Mailer from cfg. Without a recipient the owner's own
// SMTP user receives the mail.
func NewMailer(cfg config.SMTPConfig) *Mailer {
	to := cfg.To
	if to == "" {
		to = cfg.User
	}
	return &Mailer{
		addr: net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		host: cfg.Host,
		user: cfg.User,
		pass: cfg.Password,
		to:   to,
		send: smtp.SendMail,
	}
}

// New returns a Mailer when credentials are configured and Noop otherwise.
func New(cfg config.SMTPConfig) Notifier {
	if !cfg.Enabled() {
		return Noop{}
	}
	return NewMailer(cfg)
}

// ContactReceived mails the message to the owner with Reply-To set to the
// sender.
func (m *Mailer) ContactReceived(ctx context.Context, c domain.Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	if err := m.send(m.addr, auth, m.user, []string{m.to}, m.message(c)); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}

func (m *Mailer) message(c domain.Contact) []byte {
	subject := "Portfolio Contact: " + headerValue(c.Name)
	if c.Subject != "" {
		subject += " - " + headerValue(c.Subject)
	}

	body := fmt.Sprintf(`New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, headerValue(c.Name), headerValue(c.Email), c.Message)

	var b strings.Builder
	b.WriteString("To: " + m.to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("From: " + m.user + "\r\n")
	if email := headerValue(c.Email); email != "" {
		b.WriteString("Reply-To: " + email + "\r\n")
	}
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}

// headerValue strips line breaks so user input cannot inject headers.
func headerValue(s string) string {
	return strings.TrimSpace(strings.NewReplacer("\r", " ", "\n", " ").Replace(s))
}
