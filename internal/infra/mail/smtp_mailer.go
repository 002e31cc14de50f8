// Package mail delivers transactional email over SMTP.
package mail

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
	"time"

	"reachqr/config"
	"reachqr/internal/domain/service"
	"reachqr/internal/errors"
)

const defaultSendTimeout = 10 * time.Second

type smtpMailer struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	fromName  string
	timeout   time.Duration
	logger    *slog.Logger
}

// NewSMTPMailer builds the SMTP-backed Mailer. When no host is configured the
// mailer logs messages instead of sending them, which keeps local development
// working without a provider.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	mailer := &smtpMailer{
		timeout: defaultSendTimeout,
		logger:  logger,
	}
	if cfg.SMTP != nil {
		mailer.host = cfg.SMTP.Host
		mailer.port = cfg.SMTP.Port
		mailer.username = cfg.SMTP.Username
		mailer.password = cfg.SMTP.Password
		mailer.fromEmail = cfg.SMTP.FromEmail
		mailer.fromName = cfg.SMTP.FromName
		if cfg.SMTP.Timeout > 0 {
			mailer.timeout = cfg.SMTP.Timeout
		}
	}

	return mailer
}

func (m *smtpMailer) SendEditLink(ctx context.Context, email *service.EditLinkEmail) error {
	subject := "Your page is live - keep this edit link"

	var body strings.Builder
	if err := editLinkTemplate.Execute(&body, email); err != nil {
		return errors.Wrap(err, "failed to render edit link email")
	}

	return m.send(ctx, email.To, subject, body.String())
}

func (m *smtpMailer) SendRecovery(ctx context.Context, to string, pages []service.RecoveredPage) error {
	subject := "Your edit links"

	var body strings.Builder
	if err := recoveryTemplate.Execute(&body, pages); err != nil {
		return errors.Wrap(err, "failed to render recovery email")
	}

	return m.send(ctx, to, subject, body.String())
}

func (m *smtpMailer) SendNotification(ctx context.Context, email *service.NotificationEmail) error {
	subject := "An update about your page"

	var body strings.Builder
	if err := notificationTemplate.Execute(&body, email); err != nil {
		return errors.Wrap(err, "failed to render notification email")
	}

	return m.send(ctx, email.To, subject, body.String())
}

// send delivers one message. The raw SMTP dialog has no context support, so
// the deadline is enforced on the underlying connection instead.
func (m *smtpMailer) send(ctx context.Context, to, subject, body string) error {
	if m.host == "" || m.port == "" {
		m.logger.InfoContext(ctx, "SMTP not configured, logging email instead",
			slog.String("to", to),
			slog.String("subject", subject))

		return nil
	}

	from := fmt.Sprintf("%s <%s>", m.fromName, m.fromEmail)
	msg := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: %s\r\n"+
		"Subject: %s\r\n"+
		"MIME-Version: 1.0\r\n"+
		"Content-Type: text/html; charset=UTF-8\r\n"+
		"\r\n"+
		"%s\r\n", to, from, subject, body))

	addr := net.JoinHostPort(m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	sendCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, m.fromEmail, []string{to}, msg)
	}()

	select {
	case <-sendCtx.Done():
		return errors.Wrap(sendCtx.Err(), "smtp send timed out")
	case err := <-done:
		if err != nil {
			return errors.Wrap(err, "failed to send email")
		}
	}

	return nil
}

var editLinkTemplate = template.Must(template.New("editLink").Parse(`<html>
<body style="font-family: sans-serif; max-width: 560px; margin: 0 auto;">
  <h2>Your page for {{.BusinessName}} is live</h2>
  <p>Anyone can visit your public page:</p>
  <p><a href="{{.PublicLink}}">{{.PublicLink}}</a></p>
  <p>To make changes later, use your private edit link. Keep it safe;
  anyone who has it can edit your page.</p>
  <p><a href="{{.EditLink}}">{{.EditLink}}</a></p>
  <p>If you ever lose this link, you can request a new one from the
  recovery page using this email address.</p>
</body>
</html>`))

var recoveryTemplate = template.Must(template.New("recovery").Parse(`<html>
<body style="font-family: sans-serif; max-width: 560px; margin: 0 auto;">
  <h2>Your edit links</h2>
  <p>You asked for the edit links registered to this email address.
  Any previously issued edit links for these pages no longer work.</p>
  {{range .}}
  <div style="margin-bottom: 16px;">
    <h3>{{.BusinessName}}</h3>
    <p>Public page: <a href="{{.PublicLink}}">{{.PublicLink}}</a></p>
    <p>Edit link: <a href="{{.EditLink}}">{{.EditLink}}</a></p>
  </div>
  {{end}}
  <p>If you did not request this email, you can ignore it.</p>
</body>
</html>`))

var notificationTemplate = template.Must(template.New("notification").Parse(`<html>
<body style="font-family: sans-serif; max-width: 560px; margin: 0 auto;">
  <h2>Hello {{.BusinessName}}</h2>
  <p>Here is a quick reminder of your page links.</p>
  <p>Public page: <a href="{{.PublicLink}}">{{.PublicLink}}</a></p>
  <p>Lost your edit link? Recover it here:
  <a href="{{.RecoverLink}}">{{.RecoverLink}}</a></p>
</body>
</html>`))
