package notification

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sendFunc matches smtp.SendMail.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpMailer struct {
	addr        string
	auth        smtp.Auth
	from        string
	frontendURL string
	send        sendFunc
	now         func() time.Time
}

// MailerParams holds dependencies for the Mailer, injected by Fx.
type MailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailer returns an SMTP mailer, or a logging no-op when mail.host is empty.
func NewMailer(params MailerParams) service.Mailer {
	cfg := params.Config.Mail
	if cfg == nil || cfg.Host == "" {
		params.Logger.Info("Mail not configured, outbound email disabled")

		return &noopMailer{logger: params.Logger}
	}

	return newSMTPMailer(cfg, params.Config.Shop.FrontendURL, smtp.SendMail)
}

func newSMTPMailer(cfg *config.MailConfig, frontendURL string, send sendFunc) *smtpMailer {
	port := cfg.Port
	if port == 0 {
		port = 587
	}

	var auth smtp.Auth
	if cfg.UserName != "" {
		auth = smtp.PlainAuth("", cfg.UserName, cfg.Password, cfg.Host)
	}

	return &smtpMailer{
		addr:        net.JoinHostPort(cfg.Host, strconv.Itoa(port)),
		auth:        auth,
		from:        cfg.From,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		send:        send,
		now:         time.Now,
	}
}

func (m *smtpMailer) SendOrderConfirmation(ctx context.Context, email string, order service.OrderConfirmation) error {
	subject := "Order Confirmation - " + order.OrderNumber
	body := fmt.Sprintf(
		"Thank you for your order!\n\nOrder number: %s\nTotal: %s\nStatus: %s\n\nTrack it at %s/orders/%s\n",
		order.OrderNumber, order.Total, order.Status, m.frontendURL, order.OrderID,
	)

	return m.deliver(ctx, email, subject, body)
}

func (m *smtpMailer) SendOrderStatusUpdate(ctx context.Context, email string, order service.OrderConfirmation) error {
	subject := "Order " + order.OrderNumber + " is now " + order.Status
	body := fmt.Sprintf(
		"Your order %s has been updated.\n\nNew status: %s\nTotal: %s\n\nDetails: %s/orders/%s\n",
		order.OrderNumber, order.Status, order.Total, m.frontendURL, order.OrderID,
	)

	return m.deliver(ctx, email, subject, body)
}

func (m *smtpMailer) SendVerificationEmail(ctx context.Context, email, name, token string) error {
	subject := "Verify your email address"
	body := fmt.Sprintf(
		"Hi %s,\n\nPlease confirm your email address by opening the link below:\n\n%s/verify-email?token=%s\n\nThe link expires in 24 hours.\n",
		name, m.frontendURL, token,
	)

	return m.deliver(ctx, email, subject, body)
}

func (m *smtpMailer) SendPasswordReset(ctx context.Context, email, name, token string) error {
	subject := "Password reset request"
	body := fmt.Sprintf(
		"Hi %s,\n\nUse the link below to choose a new password:\n\n%s/reset-password?token=%s\n\nThe link expires in 10 minutes. Ignore this email if you did not ask for a reset.\n",
		name, m.frontendURL, token,
	)

	return m.deliver(ctx, email, subject, body)
}

func (m *smtpMailer) deliver(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	msg := m.compose(to, subject, body)
	if err := m.send(m.addr, m.auth, m.from, []string{to}, msg); err != nil {
		return errors.Wrapf(err, "failed to send %q to %s", subject, to)
	}

	return nil
}

func (m *smtpMailer) compose(to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + m.from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("Date: " + m.now().Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))

	return []byte(b.String())
}

// noopMailer logs instead of sending.
type noopMailer struct {
	logger *slog.Logger
}

func (m *noopMailer) SendOrderConfirmation(ctx context.Context, email string, order service.OrderConfirmation) error {
	m.logger.Debug("[NoopMail] Order confirmation", slog.String("email", email), slog.String("order_number", order.OrderNumber))

	return nil
}

func (m *noopMailer) SendOrderStatusUpdate(ctx context.Context, email string, order service.OrderConfirmation) error {
	m.logger.Debug("[NoopMail] Order status update", slog.String("email", email), slog.String("status", order.Status))

	return nil
}

func (m *noopMailer) SendVerificationEmail(ctx context.Context, email, name, token string) error {
	m.logger.Debug("[NoopMail] Verification email", slog.String("email", email))

	return nil
}

func (m *noopMailer) SendPasswordReset(ctx context.Context, email, name, token string) error {
	m.logger.Debug("[NoopMail] Password reset", slog.String("email", email))

	return nil
}
