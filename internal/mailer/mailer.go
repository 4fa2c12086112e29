package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net/smtp"

	"petsitter/internal/domain"
)

// Mailer delivers booking receipts.
type Mailer interface {
	SendBookingReceipt(ctx context.Context, toEmail, toName string, b *domain.Booking) error
}

// SMTPConfig holds the credentials for an authenticated TLS SMTP relay.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// Configured reports whether every field needed to open a session is set.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.Port != "" && c.Username != "" && c.Password != "" && c.From != ""
}

// SMTPMailer sends HTML receipts over an implicit-TLS SMTP connection.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendBookingReceipt(ctx context.Context, toEmail, toName string, b *domain.Booking) error {
	subject := fmt.Sprintf("PetSitter Booking #%d Confirmed - Your E-Receipt", b.ID)
	return m.send(toEmail, subject, receiptHTML(toName, b))
}

func (m *SMTPMailer) send(to, subject, body string) error {
	addr := m.cfg.Host + ":" + m.cfg.Port

	msg := fmt.Sprintf("From: %s\r\n", m.cfg.From)
	msg += fmt.Sprintf("To: %s\r\n", to)
	msg += fmt.Sprintf("Subject: %s\r\n", subject)
	msg += "MIME-Version: 1.0\r\n"
	msg += "Content-Type: text/html; charset=\"utf-8\"\r\n"
	msg += "\r\n" + body + "\r\n"

	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.cfg.Host})
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	defer c.Close()

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := c.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := c.Mail(m.cfg.From); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := c.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}
	wc, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := wc.Write([]byte(msg)); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("smtp close: %w", err)
	}
	return c.Quit()
}

// DevConsoleMailer logs receipts instead of sending them. Used when no
// SMTP relay is configured, so local setups never need credentials.
type DevConsoleMailer struct{}

func NewDevConsoleMailer() *DevConsoleMailer {
	return &DevConsoleMailer{}
}

func (m *DevConsoleMailer) SendBookingReceipt(ctx context.Context, toEmail, toName string, b *domain.Booking) error {
	log.Printf("receipt_email_dev booking_id=%d to=%s sitter=%q total=%.2f", b.ID, toEmail, b.SitterName, b.TotalPrice)
	return nil
}
