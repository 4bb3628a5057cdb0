package mailer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"strings"

	"portfolio/internal/config"
)

var ErrNotConfigured = errors.New("smtp credentials not configured")

// ContactMessage is one submission of the public contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

type Sender interface {
	SendContact(ctx context.Context, m ContactMessage) error
}

type SMTPSender struct {
	cfg    config.SMTPConfig
	logger *log.Logger
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(cfg config.SMTPConfig, logger *log.Logger) *SMTPSender {
	return &SMTPSender{cfg: cfg, logger: logger, send: smtp.SendMail}
}

func (s *SMTPSender) configured() bool {
	return strings.TrimSpace(s.cfg.Host) != "" &&
		strings.TrimSpace(s.cfg.User) != "" &&
		s.cfg.Pass != "" &&
		strings.TrimSpace(s.cfg.To) != ""
}

func (s *SMTPSender) SendContact(ctx context.Context, m ContactMessage) error {
	if !s.configured() {
		if s.logger != nil {
			s.logger.Printf("[Mailer] contact message dropped: smtp not configured from=%s", m.Email)
		}
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	from := strings.TrimSpace(s.cfg.From)
	if from == "" {
		from = s.cfg.User
	}
	addr := net.JoinHostPort(s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)

	if err := s.send(addr, auth, from, []string{s.cfg.To}, buildContactMessage(from, s.cfg.To, m)); err != nil {
		if s.logger != nil {
			s.logger.Printf("[Mailer] send failed host=%s err=%v", s.cfg.Host, err)
		}
		return fmt.Errorf("send mail: %w", err)
	}
	if s.logger != nil {
		s.logger.Printf("[Mailer] contact message sent from=%s", m.Email)
	}
	return nil
}

func buildContactMessage(from, to string, m ContactMessage) []byte {
	name := headerSafe(m.Name)
	var b strings.Builder
	b.WriteString("To: " + headerSafe(to) + "\r\n")
	b.WriteString("From: " + headerSafe(from) + "\r\n")
	b.WriteString("Reply-To: " + headerSafe(m.Email) + "\r\n")
	b.WriteString("Subject: Portfolio Contact: " + name + "\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString("New contact form submission from your portfolio:\r\n\r\n")
	b.WriteString("Name: " + name + "\r\n")
	b.WriteString("Email: " + headerSafe(m.Email) + "\r\n")
	b.WriteString("Message:\r\n")
	b.WriteString(strings.ReplaceAll(m.Message, "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}

// headerSafe strips line breaks so user input cannot add headers.
func headerSafe(s string) string {
	return strings.TrimSpace(strings.NewReplacer("\r", " ", "\n", " ").Replace(s))
}
