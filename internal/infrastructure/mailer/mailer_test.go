package mailer

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"portfolio/internal/config"
)

func TestSMTPSender_NotConfigured(t *testing.T) {
	s := NewSMTPSender(config.SMTPConfig{}, nil)
	err := s.SendContact(context.Background(), ContactMessage{Name: "a", Email: "a@b.c", Message: "hi"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestSMTPSender_Send(t *testing.T) {
	s := NewSMTPSender(config.SMTPConfig{Host: "smtp.test", Port: "587", User: "u@test", Pass: "p", To: "owner@test"}, nil)

	var gotAddr string
	var gotTo []string
	var gotMsg string
	s.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotTo = to
		gotMsg = string(msg)
		if from != "u@test" {
			t.Fatalf("expected from to fall back to user, got %q", from)
		}
		return nil
	}

	err := s.SendContact(context.Background(), ContactMessage{Name: "Eve\r\nBcc: x@y", Email: "eve@test", Message: "hello"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotAddr != "smtp.test:587" {
		t.Fatalf("unexpected addr %q", gotAddr)
	}
	if len(gotTo) != 1 || gotTo[0] != "owner@test" {
		t.Fatalf("unexpected recipients %v", gotTo)
	}
	if strings.Contains(gotMsg, "\r\nBcc:") {
		t.Fatalf("header injection not stripped: %q", gotMsg)
	}
	if !strings.Contains(gotMsg, "Reply-To: eve@test") {
		t.Fatalf("missing reply-to: %q", gotMsg)
	}
}

func TestSMTPSender_SendError(t *testing.T) {
	s := NewSMTPSender(config.SMTPConfig{Host: "h", Port: "25", User: "u", Pass: "p", To: "t"}, nil)
	boom := errors.New("boom")
	s.send = func(string, smtp.Auth, string, []string, []byte) error { return boom }
	if err := s.SendContact(context.Background(), ContactMessage{}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
}
