package service

import (
	"context"
	"testing"

	"github.com/shipdesk/delaymail/internal/config"
	edomain "github.com/shipdesk/delaymail/internal/email/domain"
	"github.com/shipdesk/delaymail/internal/logger"
)

type captureSender struct {
	called bool
	last   edomain.Message
}

func (c *captureSender) Send(ctx context.Context, msg edomain.Message) error {
	c.called = true
	c.last = msg
	return nil
}

func TestRouter_SelectsSMTP(t *testing.T) {
	cfg, _ := config.Load()
	cfg.MailProvider = "smtp"
	r := NewRouter(cfg, logger.Nop())
	// swap implementations with captures so we don't hit network
	smtpCap := &captureSender{}
	dryCap := &captureSender{}
	r.smtp = smtpCap
	r.dry = dryCap

	if err := r.Send(context.Background(), edomain.Message{To: "a@b.com", Subject: "sub", Text: "body"}); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if !smtpCap.called || dryCap.called {
		t.Fatalf("expected smtp called, dry-run not called")
	}
}

func TestRouter_SelectsLog(t *testing.T) {
	cfg, _ := config.Load()
	cfg.MailProvider = "log"
	r := NewRouter(cfg, logger.Nop())
	smtpCap := &captureSender{}
	dryCap := &captureSender{}
	r.smtp = smtpCap
	r.dry = dryCap

	if err := r.Send(context.Background(), edomain.Message{To: "a@b.com", Subject: "sub", Text: "body"}); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if !dryCap.called || smtpCap.called {
		t.Fatalf("expected dry-run called, smtp not called")
	}
	if dryCap.last.To != "a@b.com" {
		t.Fatalf("message not passed through: %+v", dryCap.last)
	}
}
