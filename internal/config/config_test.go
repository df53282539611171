package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.SMTPHost == "" {
		t.Error("expected a default SMTP host")
	}
	if c.SMTPPort != 587 {
		t.Errorf("expected default port 587 got %d", c.SMTPPort)
	}
	if c.MailProvider != "smtp" {
		t.Errorf("expected default provider smtp got %q", c.MailProvider)
	}
	if c.LedgerPath == "" {
		t.Error("expected a default ledger path")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SMTP_HOST", "mail.internal")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("MAIL_PROVIDER", "LOG")
	t.Setenv("SMTP_USERNAME", "ops@x.com")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.SMTPHost != "mail.internal" {
		t.Errorf("expected host override got %q", c.SMTPHost)
	}
	if c.SMTPPort != 2525 {
		t.Errorf("expected port override got %d", c.SMTPPort)
	}
	if c.MailProvider != "log" {
		t.Errorf("expected provider lowercased got %q", c.MailProvider)
	}
	if c.FromAddress != "ops@x.com" {
		t.Errorf("expected FromAddress to default to the username, got %q", c.FromAddress)
	}
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-port")
	c, _ := Load()
	if c.SMTPPort != 587 {
		t.Errorf("expected default port on parse failure got %d", c.SMTPPort)
	}
}
