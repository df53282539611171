package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppEnv string

	SMTPHost     string `validate:"required_if=MailProvider smtp,omitempty,hostname|ip"`
	SMTPPort     int    `validate:"gt=0,lte=65535"`
	SMTPUsername string `validate:"required_if=MailProvider smtp"`
	SMTPPassword string `validate:"required_if=MailProvider smtp"`
	FromName     string `validate:"required"`
	FromAddress  string `validate:"omitempty,email"`

	MailProvider string `validate:"oneof=smtp log"` // smtp | log

	LedgerPath string `validate:"required"`
}

func Load() (Config, error) {
	c := Config{}

	c.AppEnv = getEnv("APP_ENV", "development")

	c.SMTPHost = getEnv("SMTP_HOST", "smtp.gmail.com")
	c.SMTPPort = getInt("SMTP_PORT", 587)
	c.SMTPUsername = getEnv("SMTP_USERNAME", "")
	c.SMTPPassword = getEnv("SMTP_PASSWORD", "")
	c.FromName = getEnv("FROM_NAME", "Shipping Operations")
	c.FromAddress = getEnv("FROM_ADDRESS", c.SMTPUsername)

	c.MailProvider = strings.ToLower(getEnv("MAIL_PROVIDER", "smtp"))

	c.LedgerPath = getEnv("LEDGER_PATH", "send_history.csv")

	return c, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func (c Config) String() string {
	return fmt.Sprintf("env=%s smtp=%s:%d provider=%s ledger=%s", c.AppEnv, c.SMTPHost, c.SMTPPort, c.MailProvider, c.LedgerPath)
}
