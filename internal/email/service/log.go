package service

import (
	"context"

	"github.com/rs/zerolog"
	edomain "github.com/shipdesk/delaymail/internal/email/domain"
)

// Ensure Log implements domain.Sender
var _ edomain.Sender = (*Log)(nil)

// Log writes messages to the logger instead of sending them. It backs the
// dry-run provider so a full dispatch can be rehearsed without touching the
// mail endpoint.
type Log struct {
	log zerolog.Logger
}

func NewLog(log zerolog.Logger) *Log { return &Log{log: log} }

func (l *Log) Send(ctx context.Context, msg edomain.Message) error {
	l.log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Int("text_bytes", len(msg.Text)).
		Int("html_bytes", len(msg.HTML)).
		Msg("dry-run: message not sent")
	l.log.Debug().Msg(msg.Text)
	return nil
}
