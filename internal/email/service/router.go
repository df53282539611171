package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shipdesk/delaymail/internal/config"
	edomain "github.com/shipdesk/delaymail/internal/email/domain"
)

// Ensure Router implements domain.Sender
var _ edomain.Sender = (*Router)(nil)

// Router selects the configured provider per message.
type Router struct {
	cfg  config.Config
	smtp edomain.Sender
	dry  edomain.Sender
}

func NewRouter(cfg config.Config, log zerolog.Logger) *Router {
	return &Router{cfg: cfg, smtp: NewSMTP(cfg), dry: NewLog(log)}
}

func (r *Router) Send(ctx context.Context, msg edomain.Message) error {
	switch strings.ToLower(r.cfg.MailProvider) {
	case "log":
		return r.dry.Send(ctx, msg)
	default:
		return r.smtp.Send(ctx, msg)
	}
}
