package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event represents a dispatch progress/audit event.
// Type examples: "mail.sent", "mail.failed", "mail.skipped"
// Meta may contain the recipient address, error text, row count, etc.
type Event struct {
	Type    string
	RunID   uuid.UUID
	Partner string
	Meta    map[string]string
	Time    time.Time
}

// Publisher publishes events to an external system (log, queue, etc.).
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}
