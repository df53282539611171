package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	edomain "github.com/shipdesk/delaymail/internal/email/domain"
	evdomain "github.com/shipdesk/delaymail/internal/events/domain"
	"github.com/shipdesk/delaymail/internal/ledger"
	"github.com/shipdesk/delaymail/internal/markup"
	"github.com/shipdesk/delaymail/internal/notify/domain"
)

const subjectPattern = "[Delivery Check] %s delayed shipment confirmation request"

// Dispatcher sends mail items one at a time, in order, and appends the audit
// batch afterwards. Sends never abort the loop; only a ledger write failure
// propagates.
type Dispatcher struct {
	sender edomain.Sender
	store  *ledger.Store
	events evdomain.Publisher
	log    zerolog.Logger
	now    func() time.Time
}

func NewDispatcher(sender edomain.Sender, store *ledger.Store, events evdomain.Publisher, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{sender: sender, store: store, events: events, log: log, now: time.Now}
}

// Dispatch processes items strictly sequentially. Items without a usable
// address are recorded as Skipped without contacting the mail channel; each
// remaining item gets one scoped SMTP session. When all items are done,
// every item expands into one history entry per underlying record and the
// whole batch is appended to the ledger.
func (d *Dispatcher) Dispatch(ctx context.Context, items []domain.MailItem) (domain.Summary, error) {
	runID := uuid.New()
	sum := domain.Summary{RunID: runID, Outcomes: make(map[string]domain.SendOutcome, len(items))}
	log := d.log.With().Str("run_id", runID.String()).Logger()

	for i := range items {
		item := &items[i]
		if !item.Resolution.HasAddress() {
			d.record(ctx, item, &sum, domain.SendOutcome{Status: domain.StatusSkipped, Reason: "No Email Address"})
			continue
		}

		addr := item.Resolution.Address()
		log.Info().Str("partner", item.PartnerName).Str("to", addr).Int("rows", item.Count).Msg("sending")
		msg := edomain.Message{
			To:      addr,
			Subject: fmt.Sprintf(subjectPattern, item.PartnerName),
			Text:    item.Body,
			HTML:    markup.ToHTML(item.Body),
		}
		if err := d.sender.Send(ctx, msg); err != nil {
			log.Error().Str("partner", item.PartnerName).Err(err).Msg("send failed")
			d.record(ctx, item, &sum, domain.SendOutcome{Status: domain.StatusFail, Reason: err.Error()})
			continue
		}
		d.record(ctx, item, &sum, domain.SendOutcome{Status: domain.StatusSuccess})
	}

	collectedAt := d.now()
	var entries []domain.HistoryEntry
	for i := range items {
		entries = append(entries, ledger.Stamp(items[i], collectedAt)...)
	}
	if err := d.store.Append(entries); err != nil {
		return sum, fmt.Errorf("append ledger: %w", err)
	}

	log.Info().Int("sent", sum.Sent).Int("failed", sum.Failed).Int("skipped", sum.Skipped).
		Int("ledger_rows", len(entries)).Msg("dispatch complete")
	return sum, nil
}

func (d *Dispatcher) record(ctx context.Context, item *domain.MailItem, sum *domain.Summary, out domain.SendOutcome) {
	item.Outcome = &out
	sum.Outcomes[item.PartnerName] = out

	eventType := "mail.sent"
	switch out.Status {
	case domain.StatusSuccess:
		sum.Sent++
	case domain.StatusFail:
		sum.Failed++
		eventType = "mail.failed"
	case domain.StatusSkipped:
		sum.Skipped++
		eventType = "mail.skipped"
	}

	meta := map[string]string{"rows": fmt.Sprint(item.Count)}
	if out.Reason != "" {
		meta["reason"] = out.Reason
	}
	if addr := item.Resolution.Address(); addr != "" {
		meta["to"] = addr
	}
	_ = d.events.Publish(ctx, evdomain.Event{
		Type:    eventType,
		RunID:   sum.RunID,
		Partner: item.PartnerName,
		Meta:    meta,
		Time:    d.now(),
	})
}
