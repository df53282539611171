// Package ledger persists the append-only audit trail of send outcomes.
package ledger

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/shipdesk/delaymail/internal/notify/domain"
)

// Header is the ledger column order. Written once, on file creation only.
var Header = []string{
	"collected_at",
	"partner_name",
	"partner_code",
	"order_no",
	"item_code",
	"item_name",
	"tracking_no",
	"result",
	"remark",
}

const timeLayout = "2006-01-02 15:04:05"

// Store appends history entries to one delimited UTF-8 file. The file gets a
// byte-order marker and a header row when first created; later appends add
// rows only. A single dispatch run at a time is assumed; there is no
// cross-process locking.
type Store struct {
	path string
}

func NewStore(path string) *Store { return &Store{path: path} }

func (s *Store) Path() string { return s.path }

// Append writes the whole batch in one file write, so a batch is either
// fully recorded or not at all.
func (s *Store) Append(entries []domain.HistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}

	writeHeader := false
	if fi, err := os.Stat(s.path); os.IsNotExist(err) || (err == nil && fi.Size() == 0) {
		writeHeader = true
	} else if err != nil {
		return fmt.Errorf("stat ledger %s: %w", s.path, err)
	}

	var buf bytes.Buffer
	if writeHeader {
		buf.WriteString("\ufeff")
	}
	w := csv.NewWriter(&buf)
	if writeHeader {
		if err := w.Write(Header); err != nil {
			return err
		}
	}
	for _, e := range entries {
		row := []string{
			e.CollectedAt.Format(timeLayout),
			e.PartnerName,
			e.PartnerCode,
			e.OrderNo,
			e.ItemCode,
			e.ItemName,
			e.TrackingNo,
			string(e.Result),
			e.Remark,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open ledger %s: %w", s.path, err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("append ledger %s: %w", s.path, err)
	}
	return f.Close()
}

// Stamp returns entries expanded from one mail item's records, all carrying
// the same collection time and the item's outcome.
func Stamp(item domain.MailItem, at time.Time) []domain.HistoryEntry {
	outcome := domain.SendOutcome{Status: domain.StatusSkipped, Reason: "not dispatched"}
	if item.Outcome != nil {
		outcome = *item.Outcome
	}
	entries := make([]domain.HistoryEntry, 0, len(item.Records))
	for _, r := range item.Records {
		entries = append(entries, domain.HistoryEntry{
			CollectedAt: at,
			PartnerName: r.PartnerName,
			PartnerCode: r.PartnerCode,
			OrderNo:     r.OrderNo,
			ItemCode:    r.ItemCode,
			ItemName:    r.ItemName,
			TrackingNo:  r.TrackingNo,
			Result:      outcome.Status,
			Remark:      outcome.Reason,
		})
	}
	return entries
}
