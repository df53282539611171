package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shipdesk/delaymail/internal/roster"
)

// Column names of the order/shipment export.
const (
	ColPartnerCode = "partner_code"
	ColPartnerName = "partner_name"
	ColItemCode    = "item_code"
	ColItemName    = "item_name"
	ColVariantName = "variant_name"
	ColOrderNo     = "order_no"
	ColTrackingNo  = "tracking_no"
	ColDelayClass  = "delay_class"
)

// RequiredColumns lists every column the export must carry. Absence of any
// of them is a precondition failure, not a per-row skip.
func RequiredColumns() []string {
	return []string{
		ColPartnerCode,
		ColPartnerName,
		ColItemCode,
		ColItemName,
		ColVariantName,
		ColOrderNo,
		ColTrackingNo,
		ColDelayClass,
	}
}

// Record is one undecided row of the export, projected to the business
// columns. A row is undecided when its delay classification is empty or
// missing.
type Record struct {
	PartnerCode string
	PartnerName string
	ItemCode    string
	ItemName    string
	VariantName string
	OrderNo     string
	TrackingNo  string
}

// PartnerGroup holds all undecided records sharing one partner name, in
// original file order. The partner code comes from the first record and is
// not checked for uniqueness within the group.
type PartnerGroup struct {
	PartnerName string
	PartnerCode string
	Records     []Record
}

// MailItem is the per-partner message bundle built once per analysis run. It
// is not modified afterward except for the Outcome attached during dispatch.
type MailItem struct {
	PartnerName string
	PartnerCode string
	Resolution  roster.Resolution
	Body        string
	Count       int
	Records     []Record
	Outcome     *SendOutcome
}

type SendStatus string

const (
	StatusSuccess SendStatus = "Success"
	StatusFail    SendStatus = "Fail"
	StatusSkipped SendStatus = "Skipped"
)

// SendOutcome is the tagged per-item dispatch result. Reason carries the
// error text for Fail and the exclusion reason for Skipped.
type SendOutcome struct {
	Status SendStatus
	Reason string
}

// HistoryEntry is one audit ledger row, one per underlying Record of a
// dispatched MailItem. Never mutated once written.
type HistoryEntry struct {
	CollectedAt time.Time
	PartnerName string
	PartnerCode string
	OrderNo     string
	ItemCode    string
	ItemName    string
	TrackingNo  string
	Result      SendStatus
	Remark      string
}

// Report describes one analysis run: row totals before and after filtering
// and the number of partner groups produced.
type Report struct {
	TotalRows     int
	UndecidedRows int
	GroupCount    int
}

// Summary aggregates one dispatch run.
type Summary struct {
	RunID    uuid.UUID
	Sent     int
	Failed   int
	Skipped  int
	Outcomes map[string]SendOutcome // keyed by partner name
}
