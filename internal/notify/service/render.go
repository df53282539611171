package service

import (
	"fmt"
	"strings"

	"github.com/shipdesk/delaymail/internal/notify/domain"
)

// PartnerPlaceholder is the scalar placeholder, replaced verbatim wherever
// it occurs.
const PartnerPlaceholder = "{{partner_name}}"

// RowPlaceholder is the literal line the generated row table replaces. It
// must appear in the template exactly as written here; a template without it
// renders with no row table, which is a template-authoring concern rather
// than a pipeline error.
const RowPlaceholder = "| {{item_code}} | {{item_name}} | {{variant_name}} | {{order_no}} | {{tracking_no}} |"

// DefaultTemplate ships with the binary and mirrors the message the tool was
// built around. Operators can pass their own template file instead.
const DefaultTemplate = `**Subject: [Delivery Check] {{partner_name}} delayed shipment confirmation request**

Hello {{partner_name}} team,

We hope business is going well.
The orders below show no shipping movement or are running late, so we would like to confirm their status.

**[Requested action]**
Please reply with the **expected ship date** for each order.
If an order must be cancelled due to stock-out, please reply with **out of stock**.

**[Orders to confirm]**

| Item Code | Item Name | Variant | Order No. | Tracking No. |
| :--- | :--- | :--- | :--- | :--- |
| {{item_code}} | {{item_name}} | {{variant_name}} | {{order_no}} | {{tracking_no}} |

Thank you for your prompt confirmation.
Best regards.`

// RenderBody substitutes the row table first and the partner name second, in
// a single pass each. Rendering is pure text substitution; the template
// author gets no control structures beyond the one row expansion.
func RenderBody(tpl, partnerName string, records []domain.Record) string {
	rows := make([]string, 0, len(records))
	for _, r := range records {
		tracking := r.TrackingNo
		if tracking == "" {
			tracking = "-"
		}
		rows = append(rows, fmt.Sprintf("| %s | %s | %s | %s | %s |",
			r.ItemCode, r.ItemName, r.VariantName, r.OrderNo, tracking))
	}
	out := strings.ReplaceAll(tpl, RowPlaceholder, strings.Join(rows, "\n"))
	out = strings.ReplaceAll(out, PartnerPlaceholder, partnerName)
	return out
}
