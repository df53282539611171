package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shipdesk/delaymail/internal/notify/domain"
)

var renderRecords = []domain.Record{
	{ItemCode: "I1", ItemName: "Widget", VariantName: "Red", OrderNo: "O-1", TrackingNo: "T-1"},
	{ItemCode: "I2", ItemName: "Widget", VariantName: "Blue", OrderNo: "O-2", TrackingNo: ""},
}

func TestRenderBody_ExpandsRowsAndName(t *testing.T) {
	tpl := "Hello {{partner_name}},\n\n" + RowPlaceholder + "\n\nBye {{partner_name}}"
	out := RenderBody(tpl, "Acme", renderRecords)

	assert.Equal(t, 2, strings.Count(out, "Acme"), "every scalar placeholder is replaced")
	assert.Contains(t, out, "| I1 | Widget | Red | O-1 | T-1 |")
	assert.Contains(t, out, "| I2 | Widget | Blue | O-2 | - |", "empty tracking number renders as dash")
	assert.NotContains(t, out, "{{")
}

func TestRenderBody_MissingRowPlaceholderOmitsTableSilently(t *testing.T) {
	tpl := "Hello {{partner_name}}, no table here."
	out := RenderBody(tpl, "Acme", renderRecords)
	assert.Equal(t, "Hello Acme, no table here.", out)
}

func TestRenderBody_AlteredPlaceholderLineDoesNotMatch(t *testing.T) {
	tpl := "| {{item_code}} | {{item_name}} | {{order_no}} |"
	out := RenderBody(tpl, "Acme", renderRecords)
	// not the exact five-column literal, so it passes through untouched
	assert.Equal(t, tpl, out)
}

func TestRenderBody_NoRecordsLeavesEmptyTableSection(t *testing.T) {
	out := RenderBody(RowPlaceholder, "Acme", nil)
	assert.Equal(t, "", out)
}

func TestDefaultTemplate_ContainsContract(t *testing.T) {
	assert.Contains(t, DefaultTemplate, PartnerPlaceholder)
	assert.Equal(t, 1, strings.Count(DefaultTemplate, RowPlaceholder))
}
