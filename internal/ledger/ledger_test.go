package ledger

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipdesk/delaymail/internal/notify/domain"
)

var at = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func entry(order string, status domain.SendStatus, remark string) domain.HistoryEntry {
	return domain.HistoryEntry{
		CollectedAt: at,
		PartnerName: "Acme",
		PartnerCode: "100",
		OrderNo:     order,
		ItemCode:    "I1",
		ItemName:    "Widget",
		TrackingNo:  "T-1",
		Result:      status,
		Remark:      remark,
	}
}

func read(t *testing.T, path string) (string, [][]string) {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	body := strings.TrimPrefix(string(raw), "\ufeff")
	rows, err := csv.NewReader(strings.NewReader(body)).ReadAll()
	require.NoError(t, err)
	return string(raw), rows
}

func TestAppend_CreatesWithBOMAndHeader(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "history.csv"))
	require.NoError(t, s.Append([]domain.HistoryEntry{entry("O-1", domain.StatusSuccess, "")}))

	raw, rows := read(t, s.Path())
	assert.True(t, strings.HasPrefix(raw, "\ufeff"))
	require.Len(t, rows, 2)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{"2025-06-01 09:30:00", "Acme", "100", "O-1", "I1", "Widget", "T-1", "Success", ""}, rows[1])
}

func TestAppend_ExistingFileGetsRowsOnly(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "history.csv"))
	require.NoError(t, s.Append([]domain.HistoryEntry{entry("O-1", domain.StatusSuccess, "")}))
	require.NoError(t, s.Append([]domain.HistoryEntry{
		entry("O-2", domain.StatusFail, "timeout"),
		entry("O-3", domain.StatusSkipped, "No Email Address"),
	}))

	raw, rows := read(t, s.Path())
	assert.Equal(t, 1, strings.Count(raw, "\ufeff"), "BOM only on creation")
	require.Len(t, rows, 4)
	assert.Equal(t, "Fail", rows[2][7])
	assert.Equal(t, "timeout", rows[2][8])
	assert.Equal(t, "Skipped", rows[3][7])
}

func TestAppend_EmptyBatchTouchesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	s := NewStore(path)
	require.NoError(t, s.Append(nil))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "empty batch must not create the file")
}

func TestStamp_ExpandsRecordsWithOutcome(t *testing.T) {
	out := domain.SendOutcome{Status: domain.StatusFail, Reason: "450 mailbox busy"}
	item := domain.MailItem{
		PartnerName: "Acme",
		PartnerCode: "100",
		Outcome:     &out,
		Records: []domain.Record{
			{PartnerName: "Acme", PartnerCode: "100", OrderNo: "O-1"},
			{PartnerName: "Acme", PartnerCode: "100", OrderNo: "O-2"},
		},
	}
	entries := Stamp(item, at)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, at, e.CollectedAt)
		assert.Equal(t, domain.StatusFail, e.Result)
		assert.Equal(t, "450 mailbox busy", e.Remark)
	}
	assert.Equal(t, "O-1", entries[0].OrderNo)
	assert.Equal(t, "O-2", entries[1].OrderNo)
}
