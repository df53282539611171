// Package roster maps partner identity to a contact address. Lookup prefers
// an exact partner-name match and falls back to a normalized partner code, so
// exports that carry codes as floats ("1010.0") still resolve against rosters
// keyed by plain codes ("1010").
package roster

import (
	"fmt"
	"strings"

	"github.com/shipdesk/delaymail/internal/table"
)

// Roster column names.
const (
	ColPartnerName = "partner_name"
	ColPartnerCode = "partner_code"
	ColEmail       = "email"
)

type Entry struct {
	PartnerName string
	PartnerCode string
	Address     string
}

type Roster struct {
	entries []Entry
}

func New(entries []Entry) *Roster {
	return &Roster{entries: entries}
}

// FromTable builds a Roster from a loaded row/column table. All three roster
// columns must be present; missing ones are reported together.
func FromTable(t *table.Table) (*Roster, error) {
	var missing []string
	for _, col := range []string{ColPartnerName, ColPartnerCode, ColEmail} {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("roster is missing required columns: %s", strings.Join(missing, ", "))
	}

	entries := make([]Entry, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		entries = append(entries, Entry{
			PartnerName: t.Value(i, ColPartnerName),
			PartnerCode: t.Value(i, ColPartnerCode),
			Address:     t.Value(i, ColEmail),
		})
	}
	return New(entries), nil
}

func (r *Roster) Len() int { return len(r.entries) }

// Resolve looks up the contact address for one partner. Name matching is
// exact and case-sensitive; only when no name matches and the code is
// non-empty does the normalized-code comparison run. Candidates keep roster
// order, and the effective address is always the first candidate. Resolve is
// read-only and idempotent.
func (r *Roster) Resolve(name, code string) Resolution {
	var candidates []string
	for _, e := range r.entries {
		if e.PartnerName == name {
			candidates = append(candidates, e.Address)
		}
	}

	if len(candidates) == 0 && strings.TrimSpace(code) != "" {
		norm := NormalizeCode(code)
		for _, e := range r.entries {
			if NormalizeCode(e.PartnerCode) == norm {
				candidates = append(candidates, e.Address)
			}
		}
	}

	switch len(candidates) {
	case 0:
		return Resolution{Status: NotFound}
	case 1:
		return Resolution{Status: Resolved, Candidates: candidates}
	default:
		return Resolution{Status: Ambiguous, Candidates: candidates}
	}
}

// NormalizeCode strips a float-style fractional suffix from a partner code:
// "1010.0" and "1010" compare equal. Codes arrive this way when the export
// tool types the column as numeric.
func NormalizeCode(code string) string {
	code = strings.TrimSpace(code)
	if i := strings.IndexByte(code, '.'); i >= 0 {
		return code[:i]
	}
	return code
}
