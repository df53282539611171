package service

import (
	"sort"

	"github.com/rs/zerolog"
	"github.com/shipdesk/delaymail/internal/notify/domain"
	"github.com/shipdesk/delaymail/internal/roster"
	"github.com/shipdesk/delaymail/internal/table"
)

// Builder turns one export into per-partner mail items.
type Builder struct {
	log zerolog.Logger
}

func NewBuilder(log zerolog.Logger) *Builder {
	return &Builder{log: log}
}

// Build analyzes the export, resolves an address per partner group, and
// renders one mail item per group. Items with a resolved address come first
// (stable within each half) so operators review deliverable mail before the
// skips. Ambiguous roster matches are logged and resolved to the first
// candidate in roster order.
func (b *Builder) Build(t *table.Table, r *roster.Roster, tpl string) ([]domain.MailItem, domain.Report, error) {
	groups, report, err := Analyze(t)
	if err != nil {
		return nil, report, err
	}
	b.log.Info().
		Int("total_rows", report.TotalRows).
		Int("undecided_rows", report.UndecidedRows).
		Int("groups", report.GroupCount).
		Msg("analyzed export")

	items := make([]domain.MailItem, 0, len(groups))
	for _, g := range groups {
		res := r.Resolve(g.PartnerName, g.PartnerCode)
		if res.Status == roster.Ambiguous {
			b.log.Warn().
				Str("partner", g.PartnerName).
				Int("candidates", len(res.Candidates)).
				Msg("roster has duplicate matches; using first in roster order")
		}
		items = append(items, domain.MailItem{
			PartnerName: g.PartnerName,
			PartnerCode: g.PartnerCode,
			Resolution:  res,
			Body:        RenderBody(tpl, g.PartnerName, g.Records),
			Count:       len(g.Records),
			Records:     g.Records,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Resolution.HasAddress() && !items[j].Resolution.HasAddress()
	})

	b.log.Info().Int("items", len(items)).Msg("generated mail drafts")
	return items, report, nil
}
