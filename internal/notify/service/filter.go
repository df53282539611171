package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shipdesk/delaymail/internal/notify/domain"
	"github.com/shipdesk/delaymail/internal/table"
)

// Analyze validates the export schema, filters to undecided rows, and
// partitions them into partner groups. Missing required columns abort the
// run with every absent name listed. Groups come back sorted by partner name
// ascending; rows inside a group keep file order. Zero undecided rows is not
// an error: the result is simply no groups.
func Analyze(t *table.Table) ([]domain.PartnerGroup, domain.Report, error) {
	var missing []string
	for _, col := range domain.RequiredColumns() {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, domain.Report{}, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	report := domain.Report{TotalRows: t.Len()}

	byName := map[string][]domain.Record{}
	var names []string
	for i := 0; i < t.Len(); i++ {
		if t.Value(i, domain.ColDelayClass) != "" {
			continue
		}
		rec := domain.Record{
			PartnerCode: t.Value(i, domain.ColPartnerCode),
			PartnerName: t.Value(i, domain.ColPartnerName),
			ItemCode:    t.Value(i, domain.ColItemCode),
			ItemName:    t.Value(i, domain.ColItemName),
			VariantName: t.Value(i, domain.ColVariantName),
			OrderNo:     t.Value(i, domain.ColOrderNo),
			TrackingNo:  t.Value(i, domain.ColTrackingNo),
		}
		if _, ok := byName[rec.PartnerName]; !ok {
			names = append(names, rec.PartnerName)
		}
		byName[rec.PartnerName] = append(byName[rec.PartnerName], rec)
		report.UndecidedRows++
	}
	sort.Strings(names)

	groups := make([]domain.PartnerGroup, 0, len(names))
	for _, n := range names {
		recs := byName[n]
		groups = append(groups, domain.PartnerGroup{
			PartnerName: n,
			PartnerCode: recs[0].PartnerCode,
			Records:     recs,
		})
	}
	report.GroupCount = len(groups)
	return groups, report, nil
}
