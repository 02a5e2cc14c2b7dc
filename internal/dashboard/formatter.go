package dashboard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatSnapshot renders the dashboard snapshot as a text report.
func FormatSnapshot(snap *Snapshot) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Global Market Watch | %s | period %s\n",
		snap.Taken.Format("2006-01-02 15:04:05"), snap.Period))

	if !snap.Available {
		b.WriteString("\nmarket data unavailable - try refreshing\n")
		return b.String()
	}

	for _, cat := range snap.Categories {
		b.WriteString(fmt.Sprintf("\n== %s ==\n", cat.Name))
		for _, inst := range cat.Instruments {
			if !inst.Available {
				b.WriteString(fmt.Sprintf("  %-22s data N/A\n", inst.Label))
				continue
			}
			m := inst.Metrics
			b.WriteString(fmt.Sprintf("  %-22s %14s  %+.2f (%+.2f%%)\n",
				inst.Label, humanize.CommafWithDigits(m.Price, 2), m.Delta, m.DeltaPct))
		}
	}

	if len(snap.Comparison) > 0 {
		b.WriteString(fmt.Sprintf("\n== Relative performance (%s) ==\n", snap.Period))
		type perf struct {
			symbol string
			ret    float64
		}
		perfs := make([]perf, 0, len(snap.Comparison))
		for _, rs := range snap.Comparison {
			if len(rs.Points) == 0 {
				continue
			}
			perfs = append(perfs, perf{rs.Symbol, rs.Points[len(rs.Points)-1].Value})
		}
		sort.Slice(perfs, func(i, j int) bool { return perfs[i].ret > perfs[j].ret })
		for _, p := range perfs {
			b.WriteString(fmt.Sprintf("  %-12s %+.2f%%\n", p.symbol, p.ret))
		}
	}

	if snap.Portfolio.Available {
		idx := snap.Portfolio.Index
		last := idx.Points[len(idx.Points)-1]
		b.WriteString(fmt.Sprintf("\n== Equal-weight portfolio (%d constituents) ==\n",
			snap.Portfolio.Constituents))
		b.WriteString(fmt.Sprintf("  index %.2f | total return %+.2f%%\n",
			last.Value, idx.TotalReturn))
	} else {
		b.WriteString("\n== Equal-weight portfolio ==\n  no data\n")
	}

	return b.String()
}
