package tui

import (
	"fmt"

	"paylens/internal/tui/components"
	"paylens/internal/tui/theme"
)

func (a App) renderTrendTab(cw int) string {
	t := theme.Active

	if len(a.monthly) == 0 {
		return "  No dated payments to chart.\n"
	}

	vals := make([]float64, len(a.monthly))
	labels := make([]string, len(a.monthly))
	for i, m := range a.monthly {
		vals[i] = m.Total
		labels[i] = m.Month.Format("Jan06")
	}

	chartH := a.height - 14
	if chartH < 6 {
		chartH = 6
	}
	if chartH > 20 {
		chartH = 20
	}

	title := fmt.Sprintf("Monthly Vendor Payments (%d months)", len(a.monthly))
	chart := components.BarChart(vals, labels, t.Blue, cw-6, chartH)
	return components.ContentCard(title, chart, cw) + "\n"
}
