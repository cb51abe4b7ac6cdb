package tui

import (
	"fmt"
	"strings"

	"paylens/internal/cli"
	"paylens/internal/tui/components"
	"paylens/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderVendorsTab(cw int) string {
	t := theme.Active
	halves := components.LayoutRow(cw, 2)

	lineStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var totals []string
	for i, vt := range a.totals {
		if i >= a.topN {
			break
		}
		totals = append(totals, fmt.Sprintf("%2d. %-22s %14s", i+1, clip(vt.Vendor, 21), cli.FormatMoney(vt.Total)))
	}

	var freq []string
	for i, vc := range a.freq {
		if i >= a.topN {
			break
		}
		freq = append(freq, fmt.Sprintf("%2d. %-22s %8s", i+1, clip(vc.Vendor, 21), cli.FormatNumber(int64(vc.Count))))
	}

	left := components.ContentCard(
		fmt.Sprintf("Top %d by Total Paid", len(totals)),
		lineStyle.Render(strings.Join(totals, "\n")),
		halves[0],
	)
	right := components.ContentCard(
		fmt.Sprintf("Top %d by Frequency", len(freq)),
		lineStyle.Render(strings.Join(freq, "\n")),
		halves[1],
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right) + "\n"
}
