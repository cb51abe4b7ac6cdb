package tui

import (
	"fmt"
	"strings"

	"paylens/internal/cli"
	"paylens/internal/tui/components"
	"paylens/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	led := a.ledger
	var b strings.Builder

	var totalPaid float64
	for _, p := range led.Records {
		totalPaid += p.Amount
	}

	cards := []struct{ Label, Value, Detail string }{
		{"Payments", cli.FormatNumber(int64(len(led.Records))), fmt.Sprintf("of %s raw rows", cli.FormatNumber(int64(led.RawRows)))},
		{"Total Paid", cli.FormatMoney(totalPaid), ""},
		{"Vendors", cli.FormatNumber(int64(len(a.totals))), ""},
		{"Dropped", cli.FormatNumber(int64(led.Dropped)), "invalid rows"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Monthly sparkline
	if len(a.monthly) > 1 {
		vals := make([]float64, len(a.monthly))
		for i, m := range a.monthly {
			vals[i] = m.Total
		}
		span := fmt.Sprintf("%s — %s",
			a.monthly[0].Month.Format("Jan 2006"),
			a.monthly[len(a.monthly)-1].Month.Format("Jan 2006"))
		b.WriteString(components.ContentCard(
			"Monthly Payments  "+span,
			components.Sparkline(vals, t.Blue),
			cw,
		))
		b.WriteString("\n")
	}

	// Describe report, numeric columns
	var lines []string
	for _, col := range a.summary.Columns {
		if !col.Numeric {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-14s n=%-7d mean=%-12s std=%-12s min=%-10s max=%s",
			clip(col.Name, 13),
			col.Count,
			cli.FormatStat(col.Mean),
			cli.FormatStat(col.Std),
			cli.FormatStat(col.Min),
			cli.FormatStat(col.Max)))
	}
	if len(lines) > 0 {
		body := lipgloss.NewStyle().Foreground(t.TextPrimary).Render(strings.Join(lines, "\n"))
		b.WriteString(components.ContentCard("Numeric Columns", body, cw))
		b.WriteString("\n")
	}

	return b.String()
}

func clip(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return s[:maxLen]
	}
	return s[:maxLen-1] + "…"
}
