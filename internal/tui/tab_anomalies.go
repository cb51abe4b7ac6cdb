package tui

import (
	"fmt"
	"strings"

	"paylens/internal/cli"
	"paylens/internal/tui/components"
	"paylens/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// maxAnomalyRows caps the list so the tab stays scannable.
const maxAnomalyRows = 25

func (a App) renderAnomaliesTab(cw int) string {
	t := theme.Active
	rep := a.anomalies
	var b strings.Builder

	cards := []struct{ Label, Value, Detail string }{
		{"Threshold", cli.FormatMoney(rep.Threshold), fmt.Sprintf("%.0fth percentile", rep.Percentile*100)},
		{"Flagged", cli.FormatNumber(int64(len(rep.Records))), "payments above threshold"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	if len(rep.Records) == 0 {
		b.WriteString("  No payments above the threshold.\n")
		return b.String()
	}

	warn := lipgloss.NewStyle().Foreground(t.Orange)
	var lines []string
	for i, p := range rep.Records {
		if i >= maxAnomalyRows {
			lines = append(lines, fmt.Sprintf("    … %d more", len(rep.Records)-maxAnomalyRows))
			break
		}
		lines = append(lines, fmt.Sprintf("%s  %-24s %14s",
			p.RunDate.Format("2006-01-02"), clip(p.Vendor, 23), warn.Render(cli.FormatMoney(p.Amount))))
	}

	body := lipgloss.NewStyle().Foreground(t.TextPrimary).Render(strings.Join(lines, "\n"))
	b.WriteString(components.ContentCard("Anomalous Payments", body, cw))
	b.WriteString("\n")

	return b.String()
}
