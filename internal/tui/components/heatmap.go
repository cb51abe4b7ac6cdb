package components

import (
	"fmt"
	"strings"

	"paylens/internal/cli"
	"paylens/internal/model"
	"paylens/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const (
	heatmapCellW   = 9
	heatmapVendorW = 18
)

// Heatmap renders an annotated vendor x department grid. Cell backgrounds
// scale with the summed amount; every cell shows its value.
func Heatmap(ct *model.Crosstab) string {
	if ct == nil || len(ct.Vendors) == 0 {
		return ""
	}
	t := theme.Active

	// Background ramp from cold to hot.
	ramp := []lipgloss.Color{t.Surface, t.AccentDim, t.Cyan, t.Accent, t.AccentBright}
	maxVal := ct.Max()

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	vendorStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	zeroStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder

	// Header row: department names.
	b.WriteString(strings.Repeat(" ", heatmapVendorW+1))
	for _, d := range ct.Departments {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%*s", heatmapCellW, clip(d, heatmapCellW-1))))
	}
	b.WriteString("\n")

	for vi, vendor := range ct.Vendors {
		b.WriteString(vendorStyle.Render(fmt.Sprintf("%-*s", heatmapVendorW, clip(vendor, heatmapVendorW-1))))
		b.WriteString(" ")
		for di := range ct.Departments {
			v := ct.Values[vi][di]
			text := fmt.Sprintf(" %*s ", heatmapCellW-2, cli.FormatCompact(v))
			if v == 0 || maxVal == 0 {
				b.WriteString(zeroStyle.Render(text))
				continue
			}
			bucket := int(v / maxVal * float64(len(ramp)-1))
			if bucket >= len(ramp) {
				bucket = len(ramp) - 1
			}
			fg := t.TextPrimary
			if bucket >= 2 {
				// Bright backgrounds need dark text.
				fg = t.Background
			}
			b.WriteString(lipgloss.NewStyle().Background(ramp[bucket]).Foreground(fg).Render(text))
		}
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
