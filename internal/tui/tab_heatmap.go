package tui

import (
	"fmt"

	"paylens/internal/tui/components"
)

func (a App) renderHeatmapTab(cw int) string {
	if a.crosstab == nil {
		return "  The ledger has no department column; heatmap unavailable.\n"
	}

	title := fmt.Sprintf("Department Spending — first %d vendors", len(a.crosstab.Vendors))
	return components.ContentCard(title, components.Heatmap(a.crosstab), cw) + "\n"
}
