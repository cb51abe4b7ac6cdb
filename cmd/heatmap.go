package cmd

import (
	"fmt"

	"paylens/internal/cli"
	"paylens/internal/pipeline"
	"paylens/internal/tui/components"
	"paylens/internal/tui/theme"

	"github.com/spf13/cobra"
)

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Vendor x department spending heatmap",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHeatmap,
}

func init() {
	rootCmd.AddCommand(heatmapCmd)
}

func runHeatmap(_ *cobra.Command, args []string) error {
	s, err := resolveSettings(args)
	if err != nil {
		return err
	}
	result, err := loadLedger(s)
	if err != nil {
		return err
	}

	printHeatmap(result.Ledger, s, true)
	return nil
}

// printHeatmap renders the department heatmap. When the ledger has no
// department column it is silently skipped unless verbose is set.
func printHeatmap(led *pipeline.Ledger, s settings, verbose bool) {
	ct := pipeline.DepartmentCrosstab(led, s.top)
	if ct == nil {
		if verbose {
			fmt.Println("\n  The ledger has no department column; nothing to render.")
		}
		return
	}
	theme.SetActive(s.theme)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TOP %d VENDORS BY DEPARTMENT SPENDING", len(ct.Vendors))))
	fmt.Println()
	fmt.Println(components.Heatmap(ct))
}
