package cmd

import (
	"fmt"

	"paylens/internal/cli"
	"paylens/internal/pipeline"
	"paylens/internal/tui/components"
	"paylens/internal/tui/theme"

	"github.com/spf13/cobra"
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Monthly payment totals as a chart",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTrend,
}

func init() {
	rootCmd.AddCommand(trendCmd)
}

func runTrend(_ *cobra.Command, args []string) error {
	s, err := resolveSettings(args)
	if err != nil {
		return err
	}
	result, err := loadLedger(s)
	if err != nil {
		return err
	}

	printTrend(result.Ledger, s)
	return nil
}

func printTrend(led *pipeline.Ledger, s settings) {
	monthly := pipeline.MonthlyTotals(led.Records)
	if len(monthly) == 0 {
		return
	}
	theme.SetActive(s.theme)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MONTHLY VENDOR PAYMENTS  %d months", len(monthly))))
	fmt.Println()

	vals := make([]float64, len(monthly))
	labels := make([]string, len(monthly))
	for i, m := range monthly {
		vals[i] = m.Total
		labels[i] = m.Month.Format("Jan06")
	}

	fmt.Println(components.BarChart(vals, labels, theme.Active.Blue, 110, 14))
	fmt.Println()
}
