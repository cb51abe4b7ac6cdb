package cmd

import (
	"fmt"

	"paylens/internal/cli"
	"paylens/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Descriptive statistics and missing-value report",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, args []string) error {
	s, err := resolveSettings(args)
	if err != nil {
		return err
	}
	result, err := loadLedger(s)
	if err != nil {
		return err
	}

	printSummary(result.Ledger)
	return nil
}

func printSummary(led *pipeline.Ledger) {
	sum := pipeline.Describe(led)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DATASET SUMMARY  %s rows", cli.FormatNumber(int64(sum.Rows)))))
	fmt.Println()

	var numericRows, otherRows, missingRows [][]string
	for _, col := range sum.Columns {
		missingRows = append(missingRows, []string{col.Name, cli.FormatNumber(int64(col.Missing))})

		if col.Numeric {
			numericRows = append(numericRows, []string{
				col.Name,
				cli.FormatNumber(int64(col.Count)),
				cli.FormatStat(col.Mean),
				cli.FormatStat(col.Std),
				cli.FormatStat(col.Min),
				cli.FormatStat(col.Q25),
				cli.FormatStat(col.Median),
				cli.FormatStat(col.Q75),
				cli.FormatStat(col.Max),
			})
		} else {
			otherRows = append(otherRows, []string{
				col.Name,
				cli.FormatNumber(int64(col.Count)),
				cli.FormatNumber(int64(col.Unique)),
				col.Top,
				cli.FormatNumber(int64(col.TopFreq)),
			})
		}
	}

	if len(numericRows) > 0 {
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Numeric columns",
			Headers: []string{"Column", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"},
			Rows:    numericRows,
		}))
		fmt.Println()
	}
	if len(otherRows) > 0 {
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Non-numeric columns",
			Headers: []string{"Column", "Count", "Unique", "Top", "Freq"},
			Rows:    otherRows,
		}))
		fmt.Println()
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Missing values per column",
		Headers: []string{"Column", "Missing"},
		Rows:    missingRows,
	}))
}
