package cmd

import (
	"fmt"

	"paylens/internal/cli"
	"paylens/internal/pipeline"

	"github.com/spf13/cobra"
)

var anomaliesCmd = &cobra.Command{
	Use:   "anomalies",
	Short: "Payments above the anomaly percentile",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnomalies,
}

func init() {
	rootCmd.AddCommand(anomaliesCmd)
}

func runAnomalies(_ *cobra.Command, args []string) error {
	s, err := resolveSettings(args)
	if err != nil {
		return err
	}
	result, err := loadLedger(s)
	if err != nil {
		return err
	}

	rep := pipeline.DetectAnomalies(result.Ledger, s.percentile)
	printAnomalies(rep, s.top)
	return nil
}

func printAnomalies(rep pipeline.AnomalyReport, top int) {
	fmt.Println()
	fmt.Println(cli.RenderTitle("ANOMALOUS PAYMENTS"))
	fmt.Println()
	fmt.Printf("  Payments above %.0fth percentile (> %s): %s rows\n",
		rep.Percentile*100, cli.FormatMoney(rep.Threshold), cli.FormatNumber(int64(len(rep.Records))))

	if len(rep.Records) == 0 {
		return
	}
	fmt.Println()

	rows := make([][]string, 0, top)
	for i, p := range rep.Records {
		if i >= top {
			break
		}
		rows = append(rows, []string{
			p.RunDate.Format("2006-01-02"),
			p.Vendor,
			cli.FormatMoney(p.Amount),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Run Date", "Vendor", "Amount"},
		Rows:    rows,
	}))
	if len(rep.Records) > top {
		fmt.Println(cli.RenderNote(fmt.Sprintf("%d more rows in the export", len(rep.Records)-top)))
	}
}
