package cmd

import (
	"fmt"

	"paylens/internal/cli"
	"paylens/internal/model"
	"paylens/internal/pipeline"

	"github.com/spf13/cobra"
)

var vendorsCmd = &cobra.Command{
	Use:   "vendors",
	Short: "Top vendors by total payments and by frequency",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runVendors,
}

func init() {
	rootCmd.AddCommand(vendorsCmd)
}

func runVendors(_ *cobra.Command, args []string) error {
	s, err := resolveSettings(args)
	if err != nil {
		return err
	}
	result, err := loadLedger(s)
	if err != nil {
		return err
	}
	led := result.Ledger

	printVendorTotals(pipeline.TotalsByVendor(led.Records), s.top)
	printFrequency(pipeline.PaymentFrequency(led.Records), s.top)
	return nil
}

func printVendorTotals(totals []model.VendorTotal, top int) {
	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TOP %d VENDORS BY TOTAL PAYMENTS", capAt(top, len(totals)))))
	fmt.Println()

	rows := make([][]string, 0, top)
	for i, vt := range totals {
		if i >= top {
			break
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			vt.Vendor,
			cli.FormatMoney(vt.Total),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"#", "Vendor", "Total Paid"},
		Rows:    rows,
	}))
	if len(totals) > top {
		fmt.Println(cli.RenderNote(fmt.Sprintf("%d more vendors in the export", len(totals)-top)))
	}
}

func printFrequency(freq []model.VendorCount, top int) {
	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TOP %d VENDORS BY PAYMENT FREQUENCY", capAt(top, len(freq)))))
	fmt.Println()

	rows := make([][]string, 0, top)
	for i, vc := range freq {
		if i >= top {
			break
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			vc.Vendor,
			cli.FormatNumber(int64(vc.Count)),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"#", "Vendor", "Payments"},
		Rows:    rows,
	}))
}

func capAt(limit, n int) int {
	if n < limit {
		return n
	}
	return limit
}
