package cmd

import (
	"fmt"
	"strconv"

	"paylens/internal/config"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	input := cfg.General.InputCSV
	outputDir := cfg.General.OutputDir
	topStr := strconv.Itoa(cfg.Analysis.TopVendors)
	themeName := cfg.Appearance.Theme

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Ledger CSV path").
				Description("Default input file; a path on the command line overrides this.").
				Value(&input),
			huh.NewInput().
				Title("Output directory").
				Description("Where total_payments_by_vendor.csv and anomalous_payments.csv are written.").
				Value(&outputDir),
			huh.NewInput().
				Title("Vendors per report").
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}).
				Value(&topStr),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions("flexoki-dark", "catppuccin-mocha", "terminal")...).
				Value(&themeName),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.General.InputCSV = input
	cfg.General.OutputDir = outputDir
	cfg.Analysis.TopVendors, _ = strconv.Atoi(topStr)
	cfg.Appearance.Theme = themeName

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\n  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `paylens setup` anytime to reconfigure.")
	return nil
}
