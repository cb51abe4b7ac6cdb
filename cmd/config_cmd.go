package cmd

import (
	"fmt"

	"paylens/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.InputCSV != "" {
		fmt.Printf("    Input CSV:  %s\n", cfg.General.InputCSV)
	} else {
		fmt.Println("    Input CSV:  not configured")
	}
	fmt.Printf("    Output dir: %s\n", cfg.General.OutputDir)
	fmt.Printf("    Cache:      %s\n", config.CachePath(cfg))
	fmt.Println()

	fmt.Println("  [Analysis]")
	fmt.Printf("    Top vendors:        %d\n", cfg.Analysis.TopVendors)
	fmt.Printf("    Anomaly percentile: %.2f\n", cfg.Analysis.AnomalyPercentile)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)

	return nil
}
