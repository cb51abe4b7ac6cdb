// Package cmd implements the paylens CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"paylens/internal/cli"
	"paylens/internal/config"
	"paylens/internal/exporter"
	"paylens/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagInput     string
	flagOutputDir string
	flagTop       int
	flagNoCache   bool
	flagQuiet     bool
)

var rootCmd = &cobra.Command{
	Use:   "paylens [ledger.csv]",
	Short: "Vendor Payment Ledger Analyzer",
	Long:  "Analyze a vendor-payment ledger CSV: descriptive statistics, vendor totals, payment frequency, anomaly detection, and charts.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalysis,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagInput, "input", "i", "", "Ledger CSV path (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagOutputDir, "output-dir", "o", "", "Directory for exported CSV files")
	rootCmd.PersistentFlags().IntVarP(&flagTop, "top", "t", 0, "How many vendors to print (default 20)")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip the sqlite cache, reparse the ledger")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// settings is the merged view of config file and flags. Flags win; a
// positional argument wins over the --input flag.
type settings struct {
	input      string
	outputDir  string
	top        int
	percentile float64
	theme      string
	cachePath  string
}

func resolveSettings(args []string) (settings, error) {
	cfg, err := config.Load()
	if err != nil {
		return settings{}, err
	}

	s := settings{
		input:      cfg.General.InputCSV,
		outputDir:  cfg.General.OutputDir,
		top:        cfg.Analysis.TopVendors,
		percentile: cfg.Analysis.AnomalyPercentile,
		theme:      cfg.Appearance.Theme,
		cachePath:  config.CachePath(cfg),
	}
	if flagInput != "" {
		s.input = flagInput
	}
	if len(args) > 0 {
		s.input = args[0]
	}
	if flagOutputDir != "" {
		s.outputDir = flagOutputDir
	}
	if flagTop > 0 {
		s.top = flagTop
	}
	if s.top <= 0 {
		s.top = 20
	}
	if s.percentile <= 0 || s.percentile >= 1 {
		s.percentile = 0.99
	}

	if s.input == "" {
		return s, fmt.Errorf("no ledger file: pass a path, use --input, or run `paylens setup`")
	}

	return s, nil
}

// loadLedger is the shared data loading path used by all commands.
func loadLedger(s settings) (*pipeline.LoadResult, error) {
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Reading %s...\n", s.input)
	}

	result, err := pipeline.Load(s.input, pipeline.LoadOptions{
		CachePath: s.cachePath,
		NoCache:   flagNoCache,
	})
	if err != nil {
		return nil, err
	}

	if !flagQuiet {
		led := result.Ledger
		src := "parsed"
		if result.FromCache {
			src = "cache"
		}
		fmt.Fprintf(os.Stderr, "  %d payments (%s), %d invalid rows dropped\n",
			len(led.Records), src, led.Dropped)
	}

	return result, nil
}

// runAnalysis is the full pipeline: summary, totals, trend, anomalies,
// frequency, heatmap, then the two CSV exports.
func runAnalysis(_ *cobra.Command, args []string) error {
	s, err := resolveSettings(args)
	if err != nil {
		return err
	}

	result, err := loadLedger(s)
	if err != nil {
		return err
	}
	led := result.Ledger

	if len(led.Records) == 0 {
		fmt.Println("\n  No valid payments in the ledger.")
		return nil
	}
	if led.Dropped > 0 {
		fmt.Println()
		fmt.Println(cli.RenderWarn(fmt.Sprintf("Dropped %d rows with missing or unparseable values", led.Dropped)))
	}

	printSummary(led)

	totals := pipeline.TotalsByVendor(led.Records)
	printVendorTotals(totals, s.top)

	printTrend(led, s)

	rep := pipeline.DetectAnomalies(led, s.percentile)
	printAnomalies(rep, s.top)

	freq := pipeline.PaymentFrequency(led.Records)
	printFrequency(freq, s.top)

	printHeatmap(led, s, false)

	totalsPath := filepath.Join(s.outputDir, "total_payments_by_vendor.csv")
	if err := exporter.WriteVendorTotals(totalsPath, totals); err != nil {
		return err
	}
	anomaliesPath := filepath.Join(s.outputDir, "anomalous_payments.csv")
	if err := exporter.WriteAnomalies(anomaliesPath, led, rep); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "\n  Wrote %s and %s\n", totalsPath, anomaliesPath)
	}

	return nil
}
