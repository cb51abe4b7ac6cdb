// Package exporter writes the two analysis output files.
package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"paylens/internal/model"
	"paylens/internal/pipeline"

	"github.com/gocarina/gocsv"
)

// VendorTotalRow is the struct-tagged shape of total_payments_by_vendor.csv.
type VendorTotalRow struct {
	Vendor    string  `csv:"VENDOR"`
	TotalPaid float64 `csv:"TOTAL_PAID"`
}

// WriteVendorTotals writes the full vendor-totals mapping, one row per
// vendor, in the order given (descending total).
func WriteVendorTotals(path string, totals []model.VendorTotal) error {
	rows := make([]VendorTotalRow, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, VendorTotalRow{Vendor: t.Vendor, TotalPaid: t.Total})
	}

	f, err := create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("writing vendor totals: %w", err)
	}
	return nil
}

// WriteAnomalies writes the flagged records with the full cleaned-row
// schema: every column of the cleaned table, not just the typed fields.
func WriteAnomalies(path string, led *pipeline.Ledger, rep pipeline.AnomalyReport) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(led.Table.Columns); err != nil {
		return fmt.Errorf("writing anomaly header: %w", err)
	}
	for _, p := range rep.Records {
		if err := w.Write(led.Table.Rows[p.Row]); err != nil {
			return fmt.Errorf("writing anomaly row: %w", err)
		}
	}
	return w.Error()
}

func create(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	return f, nil
}
