package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"paylens/internal/model"
	"paylens/internal/pipeline"
	"paylens/internal/source"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return records
}

func TestWriteVendorTotals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "total_payments_by_vendor.csv")
	totals := []model.VendorTotal{
		{Vendor: "Acme Corp", Total: 300.5},
		{Vendor: "Globex", Total: 50},
	}

	if err := WriteVendorTotals(path, totals); err != nil {
		t.Fatalf("WriteVendorTotals: %v", err)
	}

	records := readCSV(t, path)
	if len(records) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(records))
	}
	if records[0][0] != "VENDOR" || records[0][1] != "TOTAL_PAID" {
		t.Errorf("header = %v", records[0])
	}
	if records[1][0] != "Acme Corp" || records[1][1] != "300.5" {
		t.Errorf("row 1 = %v", records[1])
	}
	if records[2][0] != "Globex" || records[2][1] != "50" {
		t.Errorf("row 2 = %v", records[2])
	}
}

func TestWriteVendorTotals_CreatesOutputDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "totals.csv")
	if err := WriteVendorTotals(path, nil); err != nil {
		t.Fatalf("WriteVendorTotals: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file not created: %v", err)
	}
}

func TestWriteAnomalies_FullRowSchema(t *testing.T) {
	raw := &source.Table{
		Columns: []string{"VENDOR", "CHKSUBTOT", "RUNDATE", "DEPARTMENT"},
		Rows: [][]string{
			{"Acme", "10", "2024-01-15", "Finance"},
			{"Globex", "9000", "2024-01-16", "Parks"},
			{"Initech", "12", "2024-01-17", "Finance"},
		},
	}
	led, err := pipeline.Clean(raw)
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	rep := pipeline.DetectAnomalies(led, 0.5)

	path := filepath.Join(t.TempDir(), "anomalous_payments.csv")
	if err := WriteAnomalies(path, led, rep); err != nil {
		t.Fatalf("WriteAnomalies: %v", err)
	}

	records := readCSV(t, path)
	if strings.Join(records[0], ",") != "VENDOR,CHKSUBTOT,RUNDATE,DEPARTMENT" {
		t.Errorf("header = %v, want full cleaned-row schema", records[0])
	}
	if len(records) != 2 {
		t.Fatalf("rows = %d, want header + 1 anomaly", len(records))
	}
	if records[1][0] != "Globex" || records[1][3] != "Parks" {
		t.Errorf("anomaly row = %v", records[1])
	}
}

func TestWriteAnomalies_NoAnomalies(t *testing.T) {
	raw := &source.Table{
		Columns: []string{"VENDOR", "CHKSUBTOT", "RUNDATE"},
		Rows:    [][]string{{"Acme", "10", "2024-01-15"}},
	}
	led, err := pipeline.Clean(raw)
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}

	path := filepath.Join(t.TempDir(), "anomalous_payments.csv")
	if err := WriteAnomalies(path, led, pipeline.AnomalyReport{}); err != nil {
		t.Fatalf("WriteAnomalies: %v", err)
	}

	records := readCSV(t, path)
	if len(records) != 1 {
		t.Errorf("rows = %d, want header only", len(records))
	}
}
