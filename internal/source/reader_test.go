package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeLedger creates a temp CSV file and returns its path.
func writeLedger(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRead_ParsesHeaderAndRows(t *testing.T) {
	path := writeLedger(t,
		"VENDOR,CHKSUBTOT,RUNDATE",
		"Acme,100.50,2024-01-15",
		"Globex,200,2024-02-01",
	)

	tbl, err := Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tbl.Columns) != 3 {
		t.Fatalf("Columns = %d, want 3", len(tbl.Columns))
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("Rows = %d, want 2", len(tbl.Rows))
	}
	if tbl.Rows[0][0] != "Acme" || tbl.Rows[1][1] != "200" {
		t.Errorf("unexpected cells: %v", tbl.Rows)
	}
}

func TestRead_MissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRead_MalformedCSV(t *testing.T) {
	path := writeLedger(t,
		"VENDOR,CHKSUBTOT",
		`Acme,"unterminated`,
	)
	if _, err := Read(path); err == nil {
		t.Fatal("expected error for malformed CSV")
	}
}

func TestRead_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(path); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestNormalizeColumns(t *testing.T) {
	tbl := &Table{Columns: []string{" VENDOR ", "Run Date", "CHK SUB TOT"}}
	tbl.NormalizeColumns()

	want := []string{"VENDOR", "Run_Date", "CHK_SUB_TOT"}
	for i, c := range tbl.Columns {
		if c != want[i] {
			t.Errorf("Columns[%d] = %q, want %q", i, c, want[i])
		}
	}
}

func TestTable_IndexAndCell(t *testing.T) {
	tbl := &Table{
		Columns: []string{"A", "B"},
		Rows:    [][]string{{"1", "2"}},
	}

	if idx := tbl.Index("B"); idx != 1 {
		t.Errorf("Index(B) = %d, want 1", idx)
	}
	if idx := tbl.Index("C"); idx != -1 {
		t.Errorf("Index(C) = %d, want -1", idx)
	}
	if got := tbl.Cell(0, 1); got != "2" {
		t.Errorf("Cell(0,1) = %q, want 2", got)
	}
	if got := tbl.Cell(0, -1); got != "" {
		t.Errorf("Cell(0,-1) = %q, want empty", got)
	}
}
