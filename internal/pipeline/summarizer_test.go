package pipeline

import (
	"math"
	"testing"
)

func TestDescribe_NumericColumn(t *testing.T) {
	led := mustClean(t, rawTable(
		[]string{"VENDOR", "CHKSUBTOT", "RUNDATE"},
		[]string{"Acme", "1", "2024-01-01"},
		[]string{"Acme", "2", "2024-01-02"},
		[]string{"Acme", "3", "2024-01-03"},
		[]string{"Acme", "4", "2024-01-04"},
	))

	sum := Describe(led)
	if sum.Rows != 4 {
		t.Fatalf("Rows = %d, want 4", sum.Rows)
	}

	var amount *struct {
		mean, std, min, q25, median, q75, max float64
	}
	for _, col := range sum.Columns {
		if col.Name != "CHKSUBTOT" {
			continue
		}
		if !col.Numeric {
			t.Fatal("CHKSUBTOT not classified numeric")
		}
		if col.Count != 4 || col.Missing != 0 {
			t.Errorf("Count = %d, Missing = %d", col.Count, col.Missing)
		}
		amount = &struct {
			mean, std, min, q25, median, q75, max float64
		}{col.Mean, col.Std, col.Min, col.Q25, col.Median, col.Q75, col.Max}
	}
	if amount == nil {
		t.Fatal("no CHKSUBTOT column in summary")
	}

	approx := func(name string, got, want float64) {
		t.Helper()
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
	approx("Mean", amount.mean, 2.5)
	approx("Std", amount.std, 1.2909944487) // sample standard deviation
	approx("Min", amount.min, 1)
	approx("Q25", amount.q25, 1.75)
	approx("Median", amount.median, 2.5)
	approx("Q75", amount.q75, 3.25)
	approx("Max", amount.max, 4)
}

func TestDescribe_CategoricalColumn(t *testing.T) {
	led := mustClean(t, rawTable(
		[]string{"VENDOR", "CHKSUBTOT", "RUNDATE"},
		[]string{"Acme", "10", "2024-01-01"},
		[]string{"Acme", "20", "2024-01-02"},
		[]string{"Globex", "30", "2024-01-03"},
	))

	sum := Describe(led)
	for _, col := range sum.Columns {
		if col.Name != "VENDOR" {
			continue
		}
		if col.Numeric {
			t.Fatal("VENDOR classified numeric")
		}
		if col.Unique != 2 {
			t.Errorf("Unique = %d, want 2", col.Unique)
		}
		if col.Top != "Acme" || col.TopFreq != 2 {
			t.Errorf("Top = %q (%d), want Acme (2)", col.Top, col.TopFreq)
		}
		return
	}
	t.Fatal("no VENDOR column in summary")
}

func TestDescribe_CountsMissing(t *testing.T) {
	led := mustClean(t, rawTable(
		[]string{"VENDOR", "CHKSUBTOT", "RUNDATE", "DEPARTMENT"},
		[]string{"Acme", "10", "2024-01-01", "Finance"},
		[]string{"Globex", "20", "2024-01-02", ""},
		[]string{"Initech", "30", "2024-01-03", "  "},
	))

	sum := Describe(led)
	for _, col := range sum.Columns {
		if col.Name != "DEPARTMENT" {
			continue
		}
		if col.Missing != 2 {
			t.Errorf("Missing = %d, want 2", col.Missing)
		}
		if col.Count != 1 {
			t.Errorf("Count = %d, want 1", col.Count)
		}
		return
	}
	t.Fatal("no DEPARTMENT column in summary")
}

func TestDescribe_CategoricalTieBreak(t *testing.T) {
	led := mustClean(t, rawTable(
		[]string{"VENDOR", "CHKSUBTOT", "RUNDATE"},
		[]string{"Zeta", "10", "2024-01-01"},
		[]string{"Alpha", "20", "2024-01-02"},
	))

	sum := Describe(led)
	for _, col := range sum.Columns {
		if col.Name == "VENDOR" && col.Top != "Alpha" {
			t.Errorf("Top = %q, want lexicographic tie-break Alpha", col.Top)
		}
	}
}
