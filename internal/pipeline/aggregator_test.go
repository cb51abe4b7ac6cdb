package pipeline

import (
	"testing"
	"time"

	"paylens/internal/model"
)

func payment(vendor string, amount float64, date string) model.Payment {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return model.Payment{Vendor: vendor, Amount: amount, RunDate: d}
}

func TestTotalsByVendor_SumsAndSorts(t *testing.T) {
	records := []model.Payment{
		payment("Acme", 100, "2024-01-15"),
		payment("Globex", 50, "2024-01-16"),
		payment("Acme", 200, "2024-02-01"),
	}

	totals := TotalsByVendor(records)

	if len(totals) != 2 {
		t.Fatalf("len = %d, want 2", len(totals))
	}
	if totals[0].Vendor != "Acme" || totals[0].Total != 300 {
		t.Errorf("totals[0] = %+v, want Acme 300", totals[0])
	}
	if totals[1].Vendor != "Globex" || totals[1].Total != 50 {
		t.Errorf("totals[1] = %+v, want Globex 50", totals[1])
	}
}

func TestTotalsByVendor_SumLaw(t *testing.T) {
	records := []model.Payment{
		payment("A", 10, "2024-01-01"),
		payment("B", 20, "2024-01-02"),
		payment("C", 30, "2024-01-03"),
		payment("A", 40, "2024-01-04"),
	}

	var want, got float64
	for _, p := range records {
		want += p.Amount
	}
	for _, vt := range TotalsByVendor(records) {
		got += vt.Total
	}
	if got != want {
		t.Errorf("sum of totals = %v, want %v", got, want)
	}
}

func TestTotalsByVendor_TieBreaksByName(t *testing.T) {
	records := []model.Payment{
		payment("Zeta", 100, "2024-01-01"),
		payment("Alpha", 100, "2024-01-02"),
	}

	totals := TotalsByVendor(records)
	if totals[0].Vendor != "Alpha" || totals[1].Vendor != "Zeta" {
		t.Errorf("tie order = %s, %s; want Alpha, Zeta", totals[0].Vendor, totals[1].Vendor)
	}
}

func TestPaymentFrequency(t *testing.T) {
	records := []model.Payment{
		payment("Acme", 100, "2024-01-15"),
		payment("Acme", 200, "2024-02-01"),
		payment("Globex", 999, "2024-01-16"),
	}

	freq := PaymentFrequency(records)

	if len(freq) != 2 {
		t.Fatalf("len = %d, want 2", len(freq))
	}
	if freq[0].Vendor != "Acme" || freq[0].Count != 2 {
		t.Errorf("freq[0] = %+v, want Acme 2", freq[0])
	}

	var total int
	for _, vc := range freq {
		total += vc.Count
	}
	if total != len(records) {
		t.Errorf("counts sum to %d, want %d", total, len(records))
	}
}

func TestMonthlyTotals_FillsGapMonths(t *testing.T) {
	records := []model.Payment{
		payment("Acme", 100, "2024-03-10"),
		payment("Globex", 50, "2024-01-05"),
		payment("Acme", 25, "2024-01-20"),
	}

	months := MonthlyTotals(records)

	if len(months) != 3 {
		t.Fatalf("len = %d, want 3 (Jan through Mar)", len(months))
	}
	if months[0].Month.Month() != time.January || months[0].Total != 75 {
		t.Errorf("months[0] = %+v", months[0])
	}
	if months[1].Month.Month() != time.February || months[1].Total != 0 {
		t.Errorf("gap month not zero-filled: %+v", months[1])
	}
	if months[2].Month.Month() != time.March || months[2].Total != 100 {
		t.Errorf("months[2] = %+v", months[2])
	}
}

func TestMonthlyTotals_Empty(t *testing.T) {
	if got := MonthlyTotals(nil); got != nil {
		t.Errorf("MonthlyTotals(nil) = %v, want nil", got)
	}
}

func TestDepartmentCrosstab(t *testing.T) {
	led := mustClean(t, rawTable(
		[]string{"VENDOR", "CHKSUBTOT", "RUNDATE", "DEPARTMENT"},
		[]string{"Acme", "100", "2024-01-15", "Finance"},
		[]string{"Globex", "50", "2024-01-16", "Parks"},
		[]string{"Acme", "25", "2024-02-01", "Parks"},
	))

	ct := DepartmentCrosstab(led, 20)
	if ct == nil {
		t.Fatal("Crosstab = nil")
	}

	// Vendors keep first-appearance order, departments are sorted.
	if len(ct.Vendors) != 2 || ct.Vendors[0] != "Acme" || ct.Vendors[1] != "Globex" {
		t.Errorf("Vendors = %v", ct.Vendors)
	}
	if len(ct.Departments) != 2 || ct.Departments[0] != "Finance" || ct.Departments[1] != "Parks" {
		t.Errorf("Departments = %v", ct.Departments)
	}

	if ct.Values[0][0] != 100 || ct.Values[0][1] != 25 {
		t.Errorf("Acme row = %v", ct.Values[0])
	}
	if ct.Values[1][0] != 0 || ct.Values[1][1] != 50 {
		t.Errorf("Globex row = %v", ct.Values[1])
	}
	if got := ct.Max(); got != 100 {
		t.Errorf("Max = %v, want 100", got)
	}
}

func TestDepartmentCrosstab_NoDepartmentColumn(t *testing.T) {
	led := mustClean(t, rawTable(
		[]string{"VENDOR", "CHKSUBTOT", "RUNDATE"},
		[]string{"Acme", "100", "2024-01-15"},
	))

	if ct := DepartmentCrosstab(led, 20); ct != nil {
		t.Errorf("Crosstab = %+v, want nil", ct)
	}
}

func TestDepartmentCrosstab_CapsVendors(t *testing.T) {
	led := mustClean(t, rawTable(
		[]string{"VENDOR", "CHKSUBTOT", "RUNDATE", "DEPARTMENT"},
		[]string{"A", "1", "2024-01-01", "X"},
		[]string{"B", "2", "2024-01-02", "X"},
		[]string{"C", "3", "2024-01-03", "X"},
	))

	ct := DepartmentCrosstab(led, 2)
	if ct == nil {
		t.Fatal("Crosstab = nil")
	}
	if len(ct.Vendors) != 2 || ct.Vendors[0] != "A" || ct.Vendors[1] != "B" {
		t.Errorf("Vendors = %v, want first two in table order", ct.Vendors)
	}
}
