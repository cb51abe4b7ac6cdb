package pipeline

import (
	"sort"
	"time"

	"paylens/internal/model"
)

// TotalsByVendor sums the payment amount per vendor, descending by total.
// Equal totals order by vendor name so the output is deterministic.
func TotalsByVendor(records []model.Payment) []model.VendorTotal {
	byVendor := make(map[string]float64)
	for _, p := range records {
		byVendor[p.Vendor] += p.Amount
	}

	totals := make([]model.VendorTotal, 0, len(byVendor))
	for vendor, total := range byVendor {
		totals = append(totals, model.VendorTotal{Vendor: vendor, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}
		return totals[i].Vendor < totals[j].Vendor
	})

	return totals
}

// PaymentFrequency counts payments per vendor, descending by count with the
// same vendor-name tie-break as TotalsByVendor.
func PaymentFrequency(records []model.Payment) []model.VendorCount {
	byVendor := make(map[string]int)
	for _, p := range records {
		byVendor[p.Vendor]++
	}

	counts := make([]model.VendorCount, 0, len(byVendor))
	for vendor, n := range byVendor {
		counts = append(counts, model.VendorCount{Vendor: vendor, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Vendor < counts[j].Vendor
	})

	return counts
}

// MonthlyTotals buckets payment amounts by calendar month of the run date,
// chronologically, with gap months zero-filled so charts show them as gaps.
func MonthlyTotals(records []model.Payment) []model.MonthlyTotal {
	if len(records) == 0 {
		return nil
	}

	byMonth := make(map[time.Time]float64)
	first := monthOf(records[0].RunDate)
	last := first
	for _, p := range records {
		m := monthOf(p.RunDate)
		byMonth[m] += p.Amount
		if m.Before(first) {
			first = m
		}
		if m.After(last) {
			last = m
		}
	}

	var months []model.MonthlyTotal
	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		months = append(months, model.MonthlyTotal{Month: m, Total: byMonth[m]})
	}
	return months
}

func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// DepartmentCrosstab cross-tabulates summed amounts with vendors as rows and
// departments as columns, zero-filled, restricted to the first maxVendors
// vendors in table order. Returns nil when the ledger has no department
// column or no record carries a department.
func DepartmentCrosstab(led *Ledger, maxVendors int) *model.Crosstab {
	if !led.HasDepartment() {
		return nil
	}

	var vendors []string
	vendorIdx := make(map[string]int)
	deptSet := make(map[string]bool)
	for _, p := range led.Records {
		if p.Department == "" {
			continue
		}
		if _, ok := vendorIdx[p.Vendor]; !ok {
			if maxVendors > 0 && len(vendors) >= maxVendors {
				continue
			}
			vendorIdx[p.Vendor] = len(vendors)
			vendors = append(vendors, p.Vendor)
		}
		deptSet[p.Department] = true
	}
	if len(vendors) == 0 {
		return nil
	}

	departments := make([]string, 0, len(deptSet))
	for d := range deptSet {
		departments = append(departments, d)
	}
	sort.Strings(departments)

	deptIdx := make(map[string]int, len(departments))
	for i, d := range departments {
		deptIdx[d] = i
	}

	values := make([][]float64, len(vendors))
	for i := range values {
		values[i] = make([]float64, len(departments))
	}
	for _, p := range led.Records {
		if p.Department == "" {
			continue
		}
		vi, ok := vendorIdx[p.Vendor]
		if !ok {
			continue
		}
		values[vi][deptIdx[p.Department]] += p.Amount
	}

	return &model.Crosstab{
		Vendors:     vendors,
		Departments: departments,
		Values:      values,
	}
}
