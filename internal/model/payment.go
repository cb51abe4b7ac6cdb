// Package model defines domain types for the paylens ledger analysis.
package model

import "time"

// Payment is one cleaned row of the vendor-payment ledger.
type Payment struct {
	Vendor     string
	Amount     float64
	RunDate    time.Time
	Department string // empty when the source has no department column

	// Row is the index of this record in the cleaned table, so reports
	// carrying the full row schema can find the original cells.
	Row int
}

// VendorTotal holds the summed payment amount for one vendor.
type VendorTotal struct {
	Vendor string
	Total  float64
}

// VendorCount holds the payment count for one vendor.
type VendorCount struct {
	Vendor string
	Count  int
}

// MonthlyTotal holds the summed payment amount for one calendar month.
type MonthlyTotal struct {
	Month time.Time // first day of the month, UTC
	Total float64
}

// Crosstab is a vendor x department cross-tabulation of summed amounts.
// Values is indexed [vendor][department]; missing combinations are zero.
type Crosstab struct {
	Vendors     []string
	Departments []string
	Values      [][]float64
}

// Max returns the largest cell value in the crosstab.
func (c *Crosstab) Max() float64 {
	var m float64
	for _, row := range c.Values {
		for _, v := range row {
			if v > m {
				m = v
			}
		}
	}
	return m
}
