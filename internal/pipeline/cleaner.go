// Package pipeline cleans the raw ledger and computes every analysis over it.
package pipeline

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"paylens/internal/model"
	"paylens/internal/source"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// dateLayout is the canonical run-date format cells are rewritten to.
const dateLayout = "2006-01-02"

// Columns locates the well-known ledger columns in a normalized table.
// Department is -1 when the source has no department column.
type Columns struct {
	Vendor     int
	Amount     int
	RunDate    int
	Department int
}

// Accepted header spellings, checked in order after normalization.
var (
	vendorNames     = []string{"VENDOR", "VENDOR_NAME"}
	amountNames     = []string{"CHKSUBTOT", "AMOUNT", "PAYMENT_AMOUNT"}
	runDateNames    = []string{"RUNDATE", "RUN_DATE", "PAYMENT_DATE"}
	departmentNames = []string{"DEPARTMENT", "DEPT"}
)

// DetectColumns finds the vendor, amount, run-date, and optional department
// columns. Missing any of the three required columns is an error.
func DetectColumns(t *source.Table) (Columns, error) {
	cols := Columns{
		Vendor:     findColumn(t, vendorNames),
		Amount:     findColumn(t, amountNames),
		RunDate:    findColumn(t, runDateNames),
		Department: findColumn(t, departmentNames),
	}

	switch {
	case cols.Vendor < 0:
		return cols, fmt.Errorf("no vendor column (looked for %s)", strings.Join(vendorNames, ", "))
	case cols.Amount < 0:
		return cols, fmt.Errorf("no amount column (looked for %s)", strings.Join(amountNames, ", "))
	case cols.RunDate < 0:
		return cols, fmt.Errorf("no run-date column (looked for %s)", strings.Join(runDateNames, ", "))
	}

	return cols, nil
}

func findColumn(t *source.Table, candidates []string) int {
	for _, name := range candidates {
		for i, c := range t.Columns {
			if strings.EqualFold(c, name) {
				return i
			}
		}
	}
	return -1
}

// Ledger is the cleaned ledger: the full normalized table restricted to
// surviving rows, plus typed payment records derived from it. Downstream
// stages treat it as read-only.
type Ledger struct {
	Table   *source.Table
	Columns Columns
	Records []model.Payment

	RawRows int
	Dropped int
}

// HasDepartment reports whether the source carried a department column.
func (l *Ledger) HasDepartment() bool { return l.Columns.Department >= 0 }

var titleCaser = cases.Title(language.English)

// Clean normalizes the raw table into a Ledger. Steps, in order, each a
// strict row subset:
//
//  1. normalize every column name
//  2. parse the run-date column; unparseable values become missing
//  3. trim and title-case the vendor field
//  4. drop rows where vendor, amount, or run-date is missing
//  5. coerce amount to numeric; unparseable values become missing and are dropped
//
// Coercion failures are dropped, never defaulted. Clean is idempotent on an
// already-cleaned table.
func Clean(raw *source.Table) (*Ledger, error) {
	raw.NormalizeColumns()

	cols, err := DetectColumns(raw)
	if err != nil {
		return nil, err
	}

	led := &Ledger{
		Table:   &source.Table{Columns: raw.Columns},
		Columns: cols,
		RawRows: len(raw.Rows),
	}

	for _, row := range raw.Rows {
		// Run-date parse: failures become missing, not errors.
		runDate, dateOK := ParseRunDate(row[cols.RunDate])

		vendor := titleCaser.String(strings.TrimSpace(row[cols.Vendor]))

		// First null filter: required fields present. A row with a bad
		// date is dropped here before its amount is ever coerced.
		if vendor == "" || !dateOK || strings.TrimSpace(row[cols.Amount]) == "" {
			led.Dropped++
			continue
		}

		// Amount coercion, then the second null filter.
		amount, ok := ParseAmount(row[cols.Amount])
		if !ok {
			led.Dropped++
			continue
		}

		row[cols.Vendor] = vendor
		row[cols.RunDate] = runDate.Format(dateLayout)
		row[cols.Amount] = strconv.FormatFloat(amount, 'f', -1, 64)

		p := model.Payment{
			Vendor:  vendor,
			Amount:  amount,
			RunDate: runDate,
			Row:     len(led.Table.Rows),
		}
		if cols.Department >= 0 {
			p.Department = strings.TrimSpace(row[cols.Department])
			row[cols.Department] = p.Department
		}

		led.Table.Rows = append(led.Table.Rows, row)
		led.Records = append(led.Records, p)
	}

	return led, nil
}

// runDateLayouts are tried in order; the canonical layout comes first so
// re-cleaning cached data takes the fast path.
var runDateLayouts = []string{
	dateLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04",
	"2006/01/02",
	"02-Jan-2006",
}

// ParseRunDate parses a run-date cell. The second return is false when the
// value is missing or matches no known layout.
func ParseRunDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range runDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseAmount coerces an amount cell to a float. The second return is false
// when the value is missing or not numeric.
func ParseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
