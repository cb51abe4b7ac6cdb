package pipeline

import (
	"sort"
	"strings"

	"paylens/internal/model"

	"gonum.org/v1/gonum/stat"
)

// Describe computes descriptive statistics for every column of the cleaned
// table: count/mean/std/min/quartiles/max for numeric columns,
// count/unique/top/frequency otherwise, plus per-column missing counts.
// Pure computation; rendering lives in internal/cli.
func Describe(led *Ledger) model.TableSummary {
	sum := model.TableSummary{Rows: len(led.Table.Rows)}

	for ci, name := range led.Table.Columns {
		col := model.ColumnSummary{Name: name}

		values := make([]string, 0, len(led.Table.Rows))
		for ri := range led.Table.Rows {
			cell := strings.TrimSpace(led.Table.Rows[ri][ci])
			if cell == "" {
				col.Missing++
				continue
			}
			values = append(values, cell)
		}
		col.Count = len(values)

		if nums, ok := numericColumn(values); ok {
			col.Numeric = true
			fillNumeric(&col, nums)
		} else {
			fillCategorical(&col, values)
		}

		sum.Columns = append(sum.Columns, col)
	}

	return sum
}

// numericColumn parses the column as floats. A column is numeric only when
// it has at least one value and every value coerces.
func numericColumn(values []string) ([]float64, bool) {
	if len(values) == 0 {
		return nil, false
	}
	nums := make([]float64, 0, len(values))
	for _, v := range values {
		f, ok := ParseAmount(v)
		if !ok {
			return nil, false
		}
		nums = append(nums, f)
	}
	return nums, true
}

func fillNumeric(col *model.ColumnSummary, nums []float64) {
	sort.Float64s(nums)

	col.Mean = stat.Mean(nums, nil)
	col.Std = stat.StdDev(nums, nil)
	col.Min = nums[0]
	col.Max = nums[len(nums)-1]
	col.Q25 = Percentile(nums, 0.25)
	col.Median = Percentile(nums, 0.50)
	col.Q75 = Percentile(nums, 0.75)
}

func fillCategorical(col *model.ColumnSummary, values []string) {
	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	col.Unique = len(counts)

	// Most frequent value; ties go to the lexicographically smaller one so
	// the report is deterministic.
	for v, n := range counts {
		if n > col.TopFreq || (n == col.TopFreq && v < col.Top) {
			col.Top = v
			col.TopFreq = n
		}
	}
}
