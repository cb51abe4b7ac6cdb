// Package source reads the raw vendor-payment ledger from disk.
package source

import "strings"

// Table is an in-memory tabular file: a header row plus string cells.
// Cells carry exactly what the file contained; interpretation happens
// downstream in the cleaning pipeline.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Index returns the position of the named column, or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the cell at (row, col), or "" when col is -1.
func (t *Table) Cell(row, col int) string {
	if col < 0 {
		return ""
	}
	return t.Rows[row][col]
}

// NormalizeColumns standardizes every column name in place: surrounding
// whitespace stripped, internal spaces replaced with underscores.
func (t *Table) NormalizeColumns() {
	for i, c := range t.Columns {
		t.Columns[i] = NormalizeColumn(c)
	}
}

// NormalizeColumn applies the column-name normalization to a single name.
func NormalizeColumn(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}
