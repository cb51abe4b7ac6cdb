package model

// ColumnSummary holds descriptive statistics for a single table column.
// Numeric columns fill the moment/quartile fields; everything else fills
// Unique/Top/TopFreq, mirroring a describe-all report.
type ColumnSummary struct {
	Name    string
	Numeric bool
	Count   int // non-missing cells
	Missing int

	// Numeric columns
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64

	// Non-numeric columns
	Unique  int
	Top     string
	TopFreq int
}

// TableSummary is the describe report over every column of the cleaned table.
type TableSummary struct {
	Rows    int
	Columns []ColumnSummary
}
