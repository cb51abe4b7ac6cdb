package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Read parses a comma-delimited ledger file into a raw Table.
// The first record is the header row. A missing file or malformed CSV is
// returned as an error; callers treat it as fatal.
func Read(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return ReadFrom(f)
}

// ReadFrom parses CSV data from an arbitrary reader.
func ReadFrom(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("ledger is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	t := &Table{Columns: header}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(t.Rows)+2, err)
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}
