// Package store provides a SQLite-backed cache for cleaned ledger data.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"paylens/internal/source"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache caches cleaned ledgers per source file, keyed by mtime and size, so
// re-running the analysis on an unchanged file skips parsing and cleaning.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// FileInfo is the tracked identity of a source file.
type FileInfo struct {
	MtimeNs   int64
	SizeBytes int64
}

// CachedLedger is a cleaned table plus its cleaning counts.
type CachedLedger struct {
	Table   *source.Table
	RawRows int
	Dropped int
}

// Lookup returns the cached cleaned ledger for srcPath, or ok=false when the
// file is untracked or has changed since it was cached.
func (c *Cache) Lookup(srcPath string, fi FileInfo) (*CachedLedger, bool, error) {
	var (
		mtime, size      int64
		columnsJSON      string
		rawRows, dropped int
	)
	err := c.db.QueryRow(
		"SELECT mtime_ns, size_bytes, columns, raw_rows, dropped_rows FROM ledgers WHERE source_path = ?",
		srcPath,
	).Scan(&mtime, &size, &columnsJSON, &rawRows, &dropped)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if mtime != fi.MtimeNs || size != fi.SizeBytes {
		return nil, false, nil
	}

	var columns []string
	if err := json.Unmarshal([]byte(columnsJSON), &columns); err != nil {
		return nil, false, fmt.Errorf("decoding cached columns: %w", err)
	}

	rows, err := c.db.Query(
		"SELECT cells FROM ledger_rows WHERE source_path = ? ORDER BY row_idx",
		srcPath,
	)
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = rows.Close() }()

	t := &source.Table{Columns: columns}
	for rows.Next() {
		var cellsJSON string
		if err := rows.Scan(&cellsJSON); err != nil {
			return nil, false, err
		}
		var cells []string
		if err := json.Unmarshal([]byte(cellsJSON), &cells); err != nil {
			return nil, false, fmt.Errorf("decoding cached row: %w", err)
		}
		t.Rows = append(t.Rows, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}

	return &CachedLedger{Table: t, RawRows: rawRows, Dropped: dropped}, true, nil
}

// Save stores a cleaned ledger for srcPath, replacing any previous entry.
func (c *Cache) Save(srcPath string, fi FileInfo, led CachedLedger) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM ledgers WHERE source_path = ?", srcPath); err != nil {
		return err
	}

	columnsJSON, err := json.Marshal(led.Table.Columns)
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		`INSERT INTO ledgers (source_path, mtime_ns, size_bytes, columns, raw_rows, dropped_rows, cached_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		srcPath, fi.MtimeNs, fi.SizeBytes, string(columnsJSON),
		led.RawRows, led.Dropped, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	insert, err := tx.Prepare("INSERT INTO ledger_rows (source_path, row_idx, cells) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer func() { _ = insert.Close() }()

	for i, row := range led.Table.Rows {
		cellsJSON, err := json.Marshal(row)
		if err != nil {
			return err
		}
		if _, err := insert.Exec(srcPath, i, string(cellsJSON)); err != nil {
			return err
		}
	}

	return tx.Commit()
}
