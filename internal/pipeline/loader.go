package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"paylens/internal/source"
	"paylens/internal/store"
)

// LoadOptions controls ledger loading.
type LoadOptions struct {
	// CachePath is the sqlite cache database; empty disables caching.
	CachePath string
	// NoCache forces a full reparse even when a cache entry exists.
	NoCache bool
}

// LoadResult is the output of Load.
type LoadResult struct {
	Ledger    *Ledger
	FromCache bool
}

// Load reads the ledger file, cleans it, and returns the result, serving
// from the cache when the file is unchanged. Cache failures fall back to a
// full reparse; a missing or malformed input file is a fatal error.
func Load(path string, opts LoadOptions) (*LoadResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("ledger file: %w", err)
	}
	fi := store.FileInfo{
		MtimeNs:   info.ModTime().UnixNano(),
		SizeBytes: info.Size(),
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	var cache *store.Cache
	if opts.CachePath != "" {
		// The cache is an optimization; if it cannot be opened we just parse.
		if c, err := store.Open(opts.CachePath); err == nil {
			cache = c
			defer func() { _ = cache.Close() }()
		}
	}

	if cache != nil && !opts.NoCache {
		if cached, ok, err := cache.Lookup(absPath, fi); err == nil && ok {
			// Cached tables are already canonical, so Clean is a cheap
			// idempotent rebuild of the typed records.
			led, err := Clean(cached.Table)
			if err == nil {
				led.RawRows = cached.RawRows
				led.Dropped = cached.Dropped
				return &LoadResult{Ledger: led, FromCache: true}, nil
			}
		}
	}

	raw, err := source.Read(path)
	if err != nil {
		return nil, err
	}

	led, err := Clean(raw)
	if err != nil {
		return nil, err
	}

	if cache != nil {
		_ = cache.Save(absPath, fi, store.CachedLedger{
			Table:   led.Table,
			RawRows: led.RawRows,
			Dropped: led.Dropped,
		})
	}

	return &LoadResult{Ledger: led}, nil
}
