package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS ledgers (
    source_path   TEXT PRIMARY KEY,
    mtime_ns      INTEGER NOT NULL,
    size_bytes    INTEGER NOT NULL,
    columns       TEXT NOT NULL,
    raw_rows      INTEGER NOT NULL,
    dropped_rows  INTEGER NOT NULL,
    cached_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS ledger_rows (
    source_path   TEXT NOT NULL REFERENCES ledgers(source_path) ON DELETE CASCADE,
    row_idx       INTEGER NOT NULL,
    cells         TEXT NOT NULL,
    PRIMARY KEY (source_path, row_idx)
);
`
