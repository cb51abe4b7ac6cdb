package store

import (
	"path/filepath"
	"reflect"
	"testing"

	"paylens/internal/source"
)

func openCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func sampleLedger() CachedLedger {
	return CachedLedger{
		Table: &source.Table{
			Columns: []string{"VENDOR", "CHKSUBTOT", "RUNDATE"},
			Rows: [][]string{
				{"Acme Corp", "100.5", "2024-01-15"},
				{"Globex", "200", "2024-02-01"},
			},
		},
		RawRows: 3,
		Dropped: 1,
	}
}

func TestCache_SaveLookupRoundtrip(t *testing.T) {
	c := openCache(t)
	fi := FileInfo{MtimeNs: 1700000000000000000, SizeBytes: 128}

	if err := c.Save("/data/ledger.csv", fi, sampleLedger()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := c.Lookup("/data/ledger.csv", fi)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !ok {
		t.Fatal("Lookup missed a fresh entry")
	}

	want := sampleLedger()
	if !reflect.DeepEqual(got.Table.Columns, want.Table.Columns) {
		t.Errorf("Columns = %v", got.Table.Columns)
	}
	if !reflect.DeepEqual(got.Table.Rows, want.Table.Rows) {
		t.Errorf("Rows = %v", got.Table.Rows)
	}
	if got.RawRows != want.RawRows || got.Dropped != want.Dropped {
		t.Errorf("counts = %d/%d, want %d/%d", got.RawRows, got.Dropped, want.RawRows, want.Dropped)
	}
}

func TestCache_MissOnUntrackedPath(t *testing.T) {
	c := openCache(t)

	_, ok, err := c.Lookup("/data/never-seen.csv", FileInfo{})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if ok {
		t.Error("Lookup hit for an untracked path")
	}
}

func TestCache_MissOnChangedFile(t *testing.T) {
	c := openCache(t)
	fi := FileInfo{MtimeNs: 1000, SizeBytes: 64}

	if err := c.Save("/data/ledger.csv", fi, sampleLedger()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	for _, changed := range []FileInfo{
		{MtimeNs: 2000, SizeBytes: 64},
		{MtimeNs: 1000, SizeBytes: 65},
	} {
		_, ok, err := c.Lookup("/data/ledger.csv", changed)
		if err != nil {
			t.Fatalf("Lookup: %v", err)
		}
		if ok {
			t.Errorf("Lookup hit with stale identity %+v", changed)
		}
	}
}

func TestCache_SaveReplacesEntry(t *testing.T) {
	c := openCache(t)
	fi := FileInfo{MtimeNs: 1000, SizeBytes: 64}

	if err := c.Save("/data/ledger.csv", fi, sampleLedger()); err != nil {
		t.Fatalf("first Save: %v", err)
	}

	updated := CachedLedger{
		Table: &source.Table{
			Columns: []string{"VENDOR", "CHKSUBTOT", "RUNDATE"},
			Rows:    [][]string{{"Initech", "42", "2024-03-01"}},
		},
		RawRows: 1,
	}
	fi2 := FileInfo{MtimeNs: 2000, SizeBytes: 32}
	if err := c.Save("/data/ledger.csv", fi2, updated); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, ok, err := c.Lookup("/data/ledger.csv", fi2)
	if err != nil || !ok {
		t.Fatalf("Lookup after replace: ok=%v err=%v", ok, err)
	}
	if len(got.Table.Rows) != 1 || got.Table.Rows[0][0] != "Initech" {
		t.Errorf("replaced rows = %v", got.Table.Rows)
	}
}
