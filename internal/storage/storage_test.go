package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, ok, err := s.Get("commandPalette.recent"); ok || err != nil {
		t.Fatalf("missing key: ok=%v err=%v, want absent", ok, err)
	}
	if err := s.Set("commandPalette.recent", []byte(`["a","b"]`)); err != nil {
		t.Fatal(err)
	}
	data, ok, err := s.Get("commandPalette.recent")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(data) != `["a","b"]` {
		t.Fatalf("value = %s", data)
	}
	if err := s.Delete("commandPalette.recent"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get("commandPalette.recent"); ok {
		t.Fatalf("key survived delete")
	}
	// deleting a missing key is not an error
	if err := s.Delete("commandPalette.recent"); err != nil {
		t.Fatal(err)
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set("commandPalette.favorites", []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if err := RunMigrations(db); err != nil {
		t.Fatal(err)
	}

	s := NewSQLiteStore(db)
	if _, ok, err := s.Get("commandPalette.recent"); ok || err != nil {
		t.Fatalf("missing key: ok=%v err=%v, want absent", ok, err)
	}
	if err := s.Set("commandPalette.recent", []byte(`["x"]`)); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("commandPalette.recent", []byte(`["y","x"]`)); err != nil {
		t.Fatal(err)
	}
	data, ok, err := s.Get("commandPalette.recent")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(data) != `["y","x"]` {
		t.Fatalf("value = %s, want upserted array", data)
	}
	if err := s.Delete("commandPalette.recent"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get("commandPalette.recent"); ok {
		t.Fatalf("key survived delete")
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if err := RunMigrations(db); err != nil {
		t.Fatal(err)
	}
	if err := RunMigrations(db); err != nil {
		t.Fatalf("second run: %v", err)
	}
}
