package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func newTestKV(t *testing.T) *SQLiteKV {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteKV(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestKV(t)

	if err := s.Put(ctx, "theme", "dark"); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := s.Get(ctx, "theme")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected key to exist")
	}
	if got != "dark" {
		t.Errorf("expected 'dark', got %q", got)
	}
}

func TestGetMissing(t *testing.T) {
	s := newTestKV(t)

	_, ok, err := s.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected missing key to report ok=false")
	}
}

func TestPutOverwritesAndBumpsRev(t *testing.T) {
	ctx := context.Background()
	s := newTestKV(t)

	s.Put(ctx, "memos", "[1]")
	first, _ := s.Records(ctx)
	s.Put(ctx, "memos", "[2]")
	second, _ := s.Records(ctx)

	if len(second) != 1 {
		t.Fatalf("expected 1 record, got %d", len(second))
	}
	if second[0].Value != "[2]" {
		t.Errorf("expected full overwrite, got %q", second[0].Value)
	}
	if first[0].Rev == second[0].Rev {
		t.Error("expected a new revision on every write")
	}
	if second[0].UpdatedAt == "" {
		t.Error("expected updated_at to be set")
	}
}

func TestDBPathCreation(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "sub", "dir", "test.db")
	s, err := NewSQLiteKV(dbPath)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("expected db file to be created")
	}
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "memo.db")

	s, err := NewSQLiteKV(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	s.Put(ctx, "theme", "dark")
	s.Close()

	s, err = NewSQLiteKV(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	got, ok, _ := s.Get(ctx, "theme")
	if !ok || got != "dark" {
		t.Errorf("expected persisted 'dark', got %q (ok=%v)", got, ok)
	}
}
