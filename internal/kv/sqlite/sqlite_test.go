package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	store := NewStore(filepath.Join(t.TempDir(), "score100.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGetMissingKey(t *testing.T) {
	store := setupTestStore(t)

	value, ok, err := store.Get(context.Background(), "tasks_2024-01-01")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok || value != "" {
		t.Errorf("Get(missing) = %q, %v; want \"\", false", value, ok)
	}
}

func TestSetOverwrites(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	if err := store.Set(ctx, "scores", `{"2024-01-01":50}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set(ctx, "scores", `{"2024-01-01":90}`); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}

	value, ok, err := store.Get(ctx, "scores")
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if value != `{"2024-01-01":90}` {
		t.Errorf("Get(scores) = %q, want overwritten value", value)
	}

	var rows int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM kv WHERE key = 'scores'").Scan(&rows); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if rows != 1 {
		t.Errorf("expected 1 row for scores, got %d", rows)
	}
}

func TestReopenAndLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "score100.db")

	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Set(ctx, "loop", "[]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	store.Close()

	// Init is idempotent against an already migrated file
	again := NewStore(path)
	if err := again.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	again.Close()

	loaded := NewStore(path)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer loaded.Close()

	if v, ok, _ := loaded.Get(ctx, "loop"); !ok || v != "[]" {
		t.Errorf("Get(loop) after reopen = %q, %v", v, ok)
	}
}

func TestLoadWithoutInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.db"))
	if err := store.Load(); err == nil {
		t.Error("expected error loading a database that does not exist")
	}
}

func TestLoadRejectsNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score100.db")
	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if _, err := store.db.Exec("UPDATE schema_version SET version = 999"); err != nil {
		t.Fatalf("failed to bump schema version: %v", err)
	}
	store.Close()

	loaded := NewStore(path)
	if err := loaded.Load(); err == nil {
		t.Fatal("expected Load to reject a newer schema")
	}
	if loaded.db != nil {
		t.Error("Load left a database handle open after failing")
	}
	// a retry must check again rather than reuse the failed handle
	if err := loaded.Load(); err == nil {
		t.Error("expected second Load to fail too")
	}
}

func TestOperationsBeforeInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "score100.db"))
	ctx := context.Background()

	if _, _, err := store.Get(ctx, "loop"); err == nil {
		t.Error("expected Get to fail before Init")
	}
	if err := store.Set(ctx, "loop", "[]"); err == nil {
		t.Error("expected Set to fail before Init")
	}
}
