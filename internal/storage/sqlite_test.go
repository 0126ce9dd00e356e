package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	// Tests create the table directly instead of running migrations.
	if _, err := s.db.Exec(`CREATE TABLE kv_store (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		t.Fatalf("creating kv_store: %v", err)
	}
	return s
}

// TestSQLiteRoundtrip verifies Set then Get returns the stored blob.
func TestSQLiteRoundtrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, KeyCurrentProgram, []byte(`{"id":"p1"}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get(ctx, KeyCurrentProgram)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `{"id":"p1"}` {
		t.Errorf("Get = %s, want original blob", got)
	}
}

// TestSQLiteOverwrite verifies Set replaces a prior value for the same key.
func TestSQLiteOverwrite(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, KeyWorkoutHistory, []byte(`[1]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, KeyWorkoutHistory, []byte(`[1,2]`)); err != nil {
		t.Fatalf("Set again: %v", err)
	}
	got, err := s.Get(ctx, KeyWorkoutHistory)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `[1,2]` {
		t.Errorf("Get = %s, want replaced blob", got)
	}
}

// TestSQLiteMissingKey verifies Get on an absent key returns ErrNotFound.
func TestSQLiteMissingKey(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing key: err = %v, want ErrNotFound", err)
	}
}

// TestSQLiteRemove verifies Remove deletes a key and is idempotent.
func TestSQLiteRemove(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, KeyWeeklySchedule, []byte(`[]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Remove(ctx, KeyWeeklySchedule); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := s.Get(ctx, KeyWeeklySchedule); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Remove: err = %v, want ErrNotFound", err)
	}
	if err := s.Remove(ctx, KeyWeeklySchedule); err != nil {
		t.Errorf("second Remove errored: %v", err)
	}
}
