package credstore

import (
	"os"
	"path/filepath"
	"testing"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "nested", "credentials"))
}

func TestLoadWhenAbsent(t *testing.T) {
	s := newStore(t)

	token, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if token != "" {
		t.Fatalf("expected empty token, got %q", token)
	}
}

func TestSaveLoadClear(t *testing.T) {
	s := newStore(t)

	if err := s.Save("tok-123"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	token, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if token != "tok-123" {
		t.Fatalf("Load = %q, want tok-123", token)
	}

	cleared, err := s.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if !cleared {
		t.Fatal("first Clear should report a removal")
	}

	// Clearing again is a no-op, not an error; this is what keeps the
	// 401 side effect idempotent under concurrent failures.
	cleared, err = s.Clear()
	if err != nil {
		t.Fatalf("second Clear: %v", err)
	}
	if cleared {
		t.Fatal("second Clear should not report a removal")
	}
}

func TestSaveRestrictsPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials")
	s := New(path)

	if err := s.Save("secret"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("credential file mode = %o, want 600", perm)
	}
}
