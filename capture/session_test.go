// api/capture/session_test.go
package capture

import (
	"path/filepath"
	"testing"
)

func TestSessionID_GeneratesAndPersists(t *testing.T) {
	store := &FileSessionStore{Path: filepath.Join(t.TempDir(), "session")}

	first := SessionID(store)
	if first == "" {
		t.Fatal("SessionID returned empty string")
	}

	// The same storage yields the same identifier until it is cleared.
	second := SessionID(store)
	if second != first {
		t.Errorf("second SessionID = %q, want %q", second, first)
	}
}

func TestSessionID_NewStorageNewSession(t *testing.T) {
	dir := t.TempDir()
	a := SessionID(&FileSessionStore{Path: filepath.Join(dir, "a")})
	b := SessionID(&FileSessionStore{Path: filepath.Join(dir, "b")})
	if a == b {
		t.Error("distinct storage should produce distinct session IDs")
	}
}

func TestMemorySessionStore(t *testing.T) {
	store := &MemorySessionStore{}
	if _, ok := store.Load(); ok {
		t.Fatal("empty store should report no session")
	}

	id := SessionID(store)
	got, ok := store.Load()
	if !ok || got != id {
		t.Errorf("Load() = %q, %v; want %q, true", got, ok, id)
	}
}
