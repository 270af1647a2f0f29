// api/capture/session.go
package capture

import (
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
)

// SessionStore is the persistent storage a session identifier survives in
// between runs, the way the browser tracker uses localStorage.
type SessionStore interface {
	Load() (string, bool)
	Save(id string) error
}

// SessionID returns the stored session identifier, or generates a new one and
// persists it. The identifier is reused for every event until the backing
// storage is cleared; it is not guaranteed unique across devices.
func SessionID(store SessionStore) string {
	if id, ok := store.Load(); ok {
		return id
	}
	id := uuid.New().String()
	if err := store.Save(id); err != nil {
		// A session that fails to persist is still usable for this run.
		log.Printf("Failed to persist session ID: %v", err)
	}
	return id
}

// FileSessionStore keeps the session identifier in a plain file.
type FileSessionStore struct {
	Path string
}

func (s *FileSessionStore) Load() (string, bool) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return "", false
	}
	id := strings.TrimSpace(string(raw))
	return id, id != ""
}

func (s *FileSessionStore) Save(id string) error {
	return os.WriteFile(s.Path, []byte(id+"\n"), 0o600)
}

// MemorySessionStore holds the identifier in memory only. Useful for tests
// and for callers that do not want a session to outlive the process.
type MemorySessionStore struct {
	id string
}

func (s *MemorySessionStore) Load() (string, bool) {
	return s.id, s.id != ""
}

func (s *MemorySessionStore) Save(id string) error {
	s.id = id
	return nil
}
