package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/4GeeksAcademy/jwt-jaime35/models"
)

// InMemorySessionPath selects the process-memory session store instead of a
// file-backed one.
const InMemorySessionPath = ":memory:"

// NewSessionStore returns a [SessionStore] persisting to the given file path.
// An empty path or ":memory:" yields a store that lives only for the process
// lifetime, used by tests and throwaway runs.
func NewSessionStore(path string) SessionStore {
	if path == "" || path == InMemorySessionPath {
		return &memorySessionStore{}
	}
	return &fileSessionStore{path: path}
}

// fileSessionStore keeps the session record as a single JSON file. This is
// the process analogue of the browser's tab-scoped storage slot: one record
// under one well-known key.
type fileSessionStore struct {
	path string

	mu sync.RWMutex
}

func (s *fileSessionStore) Save(session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	// Write-then-rename keeps the replacement atomic: readers see either the
	// old record or the new one, never a torn write.
	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}

	return nil
}

func (s *fileSessionStore) Load() (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		// An unreadable file is indistinguishable from corrupt data for the
		// caller: there IS stored state, but it cannot be used.
		return nil, ErrSessionMalformed
	}

	var session models.Session
	if err = json.Unmarshal(data, &session); err != nil {
		return nil, ErrSessionMalformed
	}
	if !session.Valid() {
		return nil, ErrSessionMalformed
	}

	return &session, nil
}

func (s *fileSessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}

	return nil
}

func (s *fileSessionStore) Token() string {
	session, err := s.Load()
	if err != nil || session == nil {
		return ""
	}
	return session.Token
}

// memorySessionStore is the in-process variant backing tests and the
// ":memory:" configuration.
type memorySessionStore struct {
	mu      sync.RWMutex
	session *models.Session
}

func (s *memorySessionStore) Save(session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &session
	return nil
}

func (s *memorySessionStore) Load() (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil, nil
	}
	if !s.session.Valid() {
		return nil, ErrSessionMalformed
	}
	copied := *s.session
	return &copied, nil
}

func (s *memorySessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}

func (s *memorySessionStore) Token() string {
	session, err := s.Load()
	if err != nil || session == nil {
		return ""
	}
	return session.Token
}
