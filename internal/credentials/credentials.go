package credentials

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store holds the bearer credential that proves a guardian identity.
// SessionController sets and clears it; the API client reads it on
// every outgoing request.
type Store interface {
	// Token returns the stored credential. ok is false when none is held.
	Token() (token string, ok bool)

	// SetToken persists a new credential.
	SetToken(token string) error

	// Clear removes the credential.
	Clear() error
}

// FileStore persists the credential as a single file under the user
// config directory, mode 0600.
type FileStore struct {
	path string

	mu     sync.Mutex
	cached string
	loaded bool
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a FileStore at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath resolves the credential file path in priority order:
// 1. LEARNPAL_TOKEN_FILE environment variable
// 2. $XDG_CONFIG_HOME/learnpal/token
// 3. ~/.config/learnpal/token
func DefaultPath() (string, error) {
	if p := os.Getenv("LEARNPAL_TOKEN_FILE"); p != "" {
		return p, ensureDir(p)
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	p := filepath.Join(configHome, "learnpal", "token")
	return p, ensureDir(p)
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

func (s *FileStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		data, err := os.ReadFile(s.path)
		if err == nil {
			s.cached = strings.TrimSpace(string(data))
		}
		s.loaded = true
	}
	return s.cached, s.cached != ""
}

func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write credential: %w", err)
	}
	s.cached = token
	s.loaded = true
	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cached = ""
	s.loaded = true
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credential: %w", err)
	}
	return nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu    sync.Mutex
	token string
}

var _ Store = (*MemStore)(nil)

// NewMemStore creates a MemStore, optionally pre-loaded with a token.
func NewMemStore(token string) *MemStore {
	return &MemStore{token: token}
}

func (s *MemStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

func (s *MemStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
