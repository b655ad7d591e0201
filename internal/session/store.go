package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// CredentialKey is the name the credential is stored under
const CredentialKey = "token"

// ErrNoCredential is returned by Load when nothing is stored
var ErrNoCredential = errors.New("no credential stored")

// CredentialStore persists the single bearer credential
type CredentialStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileStore keeps the credential in a file named after CredentialKey
type FileStore struct {
	path string
}

// Ensure FileStore implements CredentialStore
var _ CredentialStore = (*FileStore)(nil)

// NewFileStore stores the credential at path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// NewDirStore stores the credential as dir/token
func NewDirStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, CredentialKey)}
}

// DefaultPath returns ~/.roster/token, or a relative path if there is no home
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".roster", CredentialKey)
	}
	return filepath.Join(home, ".roster", CredentialKey)
}

// Path returns the file backing the store
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoCredential
		}
		return "", fmt.Errorf("failed to read credential: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoCredential
	}
	return token, nil
}

func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create credential dir: %w", err)
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credential: %w", err)
	}
	return nil
}

// MemoryStore keeps the credential in process memory
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

// Ensure MemoryStore implements CredentialStore
var _ CredentialStore = (*MemoryStore)(nil)

// NewMemoryStore creates a store, optionally holding token already
func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

func (s *MemoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", ErrNoCredential
	}
	return s.token, nil
}

func (s *MemoryStore) Save(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return nil
}
