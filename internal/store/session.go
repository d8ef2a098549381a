package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"mini-crm/internal/domain"
)

// SessionFileName имя файла, в котором клиент хранит сессию между запусками.
const SessionFileName = "mini-crm-session.json"

// StoredSession представляет сохраненную сессию.
type StoredSession struct {
	Token     string      `json:"token"`
	User      domain.User `json:"user"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// SessionStorage хранит сессию между запусками клиента.
type SessionStorage interface {
	Load() (*StoredSession, error)
	Save(session *StoredSession) error
	Clear() error
}

// FileSessionStorage хранит сессию в JSON-файле с правами 0600.
type FileSessionStorage struct {
	path string
	mu   sync.Mutex
}

func NewFileSessionStorage(path string) *FileSessionStorage {
	return &FileSessionStorage{path: path}
}

// DefaultSessionPath возвращает путь в пользовательском каталоге конфигурации.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "mini-crm", SessionFileName), nil
}

// Load возвращает nil без ошибки, если сессия не сохранена.
func (s *FileSessionStorage) Load() (*StoredSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	var session StoredSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if session.Token == "" {
		return nil, nil
	}
	return &session, nil
}

func (s *FileSessionStorage) Save(session *StoredSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (s *FileSessionStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// MemorySessionStorage держит сессию только в памяти процесса.
type MemorySessionStorage struct {
	mu      sync.Mutex
	session *StoredSession
}

func NewMemorySessionStorage() *MemorySessionStorage {
	return &MemorySessionStorage{}
}

func (s *MemorySessionStorage) Load() (*StoredSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, nil
	}
	c := *s.session
	return &c, nil
}

func (s *MemorySessionStorage) Save(session *StoredSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *session
	s.session = &c
	return nil
}

func (s *MemorySessionStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}
