package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"mini-crm/internal/domain"

	"github.com/sirupsen/logrus"
)

// AuthBackend описывает вызовы API, нужные AuthStore.
type AuthBackend interface {
	Register(ctx context.Context, name, email, password string) (*domain.Session, error)
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*domain.User, error)
	SetToken(token string)
}

// AuthStore хранит состояние аутентификации клиента: anonymous или authenticated.
type AuthStore struct {
	backend AuthBackend
	storage SessionStorage
	logger  *logrus.Logger

	mu   sync.RWMutex
	user *domain.User

	busy atomic.Bool
}

func NewAuthStore(backend AuthBackend, storage SessionStorage, logger *logrus.Logger) *AuthStore {
	return &AuthStore{
		backend: backend,
		storage: storage,
		logger:  logger,
	}
}

// Init восстанавливает сохраненную сессию и перепроверяет ее на сервере.
// Недействительная сессия удаляется; при сетевой ошибке сессия остается
// в хранилище, но состояние остается anonymous.
func (s *AuthStore) Init(ctx context.Context) error {
	stored, err := s.storage.Load()
	if err != nil {
		s.logger.WithError(err).Warn("Failed to load stored session")
		s.reset()
		return nil
	}
	if stored == nil {
		s.setUser(nil)
		return nil
	}

	s.backend.SetToken(stored.Token)
	user, err := s.backend.CurrentUser(ctx)
	if err != nil {
		s.backend.SetToken("")
		s.setUser(nil)
		if errors.Is(err, domain.ErrSessionInvalid) || errors.Is(err, domain.ErrUserNotFound) {
			s.logger.WithError(err).Info("Stored session is no longer valid")
			if clearErr := s.storage.Clear(); clearErr != nil {
				s.logger.WithError(clearErr).Warn("Failed to clear stored session")
			}
			return nil
		}
		return err
	}

	s.setUser(user)
	return nil
}

func (s *AuthStore) Login(ctx context.Context, email, password string) (*domain.User, error) {
	return s.authenticate(func() (*domain.Session, error) {
		return s.backend.Login(ctx, email, password)
	})
}

func (s *AuthStore) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if err := domain.ValidateRegistration(name, domain.NormalizeEmail(email), password); err != nil {
		return nil, err
	}
	return s.authenticate(func() (*domain.Session, error) {
		return s.backend.Register(ctx, name, email, password)
	})
}

func (s *AuthStore) authenticate(call func() (*domain.Session, error)) (*domain.User, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, domain.ErrOperationInProgress
	}
	defer s.busy.Store(false)

	session, err := call()
	if err != nil {
		return nil, err
	}

	s.backend.SetToken(session.Token)
	if err := s.storage.Save(&StoredSession{Token: session.Token, User: *session.User, ExpiresAt: session.ExpiresAt}); err != nil {
		s.logger.WithError(err).Warn("Failed to persist session")
	}
	s.setUser(session.User)
	return session.User, nil
}

// Logout всегда очищает локальное состояние; уведомление сервера выполняется по возможности.
func (s *AuthStore) Logout(ctx context.Context) {
	if err := s.backend.Logout(ctx); err != nil {
		s.logger.WithError(err).Warn("Server logout failed, clearing local session anyway")
	}
	s.reset()
}

func (s *AuthStore) reset() {
	s.backend.SetToken("")
	if err := s.storage.Clear(); err != nil {
		s.logger.WithError(err).Warn("Failed to clear stored session")
	}
	s.setUser(nil)
}

func (s *AuthStore) setUser(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// User возвращает текущего пользователя, если сессия активна.
func (s *AuthStore) User() (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, false
	}
	u := *s.user
	return &u, true
}

func (s *AuthStore) IsAuthenticated() bool {
	_, ok := s.User()
	return ok
}

func (s *AuthStore) IsSubmitting() bool { return s.busy.Load() }
