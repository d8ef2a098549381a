package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mini-crm/internal/domain"
	"mini-crm/internal/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const welcomeTimeout = 30 * time.Second

// AuthUseCase реализует регистрацию, вход и проверку сессии.
type AuthUseCase struct {
	userRepo domain.UserRepository
	hasher   domain.PasswordHasher
	tokens   domain.TokenIssuer
	notifier domain.WelcomeNotifier
	logger   *logrus.Logger
}

// NewAuthUseCase создает новый экземпляр AuthUseCase.
func NewAuthUseCase(
	userRepo domain.UserRepository,
	hasher domain.PasswordHasher,
	tokens domain.TokenIssuer,
	notifier domain.WelcomeNotifier,
	logger *logrus.Logger,
) domain.AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		notifier: notifier,
		logger:   logger,
	}
}

// Register создает пользователя и открывает для него сессию.
func (uc *AuthUseCase) Register(ctx context.Context, name, email, password string) (*domain.Session, error) {
	name = strings.TrimSpace(name)
	email = domain.NormalizeEmail(email)

	// Валидация входных данных
	if err := domain.ValidateRegistration(name, email, password); err != nil {
		return nil, err
	}

	// 1. Проверяем, что email свободен
	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyRegistered
	}

	// 2. Хешируем пароль и сохраняем пользователя
	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
	}
	if err := uc.userRepo.Create(ctx, user, hash); err != nil {
		return nil, err
	}

	session, err := uc.openSession(user)
	if err != nil {
		return nil, err
	}

	// 3. Приветственное письмо не влияет на результат регистрации
	go uc.sendWelcome(user)

	return session, nil
}

// Login проверяет email и пароль и открывает сессию.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	creds, err := uc.userRepo.GetCredentialsByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !uc.hasher.Compare(creds.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return uc.openSession(creds.User)
}

// CurrentUser возвращает владельца токена, если пользователь все еще существует.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	userID, err := uc.tokens.Verify(token)
	if err != nil {
		return nil, domain.ErrSessionInvalid
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrSessionInvalid
		}
		return nil, err
	}

	return user, nil
}

func (uc *AuthUseCase) openSession(user *domain.User) (*domain.Session, error) {
	token, expiresAt, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &domain.Session{Token: token, User: user, ExpiresAt: expiresAt}, nil
}

func (uc *AuthUseCase) sendWelcome(user *domain.User) {
	ctx, cancel := context.WithTimeout(context.Background(), welcomeTimeout)
	defer cancel()

	if err := uc.notifier.SendWelcome(ctx, user); err != nil {
		metrics.RecordIntegrationError("smtp")
		uc.logger.WithError(err).WithField("user_id", user.ID).Warn("Failed to send welcome email")
	}
}

