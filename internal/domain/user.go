package domain

import (
	"context"
	"strings"
	"time"

	"mini-crm/internal/format"
)

// MinPasswordLength задает минимальную длину пароля.
const MinPasswordLength = 6

// User представляет пользователя CRM.
type User struct {
	ID        string
	Name      string
	Email     string
	AvatarURL string
}

// UserCredentials связывает пользователя с хешем его пароля.
type UserCredentials struct {
	User         *User
	PasswordHash string
}

// Session представляет выданную пользователю сессию.
type Session struct {
	Token     string
	User      *User
	ExpiresAt time.Time
}

// UserRepository определяет контракт для работы с хранилищем пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *User, passwordHash string) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetCredentialsByEmail(ctx context.Context, email string) (*UserCredentials, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// PasswordHasher хеширует и сверяет пароли.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// TokenIssuer выпускает и проверяет токены сессии.
type TokenIssuer interface {
	Issue(userID string) (string, time.Time, error)
	Verify(token string) (string, error)
}

// WelcomeNotifier отправляет приветственное письмо новому пользователю.
type WelcomeNotifier interface {
	SendWelcome(ctx context.Context, user *User) error
}

// ValidateRegistration проверяет данные регистрации; email ожидается уже нормализованным.
func ValidateRegistration(name, email, password string) error {
	var errs ValidationErrors
	if strings.TrimSpace(name) == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "is required"})
	}
	if !format.ValidateEmail(email) {
		errs = append(errs, ValidationError{Field: "email", Message: "is invalid"})
	}
	if len(password) < MinPasswordLength {
		errs = append(errs, ValidationError{Field: "password", Message: "must have at least 6 characters"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NormalizeEmail приводит email к виду, в котором он хранится.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
