package auth

import (
	"errors"

	"mini-crm/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength задает минимальную длину пароля.
const MinPasswordLength = domain.MinPasswordLength

// BcryptHasher хеширует пароли через bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher создает новый экземпляр BcryptHasher.
func NewBcryptHasher(cost int) domain.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash возвращает bcrypt-хеш пароля.
func (h *BcryptHasher) Hash(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", domain.ValidationErrors{{Field: "password", Message: "must have at least 6 characters"}}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", domain.ValidationErrors{{Field: "password", Message: "is too long"}}
		}
		return "", err
	}
	return string(hash), nil
}

// Compare сверяет пароль с хешем.
func (h *BcryptHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
