package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mini-crm/internal/database"
	"mini-crm/internal/domain"
)

// UserRepository реализует взаимодействие с данными пользователей в PostgreSQL.
type UserRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewUserRepository создает новый экземпляр UserRepository.
func NewUserRepository(db *sql.DB, queries *database.Queries) domain.UserRepository {
	return &UserRepository{
		db:      db,
		queries: queries,
	}
}

// Create сохраняет пользователя вместе с хешем пароля.
func (r *UserRepository) Create(ctx context.Context, user *domain.User, passwordHash string) error {
	err := r.queries.CreateUser(ctx, database.CreateUserParams{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: passwordHash,
		AvatarUrl:    nullString(user.AvatarURL),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyRegistered
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID возвращает пользователя по ID.
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	dbUser, err := r.queries.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidText(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toDomainUser(dbUser), nil
}

// GetCredentialsByEmail возвращает пользователя и хеш пароля по email.
func (r *UserRepository) GetCredentialsByEmail(ctx context.Context, email string) (*domain.UserCredentials, error) {
	dbUser, err := r.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &domain.UserCredentials{
		User:         toDomainUser(dbUser),
		PasswordHash: dbUser.PasswordHash,
	}, nil
}

// ExistsByEmail проверяет, занят ли email.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	exists, err := r.queries.EmailExists(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

func toDomainUser(u database.User) *domain.User {
	return &domain.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		AvatarURL: u.AvatarUrl.String,
	}
}
