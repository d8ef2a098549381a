package usecase_test

import (
	"context"
	"io"
	"testing"
	"time"

	"mini-crm/internal/domain"
	"mini-crm/internal/mocks"
	"mini-crm/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type authDeps struct {
	users    *mocks.UserRepository
	hasher   *mocks.PasswordHasher
	tokens   *mocks.TokenIssuer
	notifier *mocks.WelcomeNotifier
	uc       domain.AuthUseCase
}

func newAuthDeps() *authDeps {
	d := &authDeps{
		users:    &mocks.UserRepository{},
		hasher:   &mocks.PasswordHasher{},
		tokens:   &mocks.TokenIssuer{},
		notifier: &mocks.WelcomeNotifier{},
	}
	d.notifier.On("SendWelcome", mock.Anything, mock.Anything).Return(nil).Maybe()
	d.uc = usecase.NewAuthUseCase(d.users, d.hasher, d.tokens, d.notifier, testLogger())
	return d
}

func TestAuthUseCase_Register_Success(t *testing.T) {
	ctx := context.Background()
	d := newAuthDeps()
	expires := time.Now().Add(time.Hour)

	d.users.On("ExistsByEmail", ctx, "ana@crm.com").Return(false, nil)
	d.hasher.On("Hash", "segredo").Return("bcrypt-hash", nil)
	d.users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "ana@crm.com" && u.Name == "Ana" && u.ID != ""
	}), "bcrypt-hash").Return(nil)
	d.tokens.On("Issue", mock.AnythingOfType("string")).Return("token-1", expires, nil)

	session, err := d.uc.Register(ctx, "  Ana ", " ANA@crm.com ", "segredo")

	require.NoError(t, err)
	assert.Equal(t, "token-1", session.Token)
	assert.Equal(t, expires, session.ExpiresAt)
	assert.Equal(t, "ana@crm.com", session.User.Email)
	d.users.AssertExpectations(t)
}

func TestAuthUseCase_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	d := newAuthDeps()

	d.users.On("ExistsByEmail", ctx, "ana@crm.com").Return(true, nil)

	session, err := d.uc.Register(ctx, "Ana", "ana@crm.com", "segredo")

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
	assert.Nil(t, session)
	d.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	d.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAuthUseCase_Register_RaceOnUniqueEmail(t *testing.T) {
	ctx := context.Background()
	d := newAuthDeps()

	d.users.On("ExistsByEmail", ctx, "ana@crm.com").Return(false, nil)
	d.hasher.On("Hash", "segredo").Return("bcrypt-hash", nil)
	d.users.On("Create", ctx, mock.Anything, "bcrypt-hash").Return(domain.ErrEmailAlreadyRegistered)

	_, err := d.uc.Register(ctx, "Ana", "ana@crm.com", "segredo")

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
	d.tokens.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAuthUseCase_Register_Validation(t *testing.T) {
	d := newAuthDeps()

	_, err := d.uc.Register(context.Background(), "", "invalid", "123")

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{"name", "email", "password"}, verrs.Fields())
	d.users.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
}

func TestAuthUseCase_Login_Success(t *testing.T) {
	ctx := context.Background()
	d := newAuthDeps()
	user := &domain.User{ID: "u1", Name: "Ana", Email: "ana@crm.com"}

	d.users.On("GetCredentialsByEmail", ctx, "ana@crm.com").Return(&domain.UserCredentials{User: user, PasswordHash: "hash"}, nil)
	d.hasher.On("Compare", "hash", "segredo").Return(true)
	d.tokens.On("Issue", "u1").Return("token-1", time.Now(), nil)

	session, err := d.uc.Login(ctx, "Ana@CRM.com", "segredo")

	require.NoError(t, err)
	assert.Equal(t, user, session.User)
}

func TestAuthUseCase_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	d := newAuthDeps()
	user := &domain.User{ID: "u1", Email: "ana@crm.com"}

	d.users.On("GetCredentialsByEmail", ctx, "ana@crm.com").Return(&domain.UserCredentials{User: user, PasswordHash: "hash"}, nil)
	d.hasher.On("Compare", "hash", "errada").Return(false)

	session, err := d.uc.Login(ctx, "ana@crm.com", "errada")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, session)
	d.tokens.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAuthUseCase_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	d := newAuthDeps()

	d.users.On("GetCredentialsByEmail", ctx, "ghost@crm.com").Return(nil, domain.ErrUserNotFound)

	_, err := d.uc.Login(ctx, "ghost@crm.com", "segredo")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthUseCase_CurrentUser(t *testing.T) {
	ctx := context.Background()
	d := newAuthDeps()
	user := &domain.User{ID: "u1"}

	d.tokens.On("Verify", "good").Return("u1", nil)
	d.tokens.On("Verify", "orphan").Return("u2", nil)
	d.tokens.On("Verify", "bad").Return("", domain.ErrSessionInvalid)
	d.users.On("GetByID", ctx, "u1").Return(user, nil)
	d.users.On("GetByID", ctx, "u2").Return(nil, domain.ErrUserNotFound)

	got, err := d.uc.CurrentUser(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = d.uc.CurrentUser(ctx, "orphan")
	assert.ErrorIs(t, err, domain.ErrSessionInvalid)

	_, err = d.uc.CurrentUser(ctx, "bad")
	assert.ErrorIs(t, err, domain.ErrSessionInvalid)
}
