package auth_test

import (
	"testing"
	"time"

	"mini-crm/internal/auth"
	"mini-crm/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("segredo123")

	require.NoError(t, err)
	assert.NotEqual(t, "segredo123", hash)
	assert.True(t, hasher.Compare(hash, "segredo123"))
	assert.False(t, hasher.Compare(hash, "outra-senha"))
}

func TestBcryptHasher_RejectsShortPassword(t *testing.T) {
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	_, err := hasher.Hash("12345")

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{"password"}, verrs.Fields())
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	manager := auth.NewTokenManager("test-secret", time.Hour).WithClock(func() time.Time { return now })

	token, expiresAt, err := manager.Issue("user-1")
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	userID, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	now := time.Now()
	manager := auth.NewTokenManager("test-secret", time.Minute).WithClock(func() time.Time { return now })

	token, _, err := manager.Issue("user-1")
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = manager.Verify(token)

	assert.ErrorIs(t, err, domain.ErrSessionInvalid)
}

func TestTokenManager_RejectsForeignSignature(t *testing.T) {
	issuer := auth.NewTokenManager("secret-a", time.Hour)
	verifier := auth.NewTokenManager("secret-b", time.Hour)

	token, _, err := issuer.Issue("user-1")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, domain.ErrSessionInvalid)

	_, err = verifier.Verify("")
	assert.ErrorIs(t, err, domain.ErrSessionInvalid)
}

func TestTokenManager_RequiresSecret(t *testing.T) {
	_, _, err := auth.NewTokenManager("", time.Hour).Issue("user-1")

	assert.Error(t, err)
}
