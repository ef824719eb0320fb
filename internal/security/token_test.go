package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"drivesync-backend/internal/domain"
)

const testSecret = "unit-test-secret-that-is-long-enough!"

func TestTokenManager_AccessToken(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, 24*time.Hour)

	token, err := tm.GenerateAccessToken(7, "alice", domain.UserRoleAdmin)
	assert.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int32(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, domain.UserRoleAdmin, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.Type)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenManager_RefreshToken(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, 24*time.Hour)

	token, err := tm.GenerateRefreshToken(7, "alice")
	assert.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
	assert.Empty(t, claims.Role)
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager(testSecret, -time.Minute, 24*time.Hour)

	token, err := tm.GenerateAccessToken(7, "alice", domain.UserRoleCustomer)
	assert.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, 24*time.Hour)
	other := NewTokenManager("a-completely-different-signing-secret!!", time.Hour, 24*time.Hour)

	token, err := tm.GenerateAccessToken(7, "alice", domain.UserRoleCustomer)
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, 24*time.Hour)

	_, err := tm.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
