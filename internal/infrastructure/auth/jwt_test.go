package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walkout/backend/internal/infrastructure/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                "test-secret-key-that-is-long-enough",
		AccessTokenExpiration: time.Hour,
		Issuer:                "walkout-test",
	}
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := NewJWTService(testJWTConfig())
	userID := uuid.New()

	token, err := service.GenerateAccessToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)

	claims, err := service.ValidateAccessToken(token.Token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	parsed, err := claims.ParseUserID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessTokenExpiration = -time.Minute
	service := NewJWTService(cfg)

	token, err := service.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(token.Token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	service := NewJWTService(testJWTConfig())
	token, err := service.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.Secret = "a-completely-different-secret-value"
	other := NewJWTService(otherCfg)

	_, err = other.ValidateAccessToken(token.Token)
	assert.Error(t, err)
}

func TestJWTService_GarbageToken(t *testing.T) {
	service := NewJWTService(testJWTConfig())

	_, err := service.ValidateAccessToken("not.a.token")
	assert.Error(t, err)

	_, err = service.ValidateAccessToken("")
	assert.Error(t, err)
}
