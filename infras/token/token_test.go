package token_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guesthouse/config"
	"guesthouse/infras/token"
	"guesthouse/shared/constant"
)

func newTestConfig(env string) *config.Config {
	cfg := new(config.Config)
	cfg.App.Name = "guesthouse"
	cfg.Server.Env = env
	cfg.Session.Secret = "test-secret"
	cfg.Session.ExpireMin = 60

	return cfg
}

func TestGenerateAndValidate(t *testing.T) {
	svc := token.New(newTestConfig(constant.ServerEnvDevelopment))

	signed, expiresAt, err := svc.Generate("8c0b72da-3f63-4a3b-9a3f-24f95f65d0c1", "jane@example.com", constant.RoleStaff)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	assert.WithinDuration(t, time.Now().Add(60*time.Minute), expiresAt, 5*time.Second)

	claims, err := svc.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, "8c0b72da-3f63-4a3b-9a3f-24f95f65d0c1", claims.StaffID)
	assert.Equal(t, "jane@example.com", claims.EmailID)
	assert.Equal(t, constant.RoleStaff, claims.Role)
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	svc := token.New(newTestConfig(constant.ServerEnvDevelopment))

	signed, _, err := svc.Generate("id", "jane@example.com", constant.RoleStaff)
	require.NoError(t, err)

	other := token.New(newTestConfig(constant.ServerEnvDevelopment))
	claims, err := other.Validate(signed + "x")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	svc := token.New(newTestConfig(constant.ServerEnvDevelopment))

	signed, _, err := svc.Generate("id", "jane@example.com", constant.RoleAdmin)
	require.NoError(t, err)

	cfg := newTestConfig(constant.ServerEnvDevelopment)
	cfg.Session.Secret = "another-secret"

	claims, err := token.New(cfg).Validate(signed)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestSessionCookieAttributes(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour)

	t.Run("development keeps Lax without Secure", func(t *testing.T) {
		svc := token.New(newTestConfig(constant.ServerEnvDevelopment))
		cookie := svc.SessionCookie("signed-token", expiresAt)

		assert.Equal(t, constant.SessionCookieName, cookie.Name)
		assert.Equal(t, "signed-token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.False(t, cookie.Secure)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
		assert.InDelta(t, 3600, cookie.MaxAge, 2)
	})

	t.Run("production switches to Secure None", func(t *testing.T) {
		svc := token.New(newTestConfig(constant.ServerEnvProduction))
		cookie := svc.SessionCookie("signed-token", expiresAt)

		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	})
}
