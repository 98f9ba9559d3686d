package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guesthouse/config"
	"guesthouse/infras/otel/mocks"
	"guesthouse/infras/token"
	"guesthouse/shared/constant"
	"guesthouse/transport/http/middleware"
)

func newTestConfig() *config.Config {
	cfg := new(config.Config)
	cfg.App.Name = "guesthouse"
	cfg.Server.Env = constant.ServerEnvDevelopment
	cfg.Session.Secret = "test-secret"
	cfg.Session.ExpireMin = 60

	return cfg
}

type authFixture struct {
	token token.Token
	auth  middleware.Auth
}

func newAuthFixture(cfg *config.Config) *authFixture {
	tokenService := token.New(cfg)

	return &authFixture{
		token: tokenService,
		auth:  middleware.NewAuthMiddleware(tokenService, mocks.NewOtel()),
	}
}

func sessionCookie(t *testing.T, svc token.Token, role string) *http.Cookie {
	t.Helper()

	signed, expiresAt, err := svc.Generate("8c0b72da-3f63-4a3b-9a3f-24f95f65d0c1", "jane@example.com", role)
	require.NoError(t, err)

	return svc.SessionCookie(signed, expiresAt)
}

func TestSessionMiddleware(t *testing.T) {
	t.Run("missing cookie is rejected before the handler", func(t *testing.T) {
		f := newAuthFixture(newTestConfig())

		nextCalled := false
		handler := f.auth.Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/staff", nil))

		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Missing session cookie")
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		f := newAuthFixture(newTestConfig())

		nextCalled := false
		handler := f.auth.Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
		}))

		cookie := sessionCookie(t, f.token, constant.RoleStaff)
		cookie.Value += "x"

		request := httptest.NewRequest(http.MethodGet, "/v1/staff", nil)
		request.AddCookie(cookie)

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid session")
	})

	t.Run("expired token is reported as an expired session", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.Session.ExpireMin = -1
		f := newAuthFixture(cfg)

		nextCalled := false
		handler := f.auth.Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
		}))

		signed, _, err := f.token.Generate("id", "jane@example.com", constant.RoleStaff)
		require.NoError(t, err)

		request := httptest.NewRequest(http.MethodGet, "/v1/staff", nil)
		request.AddCookie(&http.Cookie{Name: constant.SessionCookieName, Value: signed})

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Session has expired")
	})

	t.Run("valid cookie loads the staff identity into the context", func(t *testing.T) {
		f := newAuthFixture(newTestConfig())

		var gotStaffID, gotEmail, gotRole string
		handler := f.auth.Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotStaffID, _ = r.Context().Value(constant.ContextKeyStaffID).(string)
			gotEmail, _ = r.Context().Value(constant.ContextKeyStaffEmail).(string)
			gotRole, _ = r.Context().Value(constant.ContextKeyStaffRole).(string)
		}))

		request := httptest.NewRequest(http.MethodGet, "/v1/staff", nil)
		request.AddCookie(sessionCookie(t, f.token, constant.RoleStaff))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "8c0b72da-3f63-4a3b-9a3f-24f95f65d0c1", gotStaffID)
		assert.Equal(t, "jane@example.com", gotEmail)
		assert.Equal(t, constant.RoleStaff, gotRole)
	})
}

func TestAdminOnlyMiddleware(t *testing.T) {
	listStaffs := func(reached *bool) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*reached = true
			w.WriteHeader(http.StatusOK)
		})
	}

	t.Run("staff role cannot reach admin routes", func(t *testing.T) {
		f := newAuthFixture(newTestConfig())

		reached := false
		handler := f.auth.Session(f.auth.AdminOnly(listStaffs(&reached)))

		request := httptest.NewRequest(http.MethodGet, "/v1/staff", nil)
		request.AddCookie(sessionCookie(t, f.token, constant.RoleStaff))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Unauthorized Access")
	})

	t.Run("listing without a valid cookie never reaches the handler", func(t *testing.T) {
		f := newAuthFixture(newTestConfig())

		reached := false
		handler := f.auth.Session(f.auth.AdminOnly(listStaffs(&reached)))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/staff", nil))

		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("admin role passes through", func(t *testing.T) {
		f := newAuthFixture(newTestConfig())

		reached := false
		handler := f.auth.Session(f.auth.AdminOnly(listStaffs(&reached)))

		request := httptest.NewRequest(http.MethodGet, "/v1/staff", nil)
		request.AddCookie(sessionCookie(t, f.token, constant.RoleAdmin))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.True(t, reached)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
