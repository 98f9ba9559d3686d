package middleware

import (
	"context"
	"errors"
	"net/http"

	"guesthouse/infras/otel"
	"guesthouse/infras/token"
	"guesthouse/shared/constant"
	"guesthouse/shared/failure"
	"guesthouse/transport/http/response"
)

// Auth guards staff-management endpoints behind the session cookie.
type Auth interface {
	Session(http.Handler) http.Handler
	AdminOnly(http.Handler) http.Handler
}

type authImpl struct {
	tokenService token.Token
	otel         otel.Otel
}

func NewAuthMiddleware(tokenService token.Token, otel otel.Otel) Auth {
	return &authImpl{
		tokenService: tokenService,
		otel:         otel,
	}
}

// Session validates the currentUserToken cookie and loads the staff identity
// into the request context. A missing or broken cookie never reveals which
// check failed.
func (m *authImpl) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "session.middleware")

		cookie, err := request.Cookie(constant.SessionCookieName)
		if err != nil {
			err := failure.Unauthorized("Missing session cookie")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		claims, err := m.tokenService.Validate(cookie.Value)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, token.ErrExpiredToken):
				message = "Session has expired"
			default:
				message = "Invalid session"
			}

			err := failure.Unauthorized(message)
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		if claims.StaffID == "" || claims.EmailID == "" {
			err := failure.Unauthorized("Invalid session")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyStaffID, claims.StaffID)
		ctx = context.WithValue(ctx, constant.ContextKeyStaffEmail, claims.EmailID)
		ctx = context.WithValue(ctx, constant.ContextKeyStaffRole, claims.Role)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// AdminOnly requires a prior Session middleware in the chain.
func (m *authImpl) AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "admin_only.middleware")

		role, _ := ctx.Value(constant.ContextKeyStaffRole).(string)
		if role != constant.RoleAdmin {
			err := failure.ErrUnauthorizedAccess

			scope.SetAttributes(map[string]any{
				"staff_role": role,
				"reason":     "role_not_allowed",
			})
			scope.TraceError(err)
			scope.End()

			response.WithError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}
