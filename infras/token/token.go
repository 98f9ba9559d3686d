package token

//go:generate go run go.uber.org/mock/mockgen -source=./token.go -destination=./mocks/token_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"guesthouse/config"
	"guesthouse/shared/constant"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims is the staff identity embedded in the session token. The token is
// stateless: there is no server-side revocation list.
type Claims struct {
	StaffID string `json:"staff_id"`
	EmailID string `json:"email_id"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// Token issues and verifies the signed session credential carried by the
// currentUserToken cookie.
type Token interface {
	Generate(staffID, emailID, role string) (signed string, expiresAt time.Time, err error)
	Validate(tokenString string) (*Claims, error)
	SessionCookie(signed string, expiresAt time.Time) *http.Cookie
}

type Service struct {
	config *config.Config
}

func New(cfg *config.Config) Token {
	return &Service{
		config: cfg,
	}
}

// Generate signs a session token that expires exactly Session.ExpireMin
// minutes after issuance.
func (s *Service) Generate(staffID, emailID, role string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(s.config.Session.ExpireMin) * time.Minute)

	claims := Claims{
		StaffID: staffID,
		EmailID: emailID,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.App.Name,
			Subject:   staffID,
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.config.Session.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Validate verifies the signature and expiry and returns the embedded claims.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(s.config.Session.Secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// SessionCookie wraps a signed token in the currentUserToken cookie. Cross-site
// attributes are only set in production-like deployments; development keeps Lax
// so the cookie works without TLS.
func (s *Service) SessionCookie(signed string, expiresAt time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     constant.SessionCookieName,
		Value:    signed,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Round(time.Second) / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	if s.config.Server.Env == constant.ServerEnvProduction {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}

	return cookie
}
