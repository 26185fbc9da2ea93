package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/pizzastore/pizzastore-be/internal/config"
)

// contextKey is the private type for context keys set by this package.
type contextKey string

// ClaimsKey is the context key under which the middleware stores the
// validated token claims.
const ClaimsKey = contextKey("tokenClaims")

// TokenService issues and validates HS256-signed session tokens. All knobs
// come from the configuration passed at construction; the service itself is
// stateless.
type TokenService struct {
	secret   []byte
	issuer   string
	audience string
	lifetime time.Duration
}

// NewTokenService creates a TokenService from the JWT configuration.
func NewTokenService(cfg config.JwtConfig) *TokenService {
	return &TokenService{
		secret:   []byte(cfg.SecretKey),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		lifetime: time.Duration(cfg.LifetimeMinutes) * time.Minute,
	}
}

// Issue creates a new signed token carrying issuer, audience, expiry and a
// random token id. It deliberately embeds no user identity: a token proves
// that a login happened, not who performed it.
func (s *TokenService) Issue() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Audience:  jwt.ClaimStrings{s.audience},
		ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses a token string and checks signature, signing method,
// issuer, audience and expiry. Any mismatch yields an error.
func (s *TokenService) Validate(tokenStr string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(token *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// Middleware creates a middleware for protecting routes. Requests without a
// valid bearer token are rejected with 401 before the handler runs.
func (s *TokenService) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var tokenStr string

			authHeader := r.Header.Get("Authorization")
			if authHeader != "" {
				parts := strings.SplitN(authHeader, "Bearer ", 2)
				if len(parts) == 2 {
					tokenStr = parts[1]
				}
			}

			if tokenStr == "" {
				http.Error(w, "Missing auth token", http.StatusUnauthorized)
				return
			}

			claims, err := s.Validate(tokenStr)
			if err != nil {
				log.Warn().Err(err).Str("path", r.URL.Path).Msg("Rejected bearer token")
				http.Error(w, "Invalid auth token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
