// cmd/veriscope/auth.go
package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues and verifies JWT bearer tokens backed by the user store
type AuthService struct {
	store  *Store
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates the auth service. A nil store disables accounts; the
// middleware then lets requests through as anonymous so a database outage
// never blocks claim evaluation.
func NewAuthService(store *Store, cfg *Config) *AuthService {
	return &AuthService{
		store:  store,
		secret: []byte(cfg.JWTSecret),
		ttl:    time.Duration(cfg.TokenTTLHours) * time.Hour,
	}
}

const anonymousUserID = "anonymous"

// Register creates a new account with a bcrypt-hashed password
func (a *AuthService) Register(ctx context.Context, email, password string) (*User, error) {
	if a.store == nil {
		return nil, NewAuthError(ErrAuthCredentials, "account storage is disabled", nil)
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(password) < 8 {
		return nil, NewAuthError(ErrAuthCredentials, "email and a password of at least 8 characters are required", nil)
	}

	existing, err := a.store.UserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewAuthError(ErrAuthDuplicate, "email is already registered", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewAuthError(ErrAuthCredentials, "failed to hash password", err)
	}

	user := &User{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := a.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns a signed token
func (a *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if a.store == nil {
		return "", NewAuthError(ErrAuthCredentials, "account storage is disabled", nil)
	}

	user, err := a.store.UserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", NewAuthError(ErrAuthCredentials, "invalid email or password", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewAuthError(ErrAuthCredentials, "invalid email or password", nil)
	}

	return a.issueToken(user.ID)
}

// issueToken signs a token for a user id
func (a *AuthService) issueToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(a.ttl).Unix(),
	})

	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", NewAuthError(ErrAuthToken, "failed to sign token", err)
	}
	return signed, nil
}

// parseToken verifies a token and returns the user id it carries
func (a *AuthService) parseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", NewAuthError(ErrAuthToken, "invalid token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", NewAuthError(ErrAuthToken, "invalid token claims", nil)
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", NewAuthError(ErrAuthToken, "token missing subject", nil)
	}
	return sub, nil
}

type contextKey string

const userIDKey contextKey = "user_id"

// UserIDFromContext returns the authenticated user id on a request context
func UserIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey).(string); ok {
		return id
	}
	return anonymousUserID
}

// Middleware enforces bearer-token auth on protected routes. With accounts
// disabled it tags requests anonymous instead of rejecting them.
func (a *AuthService) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.store == nil {
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, anonymousUserID)))
			return
		}

		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			respondWithError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		userID, err := a.parseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}
