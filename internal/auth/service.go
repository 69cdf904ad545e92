// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package auth implements the stand-in authentication service: a pair of
// seeded accounts plus in-memory registration, issuing real signed JWTs.
// There is no identity backend behind it; the service exists so the rest
// of the application can be built against the final auth contract.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"inkwell/internal/models"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 7 * 24 * time.Hour

// defaultLatency approximates an identity provider round trip.
const defaultLatency = 200 * time.Millisecond

var (
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
	ErrEmailTaken         = errors.New("auth: email already registered")
	ErrWrongPassword      = errors.New("auth: current password is wrong")
	ErrInvalidToken       = errors.New("auth: invalid token")
	ErrUnknownProvider    = errors.New("auth: unknown provider")
)

// account pairs a user record with its password hash.
type account struct {
	user models.User
	hash []byte
}

// Service verifies credentials and issues tokens. Accounts live in
// memory: the two seeded ones are always present, registered ones last
// until restart.
type Service struct {
	signingKey []byte
	latency    time.Duration

	mu       sync.Mutex
	accounts map[string]*account
}

// claims is the JWT payload carried by issued tokens.
type claims struct {
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	jwt.RegisteredClaims
}

// New creates a Service with the seeded demo accounts and the default
// simulated latency.
func New(signingKey string) *Service {
	return NewWithLatency(signingKey, defaultLatency)
}

// NewWithLatency creates a Service with a custom delay. Tests pass zero.
func NewWithLatency(signingKey string, d time.Duration) *Service {
	s := &Service{
		signingKey: []byte(signingKey),
		latency:    d,
		accounts:   make(map[string]*account),
	}
	s.seed("admin@blog.com", "admin123", models.User{
		ID:     "1",
		Name:   "Blog Admin",
		Email:  "admin@blog.com",
		Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=256",
		Bio:    "Full-stack engineer focused on the modern web stack",
		Role:   models.RoleAdmin,
		SocialLinks: models.SocialLinks{
			GitHub:   "https://github.com/admin",
			Twitter:  "https://twitter.com/admin",
			LinkedIn: "https://linkedin.com/in/admin",
		},
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	})
	s.seed("user@blog.com", "user123", models.User{
		ID:        "2",
		Name:      "Regular User",
		Email:     "user@blog.com",
		Avatar:    "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=256",
		Bio:       "Technology enthusiast, always learning",
		Role:      models.RoleUser,
		CreatedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	})
	return s
}

func (s *Service) seed(email, password string, user models.User) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	s.accounts[email] = &account{user: user, hash: hash}
}

// Login verifies the email and password and returns a fresh session.
func (s *Service) Login(ctx context.Context, email, password string) (models.Session, error) {
	if err := s.wait(ctx); err != nil {
		return models.Session{}, err
	}

	s.mu.Lock()
	acct, ok := s.accounts[email]
	s.mu.Unlock()
	if !ok {
		return models.Session{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(acct.hash, []byte(password)) != nil {
		return models.Session{}, ErrInvalidCredentials
	}
	return s.issue(acct.user)
}

// RegisterInput carries the fields for a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Avatar   string
	Bio      string
}

// Register creates a new account and logs it in. Registering an email
// that already exists fails with ErrEmailTaken.
func (s *Service) Register(ctx context.Context, in RegisterInput) (models.Session, error) {
	if err := s.wait(ctx); err != nil {
		return models.Session{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Session{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Avatar:    in.Avatar,
		Bio:       in.Bio,
		Role:      models.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	if _, exists := s.accounts[in.Email]; exists {
		s.mu.Unlock()
		return models.Session{}, ErrEmailTaken
	}
	s.accounts[in.Email] = &account{user: user, hash: hash}
	s.mu.Unlock()

	return s.issue(user)
}

// LoginWithProvider simulates an OAuth flow with the named provider.
// Supported providers are "github" and "google".
func (s *Service) LoginWithProvider(ctx context.Context, provider string) (models.Session, error) {
	if err := s.wait(ctx); err != nil {
		return models.Session{}, err
	}

	now := time.Now().UTC()
	var user models.User
	switch provider {
	case "github":
		user = models.User{
			ID:          "github-user-1",
			Name:        "GitHub User",
			Email:       "github@example.com",
			Role:        models.RoleUser,
			SocialLinks: models.SocialLinks{GitHub: "https://github.com/example"},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	case "google":
		user = models.User{
			ID:        "google-user-1",
			Name:      "Google User",
			Email:     "google@example.com",
			Role:      models.RoleUser,
			CreatedAt: now,
			UpdatedAt: now,
		}
	default:
		return models.Session{}, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}
	return s.issue(user)
}

// Logout invalidates the session server-side. With no backend there is
// nothing to invalidate; the call exists so callers already speak the
// final contract.
func (s *Service) Logout(ctx context.Context) error {
	return s.wait(ctx)
}

// UpdateProfileInput patches a user profile. Nil fields are left as is.
type UpdateProfileInput struct {
	Name        *string
	Avatar      *string
	Bio         *string
	SocialLinks *models.SocialLinks
}

// UpdateProfile applies the patch to the given user and returns the
// updated record, stamping UpdatedAt.
func (s *Service) UpdateProfile(ctx context.Context, user models.User, in UpdateProfileInput) (models.User, error) {
	if err := s.wait(ctx); err != nil {
		return models.User{}, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Avatar != nil {
		user.Avatar = *in.Avatar
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.SocialLinks != nil {
		user.SocialLinks = *in.SocialLinks
	}
	user.UpdatedAt = time.Now().UTC()

	s.mu.Lock()
	if acct, ok := s.accounts[user.Email]; ok {
		acct.user = user
	}
	s.mu.Unlock()

	return user, nil
}

// ChangePassword verifies the current password for the account and
// replaces it.
func (s *Service) ChangePassword(ctx context.Context, email, current, next string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.accounts[email]
	if !ok {
		return ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(acct.hash, []byte(current)) != nil {
		return ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	acct.hash = hash
	return nil
}

// RequestPasswordReset pretends to send a reset email.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	slog.Info("password reset email requested", "email", email)
	return nil
}

// ResetPassword pretends to complete a password reset.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	return s.wait(ctx)
}

// Refresh validates the given token and issues a fresh one for the same
// account. An unparseable, tampered or expired token fails with
// ErrInvalidToken.
func (s *Service) Refresh(ctx context.Context, token string) (models.Session, error) {
	if err := s.wait(ctx); err != nil {
		return models.Session{}, err
	}

	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil || !parsed.Valid {
		return models.Session{}, ErrInvalidToken
	}

	s.mu.Lock()
	acct, ok := s.accounts[c.Email]
	s.mu.Unlock()
	if !ok {
		// Provider-login principals have no account entry; rebuild the
		// user from the claims we carry.
		return s.issue(models.User{ID: c.Subject, Email: c.Email, Role: c.Role})
	}
	return s.issue(acct.user)
}

// issue signs a token for the user and wraps it in a session.
func (s *Service) issue(user models.User) (models.Session, error) {
	now := time.Now().UTC()
	expires := now.Add(TokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("sign token: %w", err)
	}
	return models.Session{Token: signed, User: user, ExpiresAt: expires}, nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
