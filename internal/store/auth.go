// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"inkwell/internal/auth"
	"inkwell/internal/models"
	"inkwell/internal/session"
)

// AuthState describes where the auth store is in its lifecycle.
type AuthState string

const (
	StateAnonymous      AuthState = "anonymous"
	StateAuthenticating AuthState = "authenticating"
	StateAuthenticated  AuthState = "authenticated"
)

// ErrNotAuthenticated is returned by operations that require a signed-in
// principal.
var ErrNotAuthenticated = errors.New("store: not authenticated")

// AuthService is the credential surface the auth store consumes.
type AuthService interface {
	Login(ctx context.Context, email, password string) (models.Session, error)
	Register(ctx context.Context, in auth.RegisterInput) (models.Session, error)
	LoginWithProvider(ctx context.Context, provider string) (models.Session, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, user models.User, in auth.UpdateProfileInput) (models.User, error)
	ChangePassword(ctx context.Context, email, current, next string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	Refresh(ctx context.Context, token string) (models.Session, error)
}

// AuthStore tracks the authenticated principal and keeps it in sync
// with local persistence, so a restart restores the session exactly.
// A failed operation always lands the store back in the anonymous state
// with the error recorded; it never half-authenticates.
type AuthStore struct {
	svc     AuthService
	persist *session.Store

	mu      sync.RWMutex
	state   AuthState
	user    models.User
	token   string
	lastErr error
}

// NewAuthStore creates an AuthStore and hydrates it from local
// persistence. Corrupted persisted state is cleared, not guessed at.
func NewAuthStore(svc AuthService, persist *session.Store) *AuthStore {
	s := &AuthStore{svc: svc, persist: persist, state: StateAnonymous}
	s.hydrate()
	return s
}

// hydrate restores the principal saved by a previous run. Both the token
// and the user record must be present and the user must unmarshal; any
// defect clears the persisted keys and leaves the store anonymous.
func (s *AuthStore) hydrate() {
	token, tokenErr := s.persist.Get(session.KeyAuthToken)
	raw, userErr := s.persist.Get(session.KeyAuthUser)
	if tokenErr != nil || userErr != nil {
		// One half without the other is leftover state from an
		// interrupted write; drop whichever half survived.
		if tokenErr == nil || userErr == nil {
			s.clearPersisted()
		}
		return
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		slog.Warn("persisted auth state corrupted, clearing", "error", err)
		s.clearPersisted()
		return
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = user
	s.token = token
	s.mu.Unlock()
}

// Login authenticates with email and password. On success the principal
// is stored and persisted; on failure the store returns to anonymous.
func (s *AuthStore) Login(ctx context.Context, email, password string) error {
	s.begin()
	sess, err := s.svc.Login(ctx, email, password)
	if err != nil {
		s.fail(err)
		return err
	}
	s.adopt(sess)
	return nil
}

// Register creates an account and signs it in.
func (s *AuthStore) Register(ctx context.Context, in auth.RegisterInput) error {
	s.begin()
	sess, err := s.svc.Register(ctx, in)
	if err != nil {
		s.fail(err)
		return err
	}
	s.adopt(sess)
	return nil
}

// LoginWithProvider signs in through a third-party provider.
func (s *AuthStore) LoginWithProvider(ctx context.Context, provider string) error {
	s.begin()
	sess, err := s.svc.LoginWithProvider(ctx, provider)
	if err != nil {
		s.fail(err)
		return err
	}
	s.adopt(sess)
	return nil
}

// Logout signs out. The remote call is best effort: local state and
// persistence are cleared even when it fails.
func (s *AuthStore) Logout(ctx context.Context) {
	if err := s.svc.Logout(ctx); err != nil {
		slog.Warn("remote logout failed, clearing local state anyway", "error", err)
	}
	s.reset(nil)
}

// UpdateProfile patches the signed-in user's profile and re-persists it.
func (s *AuthStore) UpdateProfile(ctx context.Context, in auth.UpdateProfileInput) error {
	s.mu.RLock()
	user := s.user
	authed := s.state == StateAuthenticated
	s.mu.RUnlock()
	if !authed {
		return ErrNotAuthenticated
	}

	updated, err := s.svc.UpdateProfile(ctx, user, in)
	if err != nil {
		s.recordErr(err)
		return err
	}

	s.mu.Lock()
	s.user = updated
	s.mu.Unlock()
	s.persistUser(updated)
	return nil
}

// ChangePassword changes the signed-in user's password.
func (s *AuthStore) ChangePassword(ctx context.Context, current, next string) error {
	s.mu.RLock()
	email := s.user.Email
	authed := s.state == StateAuthenticated
	s.mu.RUnlock()
	if !authed {
		return ErrNotAuthenticated
	}

	if err := s.svc.ChangePassword(ctx, email, current, next); err != nil {
		s.recordErr(err)
		return err
	}
	return nil
}

// RequestPasswordReset asks for a reset email. Works while anonymous.
func (s *AuthStore) RequestPasswordReset(ctx context.Context, email string) error {
	return s.svc.RequestPasswordReset(ctx, email)
}

// ResetPassword completes a reset started by RequestPasswordReset.
func (s *AuthStore) ResetPassword(ctx context.Context, token, newPassword string) error {
	return s.svc.ResetPassword(ctx, token, newPassword)
}

// RefreshToken exchanges the current token for a fresh one. A refresh
// failure means the session is no longer trustworthy, so the store is
// forced back to anonymous.
func (s *AuthStore) RefreshToken(ctx context.Context) error {
	s.mu.RLock()
	token := s.token
	authed := s.state == StateAuthenticated
	s.mu.RUnlock()
	if !authed {
		return ErrNotAuthenticated
	}

	sess, err := s.svc.Refresh(ctx, token)
	if err != nil {
		slog.Warn("token refresh failed, dropping session", "error", err)
		s.reset(err)
		return err
	}
	s.adopt(sess)
	return nil
}

// State returns the current lifecycle state.
func (s *AuthStore) State() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsAuthenticated reports whether a principal is signed in.
func (s *AuthStore) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// IsAdmin reports whether the signed-in principal is an admin.
func (s *AuthStore) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StateAuthenticated && s.user.IsAdmin()
}

// User returns the signed-in principal, if any.
func (s *AuthStore) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateAuthenticated {
		return models.User{}, false
	}
	return s.user, true
}

// Token returns the current session token, if any.
func (s *AuthStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateAuthenticated {
		return "", false
	}
	return s.token, true
}

// Err returns the last auth error, cleared by the next successful
// operation.
func (s *AuthStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *AuthStore) begin() {
	s.mu.Lock()
	s.state = StateAuthenticating
	s.lastErr = nil
	s.mu.Unlock()
}

// adopt installs the session and persists it.
func (s *AuthStore) adopt(sess models.Session) {
	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = sess.User
	s.token = sess.Token
	s.lastErr = nil
	s.mu.Unlock()

	if err := s.persist.Set(session.KeyAuthToken, sess.Token); err != nil {
		slog.Warn("persist auth token failed", "error", err)
	}
	s.persistUser(sess.User)
}

func (s *AuthStore) recordErr(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}

// fail lands the store back in anonymous with the error recorded.
func (s *AuthStore) fail(err error) {
	s.mu.Lock()
	s.state = StateAnonymous
	s.user = models.User{}
	s.token = ""
	s.lastErr = err
	s.mu.Unlock()
}

// reset clears state and persistence.
func (s *AuthStore) reset(err error) {
	s.fail(err)
	s.clearPersisted()
}

func (s *AuthStore) persistUser(user models.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		slog.Warn("marshal auth user failed", "error", err)
		return
	}
	if err := s.persist.Set(session.KeyAuthUser, string(raw)); err != nil {
		slog.Warn("persist auth user failed", "error", err)
	}
}

func (s *AuthStore) clearPersisted() {
	if err := s.persist.Delete(session.KeyAuthToken); err != nil {
		slog.Warn("clear auth token failed", "error", err)
	}
	if err := s.persist.Delete(session.KeyAuthUser); err != nil {
		slog.Warn("clear auth user failed", "error", err)
	}
}
