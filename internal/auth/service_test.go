// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"inkwell/internal/models"
)

func newTestService() *Service {
	return NewWithLatency("test-signing-key", 0)
}

func TestLogin_SeededAccounts(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	tests := []struct {
		email    string
		password string
		wantRole models.Role
	}{
		{"admin@blog.com", "admin123", models.RoleAdmin},
		{"user@blog.com", "user123", models.RoleUser},
	}
	for _, tt := range tests {
		sess, err := s.Login(ctx, tt.email, tt.password)
		if err != nil {
			t.Fatalf("Login(%s): %v", tt.email, err)
		}
		if sess.User.Role != tt.wantRole {
			t.Errorf("Login(%s): role = %s, want %s", tt.email, sess.User.Role, tt.wantRole)
		}
		if sess.Token == "" {
			t.Errorf("Login(%s): empty token", tt.email)
		}
		if !sess.ExpiresAt.After(time.Now().Add(6 * 24 * time.Hour)) {
			t.Errorf("Login(%s): expiry too soon: %v", tt.email, sess.ExpiresAt)
		}
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	for _, tt := range []struct{ email, password string }{
		{"admin@blog.com", "wrong"},
		{"nobody@blog.com", "admin123"},
	} {
		if _, err := s.Login(ctx, tt.email, tt.password); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%s/%s): err = %v, want ErrInvalidCredentials", tt.email, tt.password, err)
		}
	}
}

func TestRegister_ThenLogin(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	sess, err := s.Register(ctx, RegisterInput{
		Name:     "New Person",
		Email:    "new@blog.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if sess.User.Role != models.RoleUser {
		t.Errorf("new accounts must get the user role, got %s", sess.User.Role)
	}
	if sess.User.ID == "" {
		t.Error("new account has no id")
	}

	// The new account is immediately usable.
	if _, err := s.Login(ctx, "new@blog.com", "secret1"); err != nil {
		t.Errorf("Login after Register: %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := newTestService()
	_, err := s.Register(context.Background(), RegisterInput{
		Name:     "Impostor",
		Email:    "admin@blog.com",
		Password: "x",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLoginWithProvider(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	for _, provider := range []string{"github", "google"} {
		sess, err := s.LoginWithProvider(ctx, provider)
		if err != nil {
			t.Fatalf("LoginWithProvider(%s): %v", provider, err)
		}
		if sess.User.Role != models.RoleUser {
			t.Errorf("%s principal role = %s, want user", provider, sess.User.Role)
		}
	}

	if _, err := s.LoginWithProvider(ctx, "myspace"); !errors.Is(err, ErrUnknownProvider) {
		t.Errorf("unknown provider: err = %v, want ErrUnknownProvider", err)
	}
}

func TestChangePassword(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	if err := s.ChangePassword(ctx, "user@blog.com", "nope", "next"); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("wrong current password: err = %v, want ErrWrongPassword", err)
	}

	if err := s.ChangePassword(ctx, "user@blog.com", "user123", "next1234"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, err := s.Login(ctx, "user@blog.com", "user123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Error("old password still accepted after change")
	}
	if _, err := s.Login(ctx, "user@blog.com", "next1234"); err != nil {
		t.Errorf("new password rejected: %v", err)
	}
}

func TestUpdateProfile_PatchSemantics(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	sess, err := s.Login(ctx, "user@blog.com", "user123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	name := "Renamed"
	updated, err := s.UpdateProfile(ctx, sess.User, UpdateProfileInput{Name: &name})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Errorf("Name = %q", updated.Name)
	}
	if updated.Bio != sess.User.Bio {
		t.Error("nil field must leave the value untouched")
	}
	if !updated.UpdatedAt.After(sess.User.UpdatedAt) {
		t.Error("UpdatedAt not advanced")
	}
}

func TestRefresh_ReissuesForValidToken(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	sess, err := s.Login(ctx, "admin@blog.com", "admin123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	refreshed, err := s.Refresh(ctx, sess.Token)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if refreshed.User.ID != sess.User.ID {
		t.Errorf("refreshed principal = %s, want %s", refreshed.User.ID, sess.User.ID)
	}
	if refreshed.Token == "" {
		t.Error("empty refreshed token")
	}
}

func TestRefresh_RejectsGarbageAndForeignTokens(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	if _, err := s.Refresh(ctx, "not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage token: err = %v, want ErrInvalidToken", err)
	}

	// Token signed with a different key must be rejected.
	other := NewWithLatency("other-key", 0)
	sess, _ := other.Login(ctx, "admin@blog.com", "admin123")
	if _, err := s.Refresh(ctx, sess.Token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("foreign token: err = %v, want ErrInvalidToken", err)
	}
}

func TestWait_CancelledContext(t *testing.T) {
	s := NewWithLatency("k", time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Login(ctx, "admin@blog.com", "admin123"); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
