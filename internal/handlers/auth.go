// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/auth"
	"inkwell/internal/models"
	"inkwell/internal/store"
)

// Auth groups the account lifecycle handlers over the auth store.
type Auth struct {
	authStore *store.AuthStore
}

// NewAuth creates a new Auth handler group.
func NewAuth(authStore *store.AuthStore) *Auth {
	return &Auth{authStore: authStore}
}

// sessionResponse is what successful sign-in endpoints return.
type sessionResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

func (a *Auth) session(w http.ResponseWriter) {
	user, _ := a.authStore.User()
	token, _ := a.authStore.Token()
	writeJSON(w, http.StatusOK, sessionResponse{User: user, Token: token})
}

// authStatus maps auth failures onto HTTP status codes.
func authStatus(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, auth.ErrWrongPassword):
		return http.StatusForbidden
	case errors.Is(err, auth.ErrUnknownProvider):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotAuthenticated):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login signs in with email and password.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := a.authStore.Login(r.Context(), req.Email, req.Password); err != nil {
		writeError(w, authStatus(err), err)
		return
	}
	a.session(w)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

// Register creates an account and signs it in.
func (a *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	err := a.authStore.Register(r.Context(), auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Avatar:   req.Avatar,
		Bio:      req.Bio,
	})
	if err != nil {
		writeError(w, authStatus(err), err)
		return
	}
	a.session(w)
}

// ProviderLogin signs in through a third-party provider.
func (a *Auth) ProviderLogin(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, "provider")
	if err := a.authStore.LoginWithProvider(r.Context(), provider); err != nil {
		writeError(w, authStatus(err), err)
		return
	}
	a.session(w)
}

// Logout signs out and clears local state.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.authStore.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the signed-in principal.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := a.authStore.User()
	if !ok {
		writeError(w, http.StatusUnauthorized, store.ErrNotAuthenticated)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type updateProfileRequest struct {
	Name        *string             `json:"name,omitempty"`
	Avatar      *string             `json:"avatar,omitempty"`
	Bio         *string             `json:"bio,omitempty"`
	SocialLinks *models.SocialLinks `json:"socialLinks,omitempty"`
}

// UpdateProfile patches the signed-in user's profile.
func (a *Auth) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	err := a.authStore.UpdateProfile(r.Context(), auth.UpdateProfileInput{
		Name:        req.Name,
		Avatar:      req.Avatar,
		Bio:         req.Bio,
		SocialLinks: req.SocialLinks,
	})
	if err != nil {
		writeError(w, authStatus(err), err)
		return
	}
	user, _ := a.authStore.User()
	writeJSON(w, http.StatusOK, user)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword changes the signed-in user's password.
func (a *Auth) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := a.authStore.ChangePassword(r.Context(), req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, authStatus(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type resetRequestBody struct {
	Email string `json:"email"`
}

// RequestPasswordReset asks for a reset email.
func (a *Auth) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req resetRequestBody
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := a.authStore.RequestPasswordReset(r.Context(), req.Email); err != nil {
		writeError(w, authStatus(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type resetBody struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// ResetPassword completes a password reset.
func (a *Auth) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetBody
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := a.authStore.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		writeError(w, authStatus(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Refresh exchanges the current token for a fresh one.
func (a *Auth) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := a.authStore.RefreshToken(r.Context()); err != nil {
		writeError(w, authStatus(err), err)
		return
	}
	a.session(w)
}
