// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package services

import (
	"context"
	"fmt"

	"inkwell/internal/gateway"
	"inkwell/internal/models"
	"inkwell/internal/transform"
)

// UserService exposes the remote user read operations. Authentication is
// a separate capability (internal/auth); this service only reads the
// users table.
type UserService struct {
	gw *gateway.Client
}

// NewUserService creates a UserService on the given gateway client.
func NewUserService(gw *gateway.Client) *UserService {
	return &UserService{gw: gw}
}

// GetByID returns one user.
func (s *UserService) GetByID(ctx context.Context, id string) (models.User, error) {
	if !s.gw.Configured() {
		return models.User{}, gateway.ErrNotConfigured
	}
	var row gateway.UserRow
	err := s.gw.Select(ctx, "users", gateway.Query{
		Select:  "*",
		Filters: []gateway.Filter{gateway.Eq("id", id)},
		Single:  true,
	}, &row)
	if err != nil {
		return models.User{}, fmt.Errorf("get user %s: %w", id, err)
	}
	return transform.User(row), nil
}
