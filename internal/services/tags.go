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

// TagService exposes the remote tag operations.
type TagService struct {
	gw *gateway.Client
}

// NewTagService creates a TagService on the given gateway client.
func NewTagService(gw *gateway.Client) *TagService {
	return &TagService{gw: gw}
}

// CreateTagInput carries the fields for a new tag.
type CreateTagInput struct {
	Name  string
	Color string
}

// UpdateTagInput patches a tag. Nil fields are left untouched.
type UpdateTagInput struct {
	Name  *string
	Color *string
}

// GetAll returns every tag ordered by name.
func (s *TagService) GetAll(ctx context.Context) ([]models.Tag, error) {
	if !s.gw.Configured() {
		return nil, gateway.ErrNotConfigured
	}
	var rows []gateway.TagRow
	err := s.gw.Select(ctx, "tags", gateway.Query{Select: "*", Order: "name.asc"}, &rows)
	if err != nil {
		return nil, fmt.Errorf("get tags: %w", err)
	}
	return transform.Tags(rows), nil
}

// GetByID returns one tag.
func (s *TagService) GetByID(ctx context.Context, id string) (models.Tag, error) {
	if !s.gw.Configured() {
		return models.Tag{}, gateway.ErrNotConfigured
	}
	var row gateway.TagRow
	err := s.gw.Select(ctx, "tags", gateway.Query{
		Select:  "*",
		Filters: []gateway.Filter{gateway.Eq("id", id)},
		Single:  true,
	}, &row)
	if err != nil {
		return models.Tag{}, fmt.Errorf("get tag %s: %w", id, err)
	}
	return transform.Tag(row), nil
}

// Create inserts a new tag and returns its id.
func (s *TagService) Create(ctx context.Context, in CreateTagInput) (string, error) {
	if !s.gw.Configured() {
		return "", gateway.ErrNotConfigured
	}
	var row gateway.TagRow
	if err := s.gw.Insert(ctx, "tags", gateway.TagInsert{Name: in.Name, Color: in.Color}, &row); err != nil {
		return "", fmt.Errorf("create tag: %w", err)
	}
	return row.ID, nil
}

// Update patches the tag row.
func (s *TagService) Update(ctx context.Context, id string, in UpdateTagInput) error {
	if !s.gw.Configured() {
		return gateway.ErrNotConfigured
	}
	patch := gateway.TagUpdate{Name: in.Name, Color: in.Color, UpdatedAt: nowStamp()}
	if err := s.gw.Update(ctx, "tags", patch, gateway.Eq("id", id)); err != nil {
		return fmt.Errorf("update tag %s: %w", id, err)
	}
	return nil
}

// Delete removes the tag row.
func (s *TagService) Delete(ctx context.Context, id string) error {
	if !s.gw.Configured() {
		return gateway.ErrNotConfigured
	}
	if err := s.gw.Delete(ctx, "tags", gateway.Eq("id", id)); err != nil {
		return fmt.Errorf("delete tag %s: %w", id, err)
	}
	return nil
}
