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

// CategoryService exposes the remote category operations.
type CategoryService struct {
	gw *gateway.Client
}

// NewCategoryService creates a CategoryService on the given gateway client.
func NewCategoryService(gw *gateway.Client) *CategoryService {
	return &CategoryService{gw: gw}
}

// CreateCategoryInput carries the fields for a new category.
type CreateCategoryInput struct {
	Name        string
	Description string
	Color       string
}

// UpdateCategoryInput patches a category. Nil fields are left untouched.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
	Color       *string
}

// GetAll returns every category ordered by name.
func (s *CategoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	if !s.gw.Configured() {
		return nil, gateway.ErrNotConfigured
	}
	var rows []gateway.CategoryRow
	err := s.gw.Select(ctx, "categories", gateway.Query{Select: "*", Order: "name.asc"}, &rows)
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	return transform.Categories(rows), nil
}

// GetByID returns one category.
func (s *CategoryService) GetByID(ctx context.Context, id string) (models.Category, error) {
	if !s.gw.Configured() {
		return models.Category{}, gateway.ErrNotConfigured
	}
	var row gateway.CategoryRow
	err := s.gw.Select(ctx, "categories", gateway.Query{
		Select:  "*",
		Filters: []gateway.Filter{gateway.Eq("id", id)},
		Single:  true,
	}, &row)
	if err != nil {
		return models.Category{}, fmt.Errorf("get category %s: %w", id, err)
	}
	return transform.Category(row), nil
}

// Create inserts a new category and returns its id.
func (s *CategoryService) Create(ctx context.Context, in CreateCategoryInput) (string, error) {
	if !s.gw.Configured() {
		return "", gateway.ErrNotConfigured
	}
	var row gateway.CategoryRow
	insert := gateway.CategoryInsert{Name: in.Name, Description: in.Description, Color: in.Color}
	if err := s.gw.Insert(ctx, "categories", insert, &row); err != nil {
		return "", fmt.Errorf("create category: %w", err)
	}
	return row.ID, nil
}

// Update patches the category row.
func (s *CategoryService) Update(ctx context.Context, id string, in UpdateCategoryInput) error {
	if !s.gw.Configured() {
		return gateway.ErrNotConfigured
	}
	patch := gateway.CategoryUpdate{
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
		UpdatedAt:   nowStamp(),
	}
	if err := s.gw.Update(ctx, "categories", patch, gateway.Eq("id", id)); err != nil {
		return fmt.Errorf("update category %s: %w", id, err)
	}
	return nil
}

// Delete removes the category row.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if !s.gw.Configured() {
		return gateway.ErrNotConfigured
	}
	if err := s.gw.Delete(ctx, "categories", gateway.Eq("id", id)); err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	return nil
}
