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

// CommentService exposes the remote comment operations.
type CommentService struct {
	gw *gateway.Client
}

// NewCommentService creates a CommentService on the given gateway client.
func NewCommentService(gw *gateway.Client) *CommentService {
	return &CommentService{gw: gw}
}

// CreateCommentInput carries the fields for a new comment. ParentID, when
// non-empty, points at the comment being replied to.
type CreateCommentInput struct {
	ArticleID string
	Content   string
	ParentID  string
}

// GetByArticle returns an article's comments oldest first, authors
// embedded. Callers wanting the threaded view pass the result through
// models.ThreadComments.
func (s *CommentService) GetByArticle(ctx context.Context, articleID string) ([]models.Comment, error) {
	if !s.gw.Configured() {
		return nil, gateway.ErrNotConfigured
	}
	var rows []gateway.CommentRow
	err := s.gw.Select(ctx, "comments", gateway.Query{
		Select:  "*,author:users(*)",
		Filters: []gateway.Filter{gateway.Eq("article_id", articleID)},
		Order:   "created_at.asc",
	}, &rows)
	if err != nil {
		return nil, fmt.Errorf("get comments for %s: %w", articleID, err)
	}
	return transform.Comments(rows), nil
}

// Create inserts a new comment and returns its id.
func (s *CommentService) Create(ctx context.Context, in CreateCommentInput) (string, error) {
	if !s.gw.Configured() {
		return "", gateway.ErrNotConfigured
	}
	insert := gateway.CommentInsert{
		ArticleID: in.ArticleID,
		AuthorID:  defaultAuthorID,
		Content:   in.Content,
	}
	if in.ParentID != "" {
		insert.ParentID = &in.ParentID
	}

	var row gateway.CommentRow
	if err := s.gw.Insert(ctx, "comments", insert, &row); err != nil {
		return "", fmt.Errorf("create comment: %w", err)
	}
	return row.ID, nil
}
