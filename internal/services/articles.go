// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package services implements the typed remote operations, one service
// per entity kind. Each service wraps the gateway client and the row
// transformers and owns the fail-fast contract: when the gateway is
// unconfigured every operation returns gateway.ErrNotConfigured instead
// of fabricating data. The in-memory fallback lives one layer up, in the
// blog store's fetch orchestration, never here.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"inkwell/internal/gateway"
	"inkwell/internal/models"
	"inkwell/internal/transform"
)

// articleSelect pulls the article with its category, tag links and
// author embedded in one request.
const articleSelect = "*,category:categories(*),tags:article_tags(tag:tags(*)),author:users(*)"

// defaultAuthorID is the seeded admin row. Writes attribute new rows to
// it until per-user authoring lands on the backend.
const defaultAuthorID = "00000000-0000-0000-0000-000000000001"

// ArticleService exposes the remote article operations.
type ArticleService struct {
	gw *gateway.Client
}

// NewArticleService creates an ArticleService on the given gateway client.
func NewArticleService(gw *gateway.Client) *ArticleService {
	return &ArticleService{gw: gw}
}

// CreateArticleInput carries the fields for a new article. TagIDs become
// article_tags link rows after the article row is created.
type CreateArticleInput struct {
	Title      string
	Excerpt    string
	Content    string
	CoverImage string
	CategoryID string
	Status     models.ArticleStatus
	TagIDs     []string
}

// UpdateArticleInput patches an article. Nil fields are left untouched.
// TagIDs semantics: nil leaves the tag set alone, non-nil (including
// empty) rewrites the whole link set.
type UpdateArticleInput struct {
	Title      *string
	Excerpt    *string
	Content    *string
	CoverImage *string
	CategoryID *string
	Status     *models.ArticleStatus
	TagIDs     []string
}

// GetAll returns every article, newest first, with related rows embedded.
func (s *ArticleService) GetAll(ctx context.Context) ([]models.Article, error) {
	if !s.gw.Configured() {
		return nil, gateway.ErrNotConfigured
	}
	var rows []gateway.ArticleRow
	err := s.gw.Select(ctx, "articles", gateway.Query{
		Select: articleSelect,
		Order:  "created_at.desc",
	}, &rows)
	if err != nil {
		return nil, fmt.Errorf("get articles: %w", err)
	}
	return transform.Articles(rows), nil
}

// GetPublished returns published articles ordered by publish date.
func (s *ArticleService) GetPublished(ctx context.Context) ([]models.Article, error) {
	if !s.gw.Configured() {
		return nil, gateway.ErrNotConfigured
	}
	var rows []gateway.ArticleRow
	err := s.gw.Select(ctx, "articles", gateway.Query{
		Select:  articleSelect,
		Filters: []gateway.Filter{gateway.Eq("status", string(models.StatusPublished))},
		Order:   "published_at.desc",
	}, &rows)
	if err != nil {
		return nil, fmt.Errorf("get published articles: %w", err)
	}
	return transform.Articles(rows), nil
}

// GetByID returns one article with related rows embedded.
func (s *ArticleService) GetByID(ctx context.Context, id string) (models.Article, error) {
	if !s.gw.Configured() {
		return models.Article{}, gateway.ErrNotConfigured
	}
	var row gateway.ArticleRow
	err := s.gw.Select(ctx, "articles", gateway.Query{
		Select:  articleSelect,
		Filters: []gateway.Filter{gateway.Eq("id", id)},
		Single:  true,
	}, &row)
	if err != nil {
		return models.Article{}, fmt.Errorf("get article %s: %w", id, err)
	}
	return transform.Article(row), nil
}

// Search returns published articles whose title, excerpt or content
// contains the query, case-insensitively, newest first.
func (s *ArticleService) Search(ctx context.Context, query string) ([]models.Article, error) {
	if !s.gw.Configured() {
		return nil, gateway.ErrNotConfigured
	}
	var rows []gateway.ArticleRow
	err := s.gw.Select(ctx, "articles", gateway.Query{
		Select:  articleSelect,
		Filters: []gateway.Filter{gateway.Eq("status", string(models.StatusPublished))},
		Or:      fmt.Sprintf("(title.ilike.*%s*,excerpt.ilike.*%s*,content.ilike.*%s*)", query, query, query),
		Order:   "created_at.desc",
	}, &rows)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	return transform.Articles(rows), nil
}

// Create inserts a new article row and its tag links, returning the new
// article's id. Publishing stamps published_at with the current time.
func (s *ArticleService) Create(ctx context.Context, in CreateArticleInput) (string, error) {
	if !s.gw.Configured() {
		return "", gateway.ErrNotConfigured
	}

	insert := gateway.ArticleInsert{
		Title:      in.Title,
		Excerpt:    in.Excerpt,
		Content:    in.Content,
		CoverImage: in.CoverImage,
		CategoryID: in.CategoryID,
		AuthorID:   defaultAuthorID,
		Status:     string(in.Status),
	}
	if in.Status == models.StatusPublished {
		now := nowStamp()
		insert.PublishedAt = &now
	}

	var row gateway.ArticleRow
	if err := s.gw.Insert(ctx, "articles", insert, &row); err != nil {
		return "", fmt.Errorf("create article: %w", err)
	}

	if len(in.TagIDs) > 0 {
		if err := s.insertTagLinks(ctx, row.ID, in.TagIDs); err != nil {
			return "", err
		}
	}
	return row.ID, nil
}

// Update patches the article row and, when a tag list is supplied,
// rewrites the tag link set wholesale.
func (s *ArticleService) Update(ctx context.Context, id string, in UpdateArticleInput) error {
	if !s.gw.Configured() {
		return gateway.ErrNotConfigured
	}

	patch := gateway.ArticleUpdate{
		Title:      in.Title,
		Excerpt:    in.Excerpt,
		Content:    in.Content,
		CoverImage: in.CoverImage,
		CategoryID: in.CategoryID,
		UpdatedAt:  nowStamp(),
	}
	if in.Status != nil {
		status := string(*in.Status)
		patch.Status = &status
		if *in.Status == models.StatusPublished {
			now := nowStamp()
			patch.PublishedAt = &now
		}
	}

	if err := s.gw.Update(ctx, "articles", patch, gateway.Eq("id", id)); err != nil {
		return fmt.Errorf("update article %s: %w", id, err)
	}

	if in.TagIDs != nil {
		return s.replaceTagLinks(ctx, id, in.TagIDs)
	}
	return nil
}

// Delete removes the article's tag links and then the article row.
func (s *ArticleService) Delete(ctx context.Context, id string) error {
	if !s.gw.Configured() {
		return gateway.ErrNotConfigured
	}
	if err := s.gw.Delete(ctx, "article_tags", gateway.Eq("article_id", id)); err != nil {
		return fmt.Errorf("delete article tags %s: %w", id, err)
	}
	if err := s.gw.Delete(ctx, "articles", gateway.Eq("id", id)); err != nil {
		return fmt.Errorf("delete article %s: %w", id, err)
	}
	return nil
}

// IncrementReadCount bumps the read counter. The backend's atomic RPC is
// tried first; if it is unavailable the counter is bumped with a
// read-modify-write, which can lose an increment under concurrent
// writers. That race is accepted: client-side locking cannot fix a
// multi-client race, only an atomic primitive on the backend can.
func (s *ArticleService) IncrementReadCount(ctx context.Context, id string) error {
	if !s.gw.Configured() {
		return gateway.ErrNotConfigured
	}

	args := struct {
		ArticleID string `json:"article_id"`
	}{ArticleID: id}

	err := s.gw.RPC(ctx, "increment_read_count", args)
	if err == nil {
		return nil
	}
	slog.Warn("read counter rpc failed, using read-modify-write fallback",
		"article_id", id,
		"error", err,
	)
	return s.bumpReadCount(ctx, id)
}

// ToggleLike bumps the like counter by one. The backend has no atomic
// primitive for likes, so this is always a best-effort read-modify-write.
func (s *ArticleService) ToggleLike(ctx context.Context, id string) error {
	if !s.gw.Configured() {
		return gateway.ErrNotConfigured
	}

	var row gateway.ArticleRow
	err := s.gw.Select(ctx, "articles", gateway.Query{
		Select:  "like_count",
		Filters: []gateway.Filter{gateway.Eq("id", id)},
		Single:  true,
	}, &row)
	if err != nil {
		return fmt.Errorf("read like count %s: %w", id, err)
	}

	n := row.LikeCount + 1
	if err := s.gw.Update(ctx, "articles", gateway.CounterUpdate{LikeCount: &n}, gateway.Eq("id", id)); err != nil {
		return fmt.Errorf("write like count %s: %w", id, err)
	}
	return nil
}

func (s *ArticleService) bumpReadCount(ctx context.Context, id string) error {
	var row gateway.ArticleRow
	err := s.gw.Select(ctx, "articles", gateway.Query{
		Select:  "read_count",
		Filters: []gateway.Filter{gateway.Eq("id", id)},
		Single:  true,
	}, &row)
	if err != nil {
		return fmt.Errorf("read read count %s: %w", id, err)
	}

	n := row.ReadCount + 1
	if err := s.gw.Update(ctx, "articles", gateway.CounterUpdate{ReadCount: &n}, gateway.Eq("id", id)); err != nil {
		return fmt.Errorf("write read count %s: %w", id, err)
	}
	return nil
}

// replaceTagLinks rewrites the article's tag link set: delete everything,
// reinsert the new set. There is no diffing; a brief window with no
// links is accepted.
func (s *ArticleService) replaceTagLinks(ctx context.Context, articleID string, tagIDs []string) error {
	if err := s.gw.Delete(ctx, "article_tags", gateway.Eq("article_id", articleID)); err != nil {
		return fmt.Errorf("clear article tags %s: %w", articleID, err)
	}
	if len(tagIDs) == 0 {
		return nil
	}
	return s.insertTagLinks(ctx, articleID, tagIDs)
}

func (s *ArticleService) insertTagLinks(ctx context.Context, articleID string, tagIDs []string) error {
	links := make([]gateway.ArticleTagInsert, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		links = append(links, gateway.ArticleTagInsert{ArticleID: articleID, TagID: tagID})
	}
	if err := s.gw.Insert(ctx, "article_tags", links, nil); err != nil {
		return fmt.Errorf("insert article tags %s: %w", articleID, err)
	}
	return nil
}

// nowStamp formats the current time the way the backend stores timestamps.
func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
