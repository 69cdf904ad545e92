// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store holds the application's central state: the cached
// article/category/tag collections with their derived views, and the
// authenticated principal. Stores are safe for concurrent use.
package store

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"inkwell/internal/models"
	"inkwell/internal/services"
)

// ArticleService is the remote article surface the blog store consumes.
type ArticleService interface {
	GetAll(ctx context.Context) ([]models.Article, error)
	Create(ctx context.Context, in services.CreateArticleInput) (string, error)
	Update(ctx context.Context, id string, in services.UpdateArticleInput) error
	Delete(ctx context.Context, id string) error
	IncrementReadCount(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, id string) error
}

// CategoryService is the remote category surface the blog store consumes.
type CategoryService interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, in services.CreateCategoryInput) (string, error)
	Update(ctx context.Context, id string, in services.UpdateCategoryInput) error
	Delete(ctx context.Context, id string) error
}

// TagService is the remote tag surface the blog store consumes.
type TagService interface {
	GetAll(ctx context.Context) ([]models.Tag, error)
	Create(ctx context.Context, in services.CreateTagInput) (string, error)
	Update(ctx context.Context, id string, in services.UpdateTagInput) error
	Delete(ctx context.Context, id string) error
}

// FallbackProvider serves the canned dataset when the remote side is
// unavailable.
type FallbackProvider interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Tags(ctx context.Context) ([]models.Tag, error)
	Articles(ctx context.Context) ([]models.Article, error)
}

// BlogStore caches the article, category and tag collections and serves
// filtered views over them. Mutations write through the remote services
// and then refetch, so the cache always reflects what the backend
// actually stored.
type BlogStore struct {
	articles   ArticleService
	categories CategoryService
	tags       TagService
	fallback   FallbackProvider

	// preferFallback makes category and tag fetches try the canned
	// dataset before the remote services.
	preferFallback bool

	mu          sync.RWMutex
	articleList []models.Article
	catList     []models.Category
	tagList     []models.Tag
	loading     bool
	lastErr     error
}

// NewBlogStore wires a BlogStore over the given services.
func NewBlogStore(articles ArticleService, categories CategoryService, tags TagService, fb FallbackProvider, preferFallback bool) *BlogStore {
	return &BlogStore{
		articles:       articles,
		categories:     categories,
		tags:           tags,
		fallback:       fb,
		preferFallback: preferFallback,
	}
}

// FetchArticles refreshes the article cache from the remote service.
// Articles never fall back: an empty remote result is the truth.
func (s *BlogStore) FetchArticles(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	list, err := s.articles.GetAll(ctx)
	if err != nil {
		s.recordErr(err)
		slog.Error("fetch articles failed", "error", err)
		return err
	}

	s.mu.Lock()
	s.articleList = list
	s.lastErr = nil
	s.mu.Unlock()
	return nil
}

// FetchCategories refreshes the category cache. In fallback-first mode
// the canned dataset is tried before the remote service; either way the
// other source is the backup, and an error surfaces only when both fail.
func (s *BlogStore) FetchCategories(ctx context.Context) error {
	list, err := fetchWithBackup(ctx, s.preferFallback, s.fallback.Categories, s.categories.GetAll, "categories")
	if err != nil {
		s.recordErr(err)
		return err
	}
	s.mu.Lock()
	s.catList = list
	s.mu.Unlock()
	return nil
}

// FetchTags refreshes the tag cache with the same source policy as
// FetchCategories.
func (s *BlogStore) FetchTags(ctx context.Context) error {
	list, err := fetchWithBackup(ctx, s.preferFallback, s.fallback.Tags, s.tags.GetAll, "tags")
	if err != nil {
		s.recordErr(err)
		return err
	}
	s.mu.Lock()
	s.tagList = list
	s.mu.Unlock()
	return nil
}

// fetchWithBackup runs primary then backup, ordered by preferFallback.
func fetchWithBackup[T any](ctx context.Context, preferFallback bool, fb, remote func(context.Context) ([]T, error), what string) ([]T, error) {
	first, second := fb, remote
	if !preferFallback {
		first, second = remote, fb
	}

	list, err := first(ctx)
	if err == nil {
		return list, nil
	}
	slog.Warn("primary source failed, trying backup", "what", what, "error", err)

	list, err2 := second(ctx)
	if err2 == nil {
		return list, nil
	}
	slog.Error("both sources failed", "what", what, "primary_error", err, "backup_error", err2)
	return nil, err2
}

// Loading reports whether an article fetch is in flight.
func (s *BlogStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last fetch or mutation error, cleared by the next
// successful article fetch.
func (s *BlogStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Articles returns a copy of the full cached article list.
func (s *BlogStore) Articles() []models.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Article, len(s.articleList))
	copy(out, s.articleList)
	return out
}

// Categories returns a copy of the cached category list.
func (s *BlogStore) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, len(s.catList))
	copy(out, s.catList)
	return out
}

// Tags returns a copy of the cached tag list.
func (s *BlogStore) Tags() []models.Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Tag, len(s.tagList))
	copy(out, s.tagList)
	return out
}

// PublishedArticles returns the published subset, cached order.
func (s *BlogStore) PublishedArticles() []models.Article {
	return s.filter(func(a *models.Article) bool { return a.IsPublished() })
}

// DraftArticles returns the draft subset.
func (s *BlogStore) DraftArticles() []models.Article {
	return s.filter(func(a *models.Article) bool { return a.Status == models.StatusDraft })
}

// ArticleByID finds an article in the cache, any status.
func (s *BlogStore) ArticleByID(id string) (models.Article, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.articleList {
		if a.ID == id {
			return a, true
		}
	}
	return models.Article{}, false
}

// ArticlesByCategory returns published articles in the given category.
func (s *BlogStore) ArticlesByCategory(categoryID string) []models.Article {
	return s.filter(func(a *models.Article) bool {
		return a.IsPublished() && a.Category.ID == categoryID
	})
}

// ArticlesByTag returns published articles carrying the exact tag name.
// The match is case sensitive, unlike search.
func (s *BlogStore) ArticlesByTag(tagName string) []models.Article {
	return s.filter(func(a *models.Article) bool {
		return a.IsPublished() && a.HasTag(tagName)
	})
}

// SearchArticles returns published articles whose title, content or any
// tag name contains the query, case-insensitively. A blank query returns
// all published articles.
func (s *BlogStore) SearchArticles(query string) []models.Article {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.PublishedArticles()
	}
	return s.filter(func(a *models.Article) bool {
		if !a.IsPublished() {
			return false
		}
		if strings.Contains(strings.ToLower(a.Title), q) || strings.Contains(strings.ToLower(a.Content), q) {
			return true
		}
		for _, t := range a.Tags {
			if strings.Contains(strings.ToLower(t.Name), q) {
				return true
			}
		}
		return false
	})
}

// PopularArticles returns the top five published articles by read count.
func (s *BlogStore) PopularArticles() []models.Article {
	list := s.PublishedArticles()
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].ReadCount > list[j].ReadCount
	})
	return top(list, 5)
}

// RecentArticles returns the five most recently published articles.
func (s *BlogStore) RecentArticles() []models.Article {
	list := s.PublishedArticles()
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].PublishDate.After(list[j].PublishDate)
	})
	return top(list, 5)
}

// Stats aggregates counters over the published set. Category and tag
// totals count the cached lists, not just those referenced by articles.
func (s *BlogStore) Stats() models.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats models.Stats
	for _, a := range s.articleList {
		if !a.IsPublished() {
			continue
		}
		stats.TotalArticles++
		stats.TotalViews += a.ReadCount
		stats.TotalLikes += a.LikeCount
	}
	stats.TotalCategories = len(s.catList)
	stats.TotalTags = len(s.tagList)
	return stats
}

// CreateArticle writes through the service and refetches the list,
// returning the new article's id.
func (s *BlogStore) CreateArticle(ctx context.Context, in services.CreateArticleInput) (string, error) {
	id, err := s.articles.Create(ctx, in)
	if err != nil {
		s.recordErr(err)
		slog.Error("create article failed", "error", err)
		return "", err
	}
	return id, s.FetchArticles(ctx)
}

// UpdateArticle writes through the service and refetches the list.
func (s *BlogStore) UpdateArticle(ctx context.Context, id string, in services.UpdateArticleInput) error {
	if err := s.articles.Update(ctx, id, in); err != nil {
		s.recordErr(err)
		slog.Error("update article failed", "id", id, "error", err)
		return err
	}
	return s.FetchArticles(ctx)
}

// DeleteArticle writes through the service and refetches the list.
func (s *BlogStore) DeleteArticle(ctx context.Context, id string) error {
	if err := s.articles.Delete(ctx, id); err != nil {
		s.recordErr(err)
		slog.Error("delete article failed", "id", id, "error", err)
		return err
	}
	return s.FetchArticles(ctx)
}

// CreateCategory writes through the service and refetches categories.
func (s *BlogStore) CreateCategory(ctx context.Context, in services.CreateCategoryInput) (string, error) {
	id, err := s.categories.Create(ctx, in)
	if err != nil {
		s.recordErr(err)
		slog.Error("create category failed", "error", err)
		return "", err
	}
	return id, s.FetchCategories(ctx)
}

// UpdateCategory writes through the service and refetches categories.
func (s *BlogStore) UpdateCategory(ctx context.Context, id string, in services.UpdateCategoryInput) error {
	if err := s.categories.Update(ctx, id, in); err != nil {
		s.recordErr(err)
		slog.Error("update category failed", "id", id, "error", err)
		return err
	}
	return s.FetchCategories(ctx)
}

// DeleteCategory writes through the service and refetches categories.
func (s *BlogStore) DeleteCategory(ctx context.Context, id string) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		s.recordErr(err)
		slog.Error("delete category failed", "id", id, "error", err)
		return err
	}
	return s.FetchCategories(ctx)
}

// CreateTag writes through the service and refetches tags.
func (s *BlogStore) CreateTag(ctx context.Context, in services.CreateTagInput) (string, error) {
	id, err := s.tags.Create(ctx, in)
	if err != nil {
		s.recordErr(err)
		slog.Error("create tag failed", "error", err)
		return "", err
	}
	return id, s.FetchTags(ctx)
}

// UpdateTag writes through the service and refetches tags.
func (s *BlogStore) UpdateTag(ctx context.Context, id string, in services.UpdateTagInput) error {
	if err := s.tags.Update(ctx, id, in); err != nil {
		s.recordErr(err)
		slog.Error("update tag failed", "id", id, "error", err)
		return err
	}
	return s.FetchTags(ctx)
}

// DeleteTag writes through the service and refetches tags.
func (s *BlogStore) DeleteTag(ctx context.Context, id string) error {
	if err := s.tags.Delete(ctx, id); err != nil {
		s.recordErr(err)
		slog.Error("delete tag failed", "id", id, "error", err)
		return err
	}
	return s.FetchTags(ctx)
}

// IncrementReadCount bumps the remote counter and patches the cached
// article in place instead of refetching the whole list.
func (s *BlogStore) IncrementReadCount(ctx context.Context, id string) error {
	if err := s.articles.IncrementReadCount(ctx, id); err != nil {
		s.recordErr(err)
		slog.Error("increment read count failed", "id", id, "error", err)
		return err
	}
	s.patch(id, func(a *models.Article) { a.ReadCount++ })
	return nil
}

// ToggleLike bumps the remote like counter and patches the cache in
// place.
func (s *BlogStore) ToggleLike(ctx context.Context, id string) error {
	if err := s.articles.ToggleLike(ctx, id); err != nil {
		s.recordErr(err)
		slog.Error("toggle like failed", "id", id, "error", err)
		return err
	}
	s.patch(id, func(a *models.Article) { a.LikeCount++ })
	return nil
}

func (s *BlogStore) filter(keep func(*models.Article) bool) []models.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Article, 0, len(s.articleList))
	for _, a := range s.articleList {
		if keep(&a) {
			out = append(out, a)
		}
	}
	return out
}

func (s *BlogStore) patch(id string, apply func(*models.Article)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.articleList {
		if s.articleList[i].ID == id {
			apply(&s.articleList[i])
			return
		}
	}
}

func (s *BlogStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *BlogStore) recordErr(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}

func top(list []models.Article, n int) []models.Article {
	if len(list) > n {
		return list[:n]
	}
	return list
}
