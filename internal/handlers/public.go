// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/gateway"
	"inkwell/internal/markdown"
	"inkwell/internal/models"
	"inkwell/internal/services"
	"inkwell/internal/store"
)

// CommentReader fetches and creates article comments.
type CommentReader interface {
	GetByArticle(ctx context.Context, articleID string) ([]models.Comment, error)
	Create(ctx context.Context, in services.CreateCommentInput) (string, error)
}

// PopularityProvider serves the popularity-ordered taxonomy views.
type PopularityProvider interface {
	PopularTags(ctx context.Context, limit int) ([]models.Tag, error)
	CategoriesByPopularity(ctx context.Context) ([]models.Category, error)
}

// UserReader fetches public author profiles.
type UserReader interface {
	GetByID(ctx context.Context, id string) (models.User, error)
}

// Public groups the handlers for the reading site: article lists,
// article detail with rendered markdown, search, taxonomy and comments.
type Public struct {
	blog     *store.BlogStore
	comments CommentReader
	popular  PopularityProvider
	users    UserReader
}

// NewPublic creates a new Public handler group.
func NewPublic(blog *store.BlogStore, comments CommentReader, popular PopularityProvider, users UserReader) *Public {
	return &Public{blog: blog, comments: comments, popular: popular, users: users}
}

// articleDetail is an article plus its markdown body rendered to HTML.
type articleDetail struct {
	models.Article
	ContentHTML string `json:"contentHtml"`
}

// ListArticles returns the published articles.
func (p *Public) ListArticles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, p.blog.PublishedArticles())
}

// PopularArticles returns the top articles by read count.
func (p *Public) PopularArticles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, p.blog.PopularArticles())
}

// RecentArticles returns the most recently published articles.
func (p *Public) RecentArticles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, p.blog.RecentArticles())
}

// GetArticle returns one article with its content rendered to HTML, and
// bumps the read counter. Drafts are invisible on the public surface.
func (p *Public) GetArticle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	article, ok := p.blog.ArticleByID(id)
	if !ok || !article.IsPublished() {
		writeError(w, http.StatusNotFound, errors.New("article not found"))
		return
	}

	// The view counts even if the remote bump fails.
	if err := p.blog.IncrementReadCount(r.Context(), id); err != nil {
		slog.Warn("read count bump failed", "id", id, "error", err)
	} else {
		article.ReadCount++
	}

	rendered, err := markdown.ToHTML(article.Content)
	if err != nil {
		slog.Error("markdown render failed", "id", id, "error", err)
		rendered = ""
	}
	writeJSON(w, http.StatusOK, articleDetail{Article: article, ContentHTML: rendered})
}

// Search returns published articles matching the q parameter.
func (p *Public) Search(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, p.blog.SearchArticles(r.URL.Query().Get("q")))
}

// ByCategory returns published articles in a category.
func (p *Public) ByCategory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, p.blog.ArticlesByCategory(chi.URLParam(r, "id")))
}

// ByTag returns published articles carrying the tag name.
func (p *Public) ByTag(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, p.blog.ArticlesByTag(chi.URLParam(r, "name")))
}

// ListCategories returns the cached categories.
func (p *Public) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, p.blog.Categories())
}

// ListTags returns the cached tags.
func (p *Public) ListTags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, p.blog.Tags())
}

// PopularTags returns tags ordered by article count. limit defaults to 10.
func (p *Public) PopularTags(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	tags, err := p.popular.PopularTags(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

// PopularCategories returns categories ordered by article count.
func (p *Public) PopularCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := p.popular.CategoriesByPopularity(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

// GetUser returns an author's public profile. Missing rows come back
// from the gateway as a non-2xx status, surfaced here as 404.
func (p *Public) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := p.users.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusNotFound || apiErr.StatusCode == http.StatusNotAcceptable) {
			writeError(w, http.StatusNotFound, errors.New("user not found"))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Stats returns the site-wide counters.
func (p *Public) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, p.blog.Stats())
}

// Like bumps an article's like counter.
func (p *Public) Like(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := p.blog.ToggleLike(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListComments returns an article's comments, threaded.
func (p *Public) ListComments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	comments, err := p.comments.GetByArticle(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, models.ThreadComments(comments))
}

// createCommentRequest is the body for CreateComment.
type createCommentRequest struct {
	Content  string `json:"content"`
	ParentID string `json:"parentId,omitempty"`
}

// CreateComment adds a comment to an article.
func (p *Public) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if msg := validateComment(req.Content); msg != "" {
		writeJSON(w, http.StatusBadRequest, errResponse{Error: msg})
		return
	}

	id, err := p.comments.Create(r.Context(), services.CreateCommentInput{
		ArticleID: chi.URLParam(r, "id"),
		Content:   req.Content,
		ParentID:  req.ParentID,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}
