// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/models"
	"inkwell/internal/services"
	"inkwell/internal/store"
)

// Admin groups the content management handlers. The router guards this
// whole surface with the auth and admin middleware.
type Admin struct {
	blog *store.BlogStore
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(blog *store.BlogStore) *Admin {
	return &Admin{blog: blog}
}

// ListArticles returns every article, drafts included.
func (a *Admin) ListArticles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.blog.Articles())
}

// ListDrafts returns the draft articles.
func (a *Admin) ListDrafts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.blog.DraftArticles())
}

// GetArticle returns one article by id, any status.
func (a *Admin) GetArticle(w http.ResponseWriter, r *http.Request) {
	article, ok := a.blog.ArticleByID(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errResponse{Error: "article not found"})
		return
	}
	writeJSON(w, http.StatusOK, article)
}

// createArticleRequest is the body for CreateArticle.
type createArticleRequest struct {
	Title      string   `json:"title"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	CoverImage string   `json:"coverImage"`
	CategoryID string   `json:"categoryId"`
	Status     string   `json:"status"`
	TagIDs     []string `json:"tagIds"`
}

// CreateArticle creates an article and returns its id.
func (a *Admin) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req createArticleRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if msg := validateArticle(req.Title, req.Excerpt, req.Content); msg != "" {
		writeJSON(w, http.StatusBadRequest, errResponse{Error: msg})
		return
	}
	status := models.ArticleStatus(req.Status)
	if status != models.StatusPublished {
		status = models.StatusDraft
	}

	id, err := a.blog.CreateArticle(r.Context(), services.CreateArticleInput{
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		CategoryID: req.CategoryID,
		Status:     status,
		TagIDs:     req.TagIDs,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// updateArticleRequest is the body for UpdateArticle. Absent fields are
// left untouched; tagIds present (even empty) rewrites the tag set.
type updateArticleRequest struct {
	Title      *string  `json:"title,omitempty"`
	Excerpt    *string  `json:"excerpt,omitempty"`
	Content    *string  `json:"content,omitempty"`
	CoverImage *string  `json:"coverImage,omitempty"`
	CategoryID *string  `json:"categoryId,omitempty"`
	Status     *string  `json:"status,omitempty"`
	TagIDs     []string `json:"tagIds,omitempty"`
}

// UpdateArticle patches an article.
func (a *Admin) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	var req updateArticleRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Title != nil {
		if msg := validateArticle(*req.Title, "", ""); msg != "" {
			writeJSON(w, http.StatusBadRequest, errResponse{Error: msg})
			return
		}
	}

	in := services.UpdateArticleInput{
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		CategoryID: req.CategoryID,
		TagIDs:     req.TagIDs,
	}
	if req.Status != nil {
		status := models.ArticleStatus(*req.Status)
		in.Status = &status
	}

	if err := a.blog.UpdateArticle(r.Context(), chi.URLParam(r, "id"), in); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteArticle removes an article.
func (a *Admin) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	if err := a.blog.DeleteArticle(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// categoryRequest is the body for category create and update.
type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// CreateCategory creates a category and returns its id.
func (a *Admin) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if msg := validateName(req.Name); msg != "" {
		writeJSON(w, http.StatusBadRequest, errResponse{Error: msg})
		return
	}
	id, err := a.blog.CreateCategory(r.Context(), services.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// updateCategoryRequest is the body for UpdateCategory.
type updateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

// UpdateCategory patches a category.
func (a *Admin) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req updateCategoryRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Name != nil {
		if msg := validateName(*req.Name); msg != "" {
			writeJSON(w, http.StatusBadRequest, errResponse{Error: msg})
			return
		}
	}
	err := a.blog.UpdateCategory(r.Context(), chi.URLParam(r, "id"), services.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteCategory removes a category.
func (a *Admin) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := a.blog.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// tagRequest is the body for tag create and update.
type tagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CreateTag creates a tag and returns its id.
func (a *Admin) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req tagRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if msg := validateName(req.Name); msg != "" {
		writeJSON(w, http.StatusBadRequest, errResponse{Error: msg})
		return
	}
	id, err := a.blog.CreateTag(r.Context(), services.CreateTagInput{Name: req.Name, Color: req.Color})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// updateTagRequest is the body for UpdateTag.
type updateTagRequest struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

// UpdateTag patches a tag.
func (a *Admin) UpdateTag(w http.ResponseWriter, r *http.Request) {
	var req updateTagRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Name != nil {
		if msg := validateName(*req.Name); msg != "" {
			writeJSON(w, http.StatusBadRequest, errResponse{Error: msg})
			return
		}
	}
	err := a.blog.UpdateTag(r.Context(), chi.URLParam(r, "id"), services.UpdateTagInput{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteTag removes a tag.
func (a *Admin) DeleteTag(w http.ResponseWriter, r *http.Request) {
	if err := a.blog.DeleteTag(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RefreshArticles forces a refetch of the article cache.
func (a *Admin) RefreshArticles(w http.ResponseWriter, r *http.Request) {
	if err := a.blog.FetchArticles(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
