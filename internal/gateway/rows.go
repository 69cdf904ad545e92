// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package gateway

// Row shapes returned by the backend's table API: snake_case fields,
// nullable columns as pointers, related rows embedded when the select
// clause asks for them. Every operation has an explicit tagged
// request/response shape; nothing at this boundary is duck typed.

// ArticleRow is a raw articles row, optionally joined with its category,
// tag links and author.
type ArticleRow struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Excerpt     string  `json:"excerpt"`
	Content     string  `json:"content"`
	CoverImage  *string `json:"cover_image"`
	CategoryID  *string `json:"category_id"`
	AuthorID    *string `json:"author_id"`
	Status      string  `json:"status"`
	ReadCount   int     `json:"read_count"`
	LikeCount   int     `json:"like_count"`
	PublishedAt *string `json:"published_at"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`

	// Embedded rows, present only on joined selects.
	Category *CategoryRow `json:"category,omitempty"`
	Tags     []TagLinkRow `json:"tags,omitempty"`
	Author   *UserRow     `json:"author,omitempty"`
}

// TagLinkRow wraps a tag embedded through the article_tags join table.
// The backend represents each link as an object holding the joined tag;
// links whose tag row is gone come back with a null Tag.
type TagLinkRow struct {
	Tag *TagRow `json:"tag"`
}

// CategoryRow is a raw categories row.
type CategoryRow struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Color        string  `json:"color"`
	ArticleCount *int    `json:"article_count"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// TagRow is a raw tags row.
type TagRow struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Color        string  `json:"color"`
	ArticleCount *int    `json:"article_count"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// UserRow is a raw users row.
type UserRow struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Avatar      *string `json:"avatar"`
	Bio         *string `json:"bio"`
	Role        string  `json:"role"`
	GithubURL   *string `json:"github_url"`
	TwitterURL  *string `json:"twitter_url"`
	LinkedinURL *string `json:"linkedin_url"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// CommentRow is a raw comments row, optionally joined with its author.
type CommentRow struct {
	ID        string  `json:"id"`
	ArticleID string  `json:"article_id"`
	AuthorID  *string `json:"author_id"`
	Content   string  `json:"content"`
	ParentID  *string `json:"parent_id"`
	CreatedAt string  `json:"created_at"`

	Author *UserRow `json:"author,omitempty"`
}

// ArticleInsert is the write shape for creating an article row.
type ArticleInsert struct {
	Title       string  `json:"title"`
	Excerpt     string  `json:"excerpt"`
	Content     string  `json:"content"`
	CoverImage  string  `json:"cover_image"`
	CategoryID  string  `json:"category_id"`
	AuthorID    string  `json:"author_id"`
	Status      string  `json:"status"`
	PublishedAt *string `json:"published_at"`
}

// ArticleUpdate is the write shape for patching an article row. Nil
// fields are omitted so the backend leaves those columns untouched.
type ArticleUpdate struct {
	Title       *string `json:"title,omitempty"`
	Excerpt     *string `json:"excerpt,omitempty"`
	Content     *string `json:"content,omitempty"`
	CoverImage  *string `json:"cover_image,omitempty"`
	CategoryID  *string `json:"category_id,omitempty"`
	Status      *string `json:"status,omitempty"`
	PublishedAt *string `json:"published_at,omitempty"`
	UpdatedAt   string  `json:"updated_at"`
}

// CounterUpdate patches exactly one of the article counters. Used by the
// best-effort read-modify-write fallback when the counter RPC is
// unavailable.
type CounterUpdate struct {
	ReadCount *int `json:"read_count,omitempty"`
	LikeCount *int `json:"like_count,omitempty"`
}

// ArticleTagInsert is one many-to-many link row. Tag sets are always
// rewritten wholesale: delete all links for the article, then insert the
// new set.
type ArticleTagInsert struct {
	ArticleID string `json:"article_id"`
	TagID     string `json:"tag_id"`
}

// CategoryInsert is the write shape for creating a category row.
type CategoryInsert struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// CategoryUpdate is the write shape for patching a category row.
type CategoryUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	UpdatedAt   string  `json:"updated_at"`
}

// TagInsert is the write shape for creating a tag row.
type TagInsert struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TagUpdate is the write shape for patching a tag row.
type TagUpdate struct {
	Name      *string `json:"name,omitempty"`
	Color     *string `json:"color,omitempty"`
	UpdatedAt string  `json:"updated_at"`
}

// CommentInsert is the write shape for creating a comment row.
type CommentInsert struct {
	ArticleID string  `json:"article_id"`
	AuthorID  string  `json:"author_id"`
	Content   string  `json:"content"`
	ParentID  *string `json:"parent_id"`
}
