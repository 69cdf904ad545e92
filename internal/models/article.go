// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// ArticleStatus represents the publishing state of an article.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
)

// Article is the application-shape article record: related category, tags
// and author are embedded rather than referenced by foreign key. Instances
// are produced by the transform package from gateway rows, or by the
// fallback dataset.
type Article struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Excerpt     string        `json:"excerpt"`
	Content     string        `json:"content"`
	CoverImage  string        `json:"coverImage"`
	Category    Category      `json:"category"`
	Tags        []Tag         `json:"tags"`
	Author      string        `json:"author"`
	PublishDate time.Time     `json:"publishDate"`
	UpdateDate  time.Time     `json:"updateDate"`
	ReadCount   int           `json:"readCount"`
	LikeCount   int           `json:"likeCount"`
	Status      ArticleStatus `json:"status"`
}

// IsPublished returns true if the article is in published status.
func (a *Article) IsPublished() bool {
	return a.Status == StatusPublished
}

// HasTag reports whether the article carries a tag with the exact given
// name. The comparison is case sensitive.
func (a *Article) HasTag(name string) bool {
	for _, t := range a.Tags {
		if t.Name == name {
			return true
		}
	}
	return false
}

// Stats aggregates site-wide numbers over the published article set.
type Stats struct {
	TotalArticles   int `json:"totalArticles"`
	TotalViews      int `json:"totalViews"`
	TotalLikes      int `json:"totalLikes"`
	TotalCategories int `json:"totalCategories"`
	TotalTags       int `json:"totalTags"`
}
