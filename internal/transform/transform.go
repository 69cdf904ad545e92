// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package transform maps raw gateway rows into domain entities. Every
// function is pure and total: nullable and missing fields become the
// documented defaults (empty string, zero count, empty slice) instead of
// propagating as nil into the rest of the application.
package transform

import (
	"time"

	"inkwell/internal/gateway"
	"inkwell/internal/models"
)

// Article maps an articles row, joined or not, into the domain shape.
// A missing category embed becomes the zero Category; tag links with no
// tag row are dropped; a missing author becomes "Unknown". PublishDate
// falls back to the row's creation time when published_at is null.
func Article(row gateway.ArticleRow) models.Article {
	category := models.Category{}
	if row.Category != nil {
		category = Category(*row.Category)
	}

	tags := make([]models.Tag, 0, len(row.Tags))
	for _, link := range row.Tags {
		if link.Tag == nil {
			continue
		}
		tags = append(tags, Tag(*link.Tag))
	}

	author := "Unknown"
	if row.Author != nil && row.Author.Name != "" {
		author = row.Author.Name
	}

	publishDate := parseTime(strOr(row.PublishedAt))
	if publishDate.IsZero() {
		publishDate = parseTime(row.CreatedAt)
	}

	return models.Article{
		ID:          row.ID,
		Title:       row.Title,
		Excerpt:     row.Excerpt,
		Content:     row.Content,
		CoverImage:  strOr(row.CoverImage),
		Category:    category,
		Tags:        tags,
		Author:      author,
		PublishDate: publishDate,
		UpdateDate:  parseTime(row.UpdatedAt),
		ReadCount:   row.ReadCount,
		LikeCount:   row.LikeCount,
		Status:      models.ArticleStatus(row.Status),
	}
}

// Articles maps a slice of rows, returning an empty slice for empty input.
func Articles(rows []gateway.ArticleRow) []models.Article {
	out := make([]models.Article, 0, len(rows))
	for _, row := range rows {
		out = append(out, Article(row))
	}
	return out
}

// Category maps a categories row into the domain shape.
func Category(row gateway.CategoryRow) models.Category {
	return models.Category{
		ID:           row.ID,
		Name:         row.Name,
		Description:  strOr(row.Description),
		Color:        row.Color,
		ArticleCount: intOr(row.ArticleCount),
	}
}

// Categories maps a slice of rows.
func Categories(rows []gateway.CategoryRow) []models.Category {
	out := make([]models.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, Category(row))
	}
	return out
}

// Tag maps a tags row into the domain shape.
func Tag(row gateway.TagRow) models.Tag {
	return models.Tag{
		ID:           row.ID,
		Name:         row.Name,
		Color:        row.Color,
		ArticleCount: intOr(row.ArticleCount),
	}
}

// Tags maps a slice of rows.
func Tags(rows []gateway.TagRow) []models.Tag {
	out := make([]models.Tag, 0, len(rows))
	for _, row := range rows {
		out = append(out, Tag(row))
	}
	return out
}

// User maps a users row into the domain shape.
func User(row gateway.UserRow) models.User {
	return models.User{
		ID:     row.ID,
		Name:   row.Name,
		Email:  row.Email,
		Avatar: strOr(row.Avatar),
		Bio:    strOr(row.Bio),
		Role:   models.Role(row.Role),
		SocialLinks: models.SocialLinks{
			GitHub:   strOr(row.GithubURL),
			Twitter:  strOr(row.TwitterURL),
			LinkedIn: strOr(row.LinkedinURL),
		},
		CreatedAt: parseTime(row.CreatedAt),
		UpdatedAt: parseTime(row.UpdatedAt),
	}
}

// Comment maps a comments row into the domain shape. A missing author
// embed becomes "Unknown".
func Comment(row gateway.CommentRow) models.Comment {
	author := "Unknown"
	if row.Author != nil && row.Author.Name != "" {
		author = row.Author.Name
	}
	return models.Comment{
		ID:        row.ID,
		ArticleID: row.ArticleID,
		Author:    author,
		Content:   row.Content,
		CreatedAt: parseTime(row.CreatedAt),
		ParentID:  strOr(row.ParentID),
	}
}

// Comments maps a slice of rows.
func Comments(rows []gateway.CommentRow) []models.Comment {
	out := make([]models.Comment, 0, len(rows))
	for _, row := range rows {
		out = append(out, Comment(row))
	}
	return out
}

func strOr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intOr(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// parseTime reads an RFC 3339 timestamp, returning the zero time for
// empty or malformed input. Transformers never fail on bad rows.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
