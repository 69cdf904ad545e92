// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Category groups articles by topic. Name is unique by convention only;
// nothing enforces it. ArticleCount is denormalized and may be stale.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Color        string `json:"color"`
	ArticleCount int    `json:"articleCount"`
}

// Tag is a free-form label attached to articles through a many-to-many
// link table. ArticleCount is denormalized and may be stale.
type Tag struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Color        string `json:"color"`
	ArticleCount int    `json:"articleCount"`
}
