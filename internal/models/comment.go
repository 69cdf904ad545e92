// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Comment belongs to one article. ParentID, when set, references another
// comment on the same article for single-level threading; it is a view
// hint, not an ownership edge. Replies is derived for display and is
// never persisted.
type Comment struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"articleId"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	ParentID  string    `json:"parentId,omitempty"`
	Replies   []Comment `json:"replies,omitempty"`
}

// ThreadComments arranges a flat comment list into a single-level thread:
// top-level comments in input order, each carrying its direct replies.
// Replies to unknown parents are kept at the top level rather than dropped.
func ThreadComments(comments []Comment) []Comment {
	byID := make(map[string]bool, len(comments))
	for _, c := range comments {
		byID[c.ID] = true
	}

	var top []Comment
	replies := make(map[string][]Comment)
	for _, c := range comments {
		if c.ParentID != "" && byID[c.ParentID] {
			replies[c.ParentID] = append(replies[c.ParentID], c)
			continue
		}
		top = append(top, c)
	}

	out := make([]Comment, 0, len(top))
	for _, c := range top {
		c.Replies = replies[c.ID]
		out = append(out, c)
	}
	return out
}
