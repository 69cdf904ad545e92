// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "testing"

func TestThreadComments_SingleLevel(t *testing.T) {
	flat := []Comment{
		{ID: "1", Content: "first"},
		{ID: "2", Content: "reply to first", ParentID: "1"},
		{ID: "3", Content: "second"},
		{ID: "4", Content: "another reply", ParentID: "1"},
	}

	got := ThreadComments(flat)

	if len(got) != 2 {
		t.Fatalf("top-level comments = %d, want 2", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("top-level order = %q, %q; want 1, 3", got[0].ID, got[1].ID)
	}
	if len(got[0].Replies) != 2 {
		t.Fatalf("replies on comment 1 = %d, want 2", len(got[0].Replies))
	}
	if got[0].Replies[0].ID != "2" || got[0].Replies[1].ID != "4" {
		t.Errorf("reply order = %q, %q; want 2, 4", got[0].Replies[0].ID, got[0].Replies[1].ID)
	}
	if got[1].Replies != nil {
		t.Errorf("comment 3 should have no replies, got %v", got[1].Replies)
	}
}

func TestThreadComments_OrphanParentKeptAtTopLevel(t *testing.T) {
	flat := []Comment{
		{ID: "1", Content: "visible"},
		{ID: "2", Content: "parent was deleted", ParentID: "missing"},
	}

	got := ThreadComments(flat)

	if len(got) != 2 {
		t.Fatalf("top-level comments = %d, want 2 (orphan promoted)", len(got))
	}
}

func TestThreadComments_Empty(t *testing.T) {
	got := ThreadComments(nil)
	if len(got) != 0 {
		t.Errorf("ThreadComments(nil) = %v, want empty", got)
	}
}
