// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package fallback

import (
	"context"
	"errors"
	"testing"
	"time"

	"inkwell/internal/models"
)

func testProvider() *Provider {
	return NewWithLatency(0)
}

func TestArticles_AllPublishedAndComplete(t *testing.T) {
	p := testProvider()
	articles, err := p.Articles(context.Background())
	if err != nil {
		t.Fatalf("Articles: %v", err)
	}
	if len(articles) == 0 {
		t.Fatal("seed dataset has no articles")
	}
	for _, a := range articles {
		if a.Status != models.StatusPublished {
			t.Errorf("article %s: status = %s, want published", a.ID, a.Status)
		}
		if a.Category.ID == "" || len(a.Tags) == 0 || a.Author == "" {
			t.Errorf("article %s: missing embedded data", a.ID)
		}
		if a.PublishDate.IsZero() {
			t.Errorf("article %s: zero publish date", a.ID)
		}
	}
}

func TestArticles_ReturnsCopies(t *testing.T) {
	p := testProvider()
	ctx := context.Background()

	first, _ := p.Articles(ctx)
	first[0].Title = "mutated"
	first[0].Tags[0].Name = "mutated"

	second, _ := p.Articles(ctx)
	if second[0].Title == "mutated" {
		t.Error("caller mutation leaked into the dataset")
	}
	if second[0].Tags[0].Name == "mutated" {
		t.Error("caller tag mutation leaked into the dataset")
	}
}

func TestPopularTags_OrderAndLimit(t *testing.T) {
	p := testProvider()

	tags, err := p.PopularTags(context.Background(), 5)
	if err != nil {
		t.Fatalf("PopularTags: %v", err)
	}
	if len(tags) != 5 {
		t.Fatalf("len = %d, want 5", len(tags))
	}
	for i := 1; i < len(tags); i++ {
		if tags[i].ArticleCount > tags[i-1].ArticleCount {
			t.Errorf("tags not sorted by article count at %d: %d > %d", i, tags[i].ArticleCount, tags[i-1].ArticleCount)
		}
	}
}

func TestPopularTags_DefaultLimit(t *testing.T) {
	p := testProvider()
	tags, err := p.PopularTags(context.Background(), 0)
	if err != nil {
		t.Fatalf("PopularTags: %v", err)
	}
	if len(tags) != 10 {
		t.Errorf("len = %d, want default limit 10", len(tags))
	}
}

func TestCategoriesByPopularity_Order(t *testing.T) {
	p := testProvider()
	cats, err := p.CategoriesByPopularity(context.Background())
	if err != nil {
		t.Fatalf("CategoriesByPopularity: %v", err)
	}
	if len(cats) != len(seedCategories) {
		t.Fatalf("len = %d, want %d", len(cats), len(seedCategories))
	}
	for i := 1; i < len(cats); i++ {
		if cats[i].ArticleCount > cats[i-1].ArticleCount {
			t.Errorf("categories not sorted at %d", i)
		}
	}
}

func TestWait_CancelledContext(t *testing.T) {
	p := NewWithLatency(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Categories(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
