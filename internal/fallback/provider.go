// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package fallback serves a canned, read-only dataset when the remote
// gateway is unreachable or unconfigured. The data is deliberately
// realistic: a handful of published tech articles with their categories
// and tags, so the application stays fully browsable offline.
package fallback

import (
	"context"
	"sort"
	"time"

	"inkwell/internal/models"
)

// defaultLatency approximates a network round trip so callers exercise
// the same async paths they would against the real backend.
const defaultLatency = 100 * time.Millisecond

// Provider hands out copies of the seed dataset. Reads never fail except
// by context cancellation; there are no write operations.
type Provider struct {
	latency time.Duration
}

// New creates a Provider with the default simulated latency.
func New() *Provider {
	return &Provider{latency: defaultLatency}
}

// NewWithLatency creates a Provider with a custom delay. Tests pass zero.
func NewWithLatency(d time.Duration) *Provider {
	return &Provider{latency: d}
}

// Categories returns all seed categories.
func (p *Provider) Categories(ctx context.Context) ([]models.Category, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]models.Category, len(seedCategories))
	copy(out, seedCategories)
	return out, nil
}

// Tags returns all seed tags.
func (p *Provider) Tags(ctx context.Context) ([]models.Tag, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]models.Tag, len(seedTags))
	copy(out, seedTags)
	return out, nil
}

// Articles returns all seed articles. Each article's tag slice is copied
// so callers can mutate their view without touching the dataset.
func (p *Provider) Articles(ctx context.Context) ([]models.Article, error) {
	// The article payload is bigger, so it gets a longer simulated trip.
	if err := p.waitFor(ctx, 2*p.latency); err != nil {
		return nil, err
	}
	out := make([]models.Article, len(seedArticles))
	copy(out, seedArticles)
	for i := range out {
		tags := make([]models.Tag, len(out[i].Tags))
		copy(tags, out[i].Tags)
		out[i].Tags = tags
	}
	return out, nil
}

// PopularTags returns up to limit tags ordered by article count, highest
// first. A non-positive limit defaults to 10.
func (p *Provider) PopularTags(ctx context.Context, limit int) ([]models.Tag, error) {
	if limit <= 0 {
		limit = 10
	}
	tags, err := p.Tags(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].ArticleCount > tags[j].ArticleCount
	})
	if len(tags) > limit {
		tags = tags[:limit]
	}
	return tags, nil
}

// CategoriesByPopularity returns all categories ordered by article
// count, highest first.
func (p *Provider) CategoriesByPopularity(ctx context.Context) ([]models.Category, error) {
	cats, err := p.Categories(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].ArticleCount > cats[j].ArticleCount
	})
	return cats, nil
}

func (p *Provider) wait(ctx context.Context) error {
	return p.waitFor(ctx, p.latency)
}

func (p *Provider) waitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
