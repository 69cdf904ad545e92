// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/services"
)

var errRemote = errors.New("remote down")

// fakeArticles is a scriptable ArticleService. Mutations record the call
// and the next GetAll serves whatever list is loaded.
type fakeArticles struct {
	list    []models.Article
	err     error
	fetches int
	created []services.CreateArticleInput
	updated []string
	deleted []string
	bumped  []string
	liked   []string
}

func (f *fakeArticles) GetAll(ctx context.Context) ([]models.Article, error) {
	f.fetches++
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func (f *fakeArticles) Create(ctx context.Context, in services.CreateArticleInput) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, in)
	return "created-id", nil
}

func (f *fakeArticles) Update(ctx context.Context, id string, in services.UpdateArticleInput) error {
	if f.err != nil {
		return f.err
	}
	f.updated = append(f.updated, id)
	return nil
}

func (f *fakeArticles) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeArticles) IncrementReadCount(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.bumped = append(f.bumped, id)
	return nil
}

func (f *fakeArticles) ToggleLike(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.liked = append(f.liked, id)
	return nil
}

type fakeCategories struct {
	list []models.Category
	err  error
}

func (f *fakeCategories) GetAll(ctx context.Context) ([]models.Category, error) {
	return f.list, f.err
}
func (f *fakeCategories) Create(ctx context.Context, in services.CreateCategoryInput) (string, error) {
	return "cat-id", f.err
}
func (f *fakeCategories) Update(ctx context.Context, id string, in services.UpdateCategoryInput) error {
	return f.err
}
func (f *fakeCategories) Delete(ctx context.Context, id string) error { return f.err }

type fakeTags struct {
	list []models.Tag
	err  error
}

func (f *fakeTags) GetAll(ctx context.Context) ([]models.Tag, error) { return f.list, f.err }
func (f *fakeTags) Create(ctx context.Context, in services.CreateTagInput) (string, error) {
	return "tag-id", f.err
}
func (f *fakeTags) Update(ctx context.Context, id string, in services.UpdateTagInput) error {
	return f.err
}
func (f *fakeTags) Delete(ctx context.Context, id string) error { return f.err }

type fakeFallback struct {
	cats []models.Category
	tags []models.Tag
	err  error
}

func (f *fakeFallback) Categories(ctx context.Context) ([]models.Category, error) {
	return f.cats, f.err
}
func (f *fakeFallback) Tags(ctx context.Context) ([]models.Tag, error) { return f.tags, f.err }
func (f *fakeFallback) Articles(ctx context.Context) ([]models.Article, error) { return nil, f.err }

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func sampleArticles() []models.Article {
	mk := func(id, title string, status models.ArticleStatus, catID, tag string, reads, likes int, pub time.Time) models.Article {
		return models.Article{
			ID: id, Title: title, Content: "content of " + title,
			Category: models.Category{ID: catID},
			Tags:     []models.Tag{{ID: tag, Name: tag}},
			Status:   status, ReadCount: reads, LikeCount: likes, PublishDate: pub,
		}
	}
	return []models.Article{
		mk("a1", "Intro to Go", models.StatusPublished, "c1", "Go", 100, 10, day(1)),
		mk("a2", "Draft thoughts", models.StatusDraft, "c1", "Go", 0, 0, day(2)),
		mk("a3", "Vue patterns", models.StatusPublished, "c2", "Vue.js", 300, 30, day(3)),
		mk("a4", "More Go", models.StatusPublished, "c1", "Go", 200, 20, day(4)),
		mk("a5", "CSS tricks", models.StatusPublished, "c2", "CSS", 50, 5, day(5)),
		mk("a6", "Old classic", models.StatusPublished, "c2", "CSS", 400, 40, day(6)),
		mk("a7", "Fresh one", models.StatusPublished, "c1", "Go", 10, 1, day(7)),
	}
}

func newTestStore(t *testing.T, arts *fakeArticles, preferFallback bool) (*BlogStore, *fakeCategories, *fakeTags, *fakeFallback) {
	t.Helper()
	cats := &fakeCategories{list: []models.Category{{ID: "remote-cat"}}}
	tags := &fakeTags{list: []models.Tag{{ID: "remote-tag"}}}
	fb := &fakeFallback{
		cats: []models.Category{{ID: "fb-cat-1"}, {ID: "fb-cat-2"}},
		tags: []models.Tag{{ID: "fb-tag"}},
	}
	return NewBlogStore(arts, cats, tags, fb, preferFallback), cats, tags, fb
}

func TestFetchArticles_PopulatesCache(t *testing.T) {
	arts := &fakeArticles{list: sampleArticles()}
	s, _, _, _ := newTestStore(t, arts, true)

	if err := s.FetchArticles(context.Background()); err != nil {
		t.Fatalf("FetchArticles: %v", err)
	}
	if got := len(s.Articles()); got != 7 {
		t.Errorf("cached articles = %d, want 7", got)
	}
	if s.Err() != nil {
		t.Errorf("Err = %v, want nil", s.Err())
	}
}

func TestFetchArticles_ErrorRecordedNoFallback(t *testing.T) {
	arts := &fakeArticles{err: errRemote}
	s, _, _, _ := newTestStore(t, arts, true)

	if err := s.FetchArticles(context.Background()); !errors.Is(err, errRemote) {
		t.Fatalf("err = %v, want errRemote", err)
	}
	if !errors.Is(s.Err(), errRemote) {
		t.Errorf("Err = %v, want errRemote recorded", s.Err())
	}
	if len(s.Articles()) != 0 {
		t.Error("article cache must stay empty on failure")
	}
}

func TestFetchCategories_FallbackFirst(t *testing.T) {
	s, _, _, _ := newTestStore(t, &fakeArticles{}, true)

	if err := s.FetchCategories(context.Background()); err != nil {
		t.Fatalf("FetchCategories: %v", err)
	}
	cats := s.Categories()
	if len(cats) != 2 || cats[0].ID != "fb-cat-1" {
		t.Errorf("categories = %+v, want the fallback set", cats)
	}
}

func TestFetchCategories_RemoteFirst(t *testing.T) {
	s, _, _, _ := newTestStore(t, &fakeArticles{}, false)

	if err := s.FetchCategories(context.Background()); err != nil {
		t.Fatalf("FetchCategories: %v", err)
	}
	cats := s.Categories()
	if len(cats) != 1 || cats[0].ID != "remote-cat" {
		t.Errorf("categories = %+v, want the remote set", cats)
	}
}

func TestFetchCategories_BackupKicksIn(t *testing.T) {
	s, cats, _, fb := newTestStore(t, &fakeArticles{}, true)
	fb.err = errors.New("fallback broken")

	if err := s.FetchCategories(context.Background()); err != nil {
		t.Fatalf("FetchCategories: %v", err)
	}
	got := s.Categories()
	if len(got) != 1 || got[0].ID != "remote-cat" {
		t.Errorf("categories = %+v, want remote backup", got)
	}

	// When both sides fail the error surfaces.
	cats.err = errRemote
	if err := s.FetchCategories(context.Background()); !errors.Is(err, errRemote) {
		t.Errorf("err = %v, want errRemote when both sources fail", err)
	}
}

func TestFetchTags_FallbackFirst(t *testing.T) {
	s, _, _, _ := newTestStore(t, &fakeArticles{}, true)
	if err := s.FetchTags(context.Background()); err != nil {
		t.Fatalf("FetchTags: %v", err)
	}
	tags := s.Tags()
	if len(tags) != 1 || tags[0].ID != "fb-tag" {
		t.Errorf("tags = %+v, want fallback set", tags)
	}
}

func TestViews(t *testing.T) {
	arts := &fakeArticles{list: sampleArticles()}
	s, _, _, _ := newTestStore(t, arts, true)
	s.FetchArticles(context.Background())

	t.Run("published and drafts", func(t *testing.T) {
		if got := len(s.PublishedArticles()); got != 6 {
			t.Errorf("published = %d, want 6", got)
		}
		drafts := s.DraftArticles()
		if len(drafts) != 1 || drafts[0].ID != "a2" {
			t.Errorf("drafts = %+v", drafts)
		}
	})

	t.Run("by id any status", func(t *testing.T) {
		if _, ok := s.ArticleByID("a2"); !ok {
			t.Error("draft must be findable by id")
		}
		if _, ok := s.ArticleByID("missing"); ok {
			t.Error("missing id found")
		}
	})

	t.Run("by category excludes drafts", func(t *testing.T) {
		got := s.ArticlesByCategory("c1")
		if len(got) != 3 {
			t.Errorf("c1 articles = %d, want 3 (draft excluded)", len(got))
		}
	})

	t.Run("by tag is exact and case sensitive", func(t *testing.T) {
		if got := len(s.ArticlesByTag("Go")); got != 3 {
			t.Errorf("Go articles = %d, want 3", got)
		}
		if got := len(s.ArticlesByTag("go")); got != 0 {
			t.Errorf("lowercase tag matched %d, want 0", got)
		}
	})

	t.Run("search is case insensitive over title content tags", func(t *testing.T) {
		if got := len(s.SearchArticles("VUE")); got != 1 {
			t.Errorf("VUE matches = %d, want 1", got)
		}
		// Tag name match.
		if got := len(s.SearchArticles("css")); got != 2 {
			t.Errorf("css matches = %d, want 2", got)
		}
		// Blank query returns all published.
		if got := len(s.SearchArticles("   ")); got != 6 {
			t.Errorf("blank query = %d, want 6", got)
		}
	})

	t.Run("search never returns drafts even on a match", func(t *testing.T) {
		// The draft carries tag "Go" and so matches the query; it must
		// still be excluded.
		got := s.SearchArticles("go")
		if len(got) != 3 {
			t.Fatalf("go matches = %d, want 3 published", len(got))
		}
		for _, a := range got {
			if a.Status != models.StatusPublished {
				t.Errorf("article %s is %s, search must only return published", a.ID, a.Status)
			}
		}
	})

	t.Run("popular top 5 by reads", func(t *testing.T) {
		got := s.PopularArticles()
		if len(got) != 5 {
			t.Fatalf("popular = %d, want 5", len(got))
		}
		if got[0].ID != "a6" || got[1].ID != "a3" {
			t.Errorf("popular order = %s, %s", got[0].ID, got[1].ID)
		}
		for _, a := range got {
			if a.ID == "a7" {
				t.Error("least-read article must not make top 5")
			}
		}
	})

	t.Run("recent top 5 by publish date", func(t *testing.T) {
		got := s.RecentArticles()
		if len(got) != 5 {
			t.Fatalf("recent = %d, want 5", len(got))
		}
		if got[0].ID != "a7" {
			t.Errorf("most recent = %s, want a7", got[0].ID)
		}
	})

	t.Run("stats over published only", func(t *testing.T) {
		s.FetchCategories(context.Background())
		s.FetchTags(context.Background())
		stats := s.Stats()
		if stats.TotalArticles != 6 {
			t.Errorf("TotalArticles = %d, want 6", stats.TotalArticles)
		}
		if stats.TotalViews != 1060 {
			t.Errorf("TotalViews = %d, want 1060", stats.TotalViews)
		}
		if stats.TotalLikes != 106 {
			t.Errorf("TotalLikes = %d, want 106", stats.TotalLikes)
		}
		if stats.TotalCategories != 2 || stats.TotalTags != 1 {
			t.Errorf("cats/tags = %d/%d, want 2/1", stats.TotalCategories, stats.TotalTags)
		}
	})
}

func TestCreateArticle_WriteThenRefetch(t *testing.T) {
	arts := &fakeArticles{list: sampleArticles()}
	s, _, _, _ := newTestStore(t, arts, true)

	id, err := s.CreateArticle(context.Background(), services.CreateArticleInput{Title: "New"})
	if err != nil {
		t.Fatalf("CreateArticle: %v", err)
	}
	if id != "created-id" {
		t.Errorf("id = %q", id)
	}
	if arts.fetches != 1 {
		t.Errorf("fetches after create = %d, want 1", arts.fetches)
	}
	if len(s.Articles()) != 7 {
		t.Error("cache not refreshed after create")
	}
}

func TestMutation_FailureDoesNotRefetch(t *testing.T) {
	arts := &fakeArticles{err: errRemote}
	s, _, _, _ := newTestStore(t, arts, true)

	if err := s.DeleteArticle(context.Background(), "a1"); !errors.Is(err, errRemote) {
		t.Fatalf("err = %v", err)
	}
	if arts.fetches != 0 {
		t.Errorf("fetches = %d, want 0 after failed mutation", arts.fetches)
	}
	if !errors.Is(s.Err(), errRemote) {
		t.Error("mutation error not recorded")
	}
}

func TestIncrementReadCount_PatchesInPlace(t *testing.T) {
	arts := &fakeArticles{list: sampleArticles()}
	s, _, _, _ := newTestStore(t, arts, true)
	s.FetchArticles(context.Background())
	fetchesBefore := arts.fetches

	if err := s.IncrementReadCount(context.Background(), "a1"); err != nil {
		t.Fatalf("IncrementReadCount: %v", err)
	}
	a, _ := s.ArticleByID("a1")
	if a.ReadCount != 101 {
		t.Errorf("ReadCount = %d, want 101", a.ReadCount)
	}
	if arts.fetches != fetchesBefore {
		t.Error("counter bump must not refetch the list")
	}
}

func TestToggleLike_PatchesInPlace(t *testing.T) {
	arts := &fakeArticles{list: sampleArticles()}
	s, _, _, _ := newTestStore(t, arts, true)
	s.FetchArticles(context.Background())

	if err := s.ToggleLike(context.Background(), "a3"); err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	a, _ := s.ArticleByID("a3")
	if a.LikeCount != 31 {
		t.Errorf("LikeCount = %d, want 31", a.LikeCount)
	}
}

func TestCounterFailure_CacheUntouched(t *testing.T) {
	arts := &fakeArticles{list: sampleArticles()}
	s, _, _, _ := newTestStore(t, arts, true)
	s.FetchArticles(context.Background())

	arts.err = errRemote
	if err := s.IncrementReadCount(context.Background(), "a1"); !errors.Is(err, errRemote) {
		t.Fatalf("err = %v", err)
	}
	a, _ := s.ArticleByID("a1")
	if a.ReadCount != 100 {
		t.Errorf("ReadCount = %d, want untouched 100", a.ReadCount)
	}
}
