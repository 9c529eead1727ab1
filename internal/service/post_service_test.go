package service

import (
	"context"
	"strings"
	"testing"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_CreatePost_Validation(t *testing.T) {
	t.Parallel()

	svc := NewPostService(noopPostRepo(), noopCategoryRepo())
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreatePostInput
	}{
		{
			name:  "empty title",
			input: CreatePostInput{Content: "some content", CategoryID: 1},
		},
		{
			name:  "whitespace title",
			input: CreatePostInput{Title: "   ", Content: "some content", CategoryID: 1},
		},
		{
			name:  "title too long",
			input: CreatePostInput{Title: strings.Repeat("a", 201), Content: "some content", CategoryID: 1},
		},
		{
			name:  "empty content",
			input: CreatePostInput{Title: "A title", CategoryID: 1},
		},
		{
			name:  "excerpt too long",
			input: CreatePostInput{Title: "A title", Content: "content", Excerpt: strings.Repeat("e", 501), CategoryID: 1},
		},
		{
			name: "too many tags",
			input: CreatePostInput{
				Title: "A title", Content: "content", CategoryID: 1,
				Tags: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"},
			},
		},
		{
			name:  "unknown status",
			input: CreatePostInput{Title: "A title", Content: "content", CategoryID: 1, Status: "live"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.CreatePost(ctx, 1, tt.input)
			assertValidationError(t, err)
		})
	}
}

func TestPostService_CreatePost_DefaultsToDraft(t *testing.T) {
	t.Parallel()

	var created *models.Post
	postRepo := noopPostRepo()
	postRepo.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = 7
		created = p
		return nil
	}
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return created, nil
	}

	svc := NewPostService(postRepo, noopCategoryRepo())
	post, err := svc.CreatePost(context.Background(), 3, CreatePostInput{
		Title:      "  Hello World  ",
		Content:    "body",
		CategoryID: 2,
		Tags:       []string{" go ", "", "web"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusDraft, post.Status)
	assert.Equal(t, "Hello World", post.Title)
	assert.Equal(t, uint(3), post.UserID)
	assert.Equal(t, models.StringList{"go", "web"}, post.Tags)
}

func TestPostService_CreatePost_UnknownCategory(t *testing.T) {
	t.Parallel()

	categoryRepo := noopCategoryRepo()
	categoryRepo.getByIDFn = func(_ context.Context, id uint) (*models.Category, error) {
		return nil, models.NewNotFoundError("Category", id)
	}

	svc := NewPostService(noopPostRepo(), categoryRepo)
	_, err := svc.CreatePost(context.Background(), 1, CreatePostInput{
		Title: "A title", Content: "content", CategoryID: 99,
	})
	assertNotFoundError(t, err)
}

func TestPostService_GetPost_DraftHiddenFromPublic(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 4, Status: models.PostStatusDraft}, nil
	}
	incremented := false
	postRepo.incrementViewFn = func(_ context.Context, _ uint) error {
		incremented = true
		return nil
	}
	svc := NewPostService(postRepo, noopCategoryRepo())
	ctx := context.Background()

	// Anonymous viewers get a 404 rather than a hint that the draft exists.
	_, err := svc.GetPost(ctx, 1, nil)
	assertNotFoundError(t, err)

	// Another authenticated user fares no better.
	_, err = svc.GetPost(ctx, 1, &models.Principal{ID: 9, Role: models.RoleUser})
	assertNotFoundError(t, err)

	// The author sees the draft; admins too. Draft views are not counted.
	post, err := svc.GetPost(ctx, 1, &models.Principal{ID: 4, Role: models.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, uint(1), post.ID)

	_, err = svc.GetPost(ctx, 1, &models.Principal{ID: 9, Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.False(t, incremented)
}

func TestPostService_GetPost_CountsViewOnce(t *testing.T) {
	t.Parallel()

	views := 10
	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, Status: models.PostStatusPublished, ViewCount: views}, nil
	}
	postRepo.incrementViewFn = func(_ context.Context, _ uint) error {
		views++
		return nil
	}

	svc := NewPostService(postRepo, noopCategoryRepo())
	ctx := context.Background()

	post, err := svc.GetPost(ctx, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 11, post.ViewCount)

	post, err = svc.GetPost(ctx, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, post.ViewCount)
}

func TestPostService_ListPosts_ForcesPublished(t *testing.T) {
	t.Parallel()

	var seen repository.PostQuery
	postRepo := noopPostRepo()
	postRepo.listFn = func(_ context.Context, q repository.PostQuery) ([]*models.Post, int64, error) {
		seen = q
		return nil, 0, nil
	}

	svc := NewPostService(postRepo, noopCategoryRepo())
	// Callers cannot smuggle a draft filter through the public listing.
	_, _, err := svc.ListPosts(context.Background(), repository.PostQuery{Status: models.PostStatusDraft, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusPublished, seen.Status)
}

func TestPostService_UpdatePost_PartialFields(t *testing.T) {
	t.Parallel()

	post := &models.Post{
		ID: 5, UserID: 2, CategoryID: 1,
		Title: "Old title", Content: "Old content", Status: models.PostStatusDraft,
	}
	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) { return post, nil }

	svc := NewPostService(postRepo, noopCategoryRepo())
	updated, err := svc.UpdatePost(context.Background(), post, UpdatePostInput{
		Title:  "New title",
		Status: models.PostStatusPublished,
	})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "Old content", updated.Content)
	assert.Equal(t, models.PostStatusPublished, updated.Status)
}

func TestPostService_Trending_UsesFixedLimit(t *testing.T) {
	t.Parallel()

	var limit int
	postRepo := noopPostRepo()
	postRepo.trendingFn = func(_ context.Context, l int) ([]*models.Post, error) {
		limit = l
		return []*models.Post{{ID: 1}}, nil
	}

	svc := NewPostService(postRepo, noopCategoryRepo())
	posts, err := svc.Trending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, limit)
	assert.Len(t, posts, 1)
}
