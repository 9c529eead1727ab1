package service

import (
	"context"
	"strings"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publishedPostRepo() *postRepoStub {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, Status: models.PostStatusPublished}, nil
	}
	return repo
}

func TestCommentService_CreateComment_Validation(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(noopCommentRepo(), publishedPostRepo())
	ctx := context.Background()

	tests := []struct {
		name    string
		content string
	}{
		{name: "empty content", content: ""},
		{name: "whitespace content", content: "   \n\t"},
		{name: "content too long", content: strings.Repeat("x", 2001)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.CreateComment(ctx, 1, CreateCommentInput{PostID: 1, Content: tt.content})
			assertValidationError(t, err)
		})
	}
}

func TestCommentService_CreateComment_UnpublishedPost(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, Status: models.PostStatusDraft}, nil
	}

	svc := NewCommentService(noopCommentRepo(), postRepo)
	_, err := svc.CreateComment(context.Background(), 1, CreateCommentInput{PostID: 1, Content: "nice"})
	assertNotFoundError(t, err)
}

func TestCommentService_CreateComment_ParentOnDifferentPost(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Comment, error) {
		return &models.Comment{ID: id, PostID: 42}, nil
	}

	svc := NewCommentService(commentRepo, publishedPostRepo())
	parentID := uint(3)
	_, err := svc.CreateComment(context.Background(), 1, CreateCommentInput{
		PostID: 1, Content: "reply", ParentID: &parentID,
	})
	assertValidationError(t, err)
}

func TestCommentService_CreateComment_Reply(t *testing.T) {
	t.Parallel()

	var created *models.Comment
	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Comment, error) {
		if created != nil && id == created.ID {
			return created, nil
		}
		return &models.Comment{ID: id, PostID: 1}, nil
	}
	commentRepo.createFn = func(_ context.Context, c *models.Comment) error {
		c.ID = 10
		created = c
		return nil
	}

	svc := NewCommentService(commentRepo, publishedPostRepo())
	parentID := uint(3)
	comment, err := svc.CreateComment(context.Background(), 5, CreateCommentInput{
		PostID: 1, Content: "  a reply  ", ParentID: &parentID,
	})
	require.NoError(t, err)
	require.NotNil(t, comment.ParentID)
	assert.Equal(t, parentID, *comment.ParentID)
	assert.Equal(t, "a reply", comment.Content)
	assert.True(t, comment.IsApproved)
}

func TestCommentService_ListByPost_HiddenPostVisibility(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 7, Status: models.PostStatusDraft}, nil
	}
	svc := NewCommentService(noopCommentRepo(), postRepo)
	ctx := context.Background()

	tests := []struct {
		name      string
		principal *models.Principal
		wantErr   bool
	}{
		{name: "anonymous", principal: nil, wantErr: true},
		{name: "stranger", principal: &models.Principal{ID: 9, Role: models.RoleUser}, wantErr: true},
		{name: "author", principal: &models.Principal{ID: 7, Role: models.RoleUser}},
		{name: "admin", principal: &models.Principal{ID: 9, Role: models.RoleAdmin}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := svc.ListByPost(ctx, 1, 10, 0, tt.principal)
			if tt.wantErr {
				assertNotFoundError(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCommentService_ListReplies_UnapprovedParentVisibility(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Comment, error) {
		return &models.Comment{ID: id, UserID: 7, PostID: 1, IsApproved: false}, nil
	}
	svc := NewCommentService(commentRepo, noopPostRepo())
	ctx := context.Background()

	_, err := svc.ListReplies(ctx, 3, nil)
	assertNotFoundError(t, err)

	_, err = svc.ListReplies(ctx, 3, &models.Principal{ID: 9, Role: models.RoleUser})
	assertNotFoundError(t, err)

	_, err = svc.ListReplies(ctx, 3, &models.Principal{ID: 7, Role: models.RoleUser})
	assert.NoError(t, err)

	_, err = svc.ListReplies(ctx, 3, &models.Principal{ID: 9, Role: models.RoleAdmin})
	assert.NoError(t, err)
}

func TestCommentService_UpdateComment_SetsEdited(t *testing.T) {
	t.Parallel()

	comment := &models.Comment{ID: 2, UserID: 1, PostID: 1, Content: "original"}
	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, _, _ uint) (*models.Comment, error) { return comment, nil }

	svc := NewCommentService(commentRepo, noopPostRepo())
	updated, err := svc.UpdateComment(context.Background(), comment, "changed")
	require.NoError(t, err)
	assert.Equal(t, "changed", updated.Content)
	assert.True(t, updated.IsEdited)
}

func TestCommentService_ToggleLike_UnknownComment(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Comment, error) {
		return nil, models.NewNotFoundError("Comment", id)
	}

	svc := NewCommentService(commentRepo, noopPostRepo())
	_, _, err := svc.ToggleLike(context.Background(), 1, 99)
	assertNotFoundError(t, err)
}

func TestCommentService_ToggleLike_RoundTrip(t *testing.T) {
	t.Parallel()

	liked := false
	var count int64
	commentRepo := noopCommentRepo()
	commentRepo.toggleLikeFn = func(_ context.Context, _, _ uint) (bool, int64, error) {
		liked = !liked
		if liked {
			count++
		} else {
			count--
		}
		return liked, count, nil
	}

	svc := NewCommentService(commentRepo, noopPostRepo())
	ctx := context.Background()

	gotLiked, gotCount, err := svc.ToggleLike(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, gotLiked)
	assert.Equal(t, int64(1), gotCount)

	// A second toggle by the same user removes the like again.
	gotLiked, gotCount, err = svc.ToggleLike(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, gotLiked)
	assert.Equal(t, int64(0), gotCount)
}
