package service

import (
	"context"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
)

const (
	maxPostTitleLength   = 200
	maxPostExcerptLength = 500
	maxPostTags          = 10
	trendingPostLimit    = 5
)

type PostService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
}

type CreatePostInput struct {
	Title         string
	Content       string
	Excerpt       string
	CategoryID    uint
	Tags          []string
	FeaturedImage string
	Status        string
}

type UpdatePostInput struct {
	Title         string
	Content       string
	Excerpt       string
	CategoryID    uint
	Tags          []string
	FeaturedImage string
	Status        string
	IsFeatured    *bool
}

func NewPostService(postRepo repository.PostRepository, categoryRepo repository.CategoryRepository) *PostService {
	return &PostService{postRepo: postRepo, categoryRepo: categoryRepo}
}

func (s *PostService) CreatePost(ctx context.Context, userID uint, in CreatePostInput) (*models.Post, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, models.NewFieldValidationError("Validation failed", map[string]string{"title": "Title is required"})
	}
	if len(title) > maxPostTitleLength {
		return nil, models.NewFieldValidationError("Validation failed", map[string]string{"title": "Title must be at most 200 characters"})
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewFieldValidationError("Validation failed", map[string]string{"content": "Content is required"})
	}
	if len(in.Excerpt) > maxPostExcerptLength {
		return nil, models.NewFieldValidationError("Validation failed", map[string]string{"excerpt": "Excerpt must be at most 500 characters"})
	}
	if len(in.Tags) > maxPostTags {
		return nil, models.NewFieldValidationError("Validation failed", map[string]string{"tags": "At most 10 tags are allowed"})
	}

	status := in.Status
	if status == "" {
		status = models.PostStatusDraft
	}
	if !models.ValidPostStatus(status) {
		return nil, models.NewFieldValidationError("Validation failed", map[string]string{"status": "Status must be one of draft, published, archived"})
	}

	if _, err := s.categoryRepo.GetByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:         title,
		Content:       in.Content,
		Excerpt:       in.Excerpt,
		UserID:        userID,
		CategoryID:    in.CategoryID,
		Tags:          normalizeTags(in.Tags),
		FeaturedImage: in.FeaturedImage,
		Status:        status,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// UpdatePost applies the non-empty fields of in to an already loaded post.
// Ownership checks happen before the post reaches this method.
func (s *PostService) UpdatePost(ctx context.Context, post *models.Post, in UpdatePostInput) (*models.Post, error) {
	if title := strings.TrimSpace(in.Title); title != "" {
		if len(title) > maxPostTitleLength {
			return nil, models.NewFieldValidationError("Validation failed", map[string]string{"title": "Title must be at most 200 characters"})
		}
		post.Title = title
	}
	if in.Content != "" {
		post.Content = in.Content
	}
	if in.Excerpt != "" {
		if len(in.Excerpt) > maxPostExcerptLength {
			return nil, models.NewFieldValidationError("Validation failed", map[string]string{"excerpt": "Excerpt must be at most 500 characters"})
		}
		post.Excerpt = in.Excerpt
	}
	if in.CategoryID != 0 && in.CategoryID != post.CategoryID {
		if _, err := s.categoryRepo.GetByID(ctx, in.CategoryID); err != nil {
			return nil, err
		}
		post.CategoryID = in.CategoryID
	}
	if in.Tags != nil {
		if len(in.Tags) > maxPostTags {
			return nil, models.NewFieldValidationError("Validation failed", map[string]string{"tags": "At most 10 tags are allowed"})
		}
		post.Tags = normalizeTags(in.Tags)
	}
	if in.FeaturedImage != "" {
		post.FeaturedImage = in.FeaturedImage
	}
	if in.Status != "" {
		if !models.ValidPostStatus(in.Status) {
			return nil, models.NewFieldValidationError("Validation failed", map[string]string{"status": "Status must be one of draft, published, archived"})
		}
		post.Status = in.Status
	}
	if in.IsFeatured != nil {
		post.IsFeatured = *in.IsFeatured
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) DeletePost(ctx context.Context, post *models.Post) error {
	return s.postRepo.Delete(ctx, post.ID)
}

// GetPost returns a single post for public viewing and records the view.
// Drafts and archived posts are hidden unless the viewer can edit them.
func (s *PostService) GetPost(ctx context.Context, id uint, principal *models.Principal) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if post.Status != models.PostStatusPublished {
		if principal == nil || (principal.ID != post.UserID && !principal.IsAdmin()) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return post, nil
	}

	if err := s.postRepo.IncrementViewCount(ctx, id); err != nil {
		return nil, err
	}
	post.ViewCount++
	observability.PostViews.Inc()
	return post, nil
}

// ListPosts serves the public listing. Only published posts are visible.
func (s *PostService) ListPosts(ctx context.Context, q repository.PostQuery) ([]*models.Post, int64, error) {
	q.Status = models.PostStatusPublished
	return s.postRepo.List(ctx, q)
}

func (s *PostService) Trending(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.Trending(ctx, trendingPostLimit)
}

func normalizeTags(tags []string) models.StringList {
	out := make(models.StringList, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		out = append(out, tag)
	}
	return out
}
