package service

import (
	"context"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

const maxCommentLength = 2000

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	PostID   uint
	Content  string
	ParentID *uint
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

func (s *CommentService) CreateComment(ctx context.Context, userID uint, in CreateCommentInput) (*models.Comment, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewFieldValidationError("Validation failed", map[string]string{"content": "Content is required"})
	}
	if len(content) > maxCommentLength {
		return nil, models.NewFieldValidationError("Validation failed", map[string]string{"content": "Content must be at most 2000 characters"})
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.Status != models.PostStatusPublished {
		return nil, models.NewNotFoundError("Post", in.PostID)
	}

	// Parents are fixed at creation and never reassigned, so the tree
	// cannot acquire cycles after the fact.
	if in.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *in.ParentID, userID)
		if err != nil {
			return nil, err
		}
		if parent.PostID != in.PostID {
			return nil, models.NewValidationError("Parent comment belongs to a different post")
		}
	}

	comment := &models.Comment{
		Content:    content,
		UserID:     userID,
		PostID:     in.PostID,
		ParentID:   in.ParentID,
		IsApproved: true,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID, userID)
}

// UpdateComment replaces the content of an already loaded comment and
// marks it as edited. Ownership checks happen before the comment gets here.
func (s *CommentService) UpdateComment(ctx context.Context, comment *models.Comment, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewFieldValidationError("Validation failed", map[string]string{"content": "Content is required"})
	}
	if len(content) > maxCommentLength {
		return nil, models.NewFieldValidationError("Validation failed", map[string]string{"content": "Content must be at most 2000 characters"})
	}

	comment.Content = content
	comment.IsEdited = true
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID, comment.UserID)
}

// DeleteComment removes a single comment. Replies stay in place and
// surface as top-level orphans of the post.
func (s *CommentService) DeleteComment(ctx context.Context, comment *models.Comment) error {
	return s.commentRepo.Delete(ctx, comment.ID)
}

func (s *CommentService) ToggleLike(ctx context.Context, userID, commentID uint) (bool, int64, error) {
	if _, err := s.commentRepo.GetByID(ctx, commentID, userID); err != nil {
		return false, 0, err
	}
	return s.commentRepo.ToggleLike(ctx, userID, commentID)
}

func (s *CommentService) SetApproved(ctx context.Context, commentID uint, approved bool) (*models.Comment, error) {
	if err := s.commentRepo.SetApproved(ctx, commentID, approved); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, commentID, 0)
}

// ListByPost returns the top-level comments of a post. The post follows the
// same visibility rule as GetPost: drafts and archived posts answer not-found
// unless the viewer can edit them, so their comments never leak.
func (s *CommentService) ListByPost(ctx context.Context, postID uint, limit, offset int, principal *models.Principal) ([]*models.Comment, int64, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, 0, err
	}
	if post.Status != models.PostStatusPublished {
		if principal == nil || (principal.ID != post.UserID && !principal.IsAdmin()) {
			return nil, 0, models.NewNotFoundError("Post", postID)
		}
	}
	return s.commentRepo.ListTopLevelByPost(ctx, postID, limit, offset, viewerID(principal))
}

// ListReplies returns the direct replies of a comment. An unapproved parent
// is hidden from everyone but its author and admins, and its replies with it.
func (s *CommentService) ListReplies(ctx context.Context, parentID uint, principal *models.Principal) ([]*models.Comment, error) {
	parent, err := s.commentRepo.GetByID(ctx, parentID, viewerID(principal))
	if err != nil {
		return nil, err
	}
	if !parent.IsApproved {
		if principal == nil || (principal.ID != parent.UserID && !principal.IsAdmin()) {
			return nil, models.NewNotFoundError("Comment", parentID)
		}
	}
	return s.commentRepo.ListReplies(ctx, parentID, viewerID(principal))
}

func viewerID(principal *models.Principal) uint {
	if principal == nil {
		return 0
	}
	return principal.ID
}
