// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"inkwell/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommentRepository defines interface for comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Comment, error)
	ListTopLevelByPost(ctx context.Context, postID uint, limit, offset int, currentUserID uint) ([]*models.Comment, int64, error)
	ListReplies(ctx context.Context, parentID uint, currentUserID uint) ([]*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
	ToggleLike(ctx context.Context, userID, commentID uint) (liked bool, likes int64, err error)
	SetApproved(ctx context.Context, id uint, approved bool) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.applyCommentDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, err
	}
	return &comment, nil
}

// ListTopLevelByPost returns approved top-level comments (parent IS NULL)
// newest-first, each with its approved direct replies oldest-first.
func (r *commentRepository) ListTopLevelByPost(
	ctx context.Context,
	postID uint,
	limit, offset int,
	currentUserID uint,
) ([]*models.Comment, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("post_id = ? AND parent_id IS NULL AND is_approved", postID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var comments []*models.Comment
	err = r.applyCommentDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			// Replies carry the same like columns as their parents.
			return r.applyCommentDetails(db, currentUserID).
				Where("is_approved").Order("created_at ASC").Preload("User")
		}).
		Where("post_id = ? AND parent_id IS NULL AND is_approved", postID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// ListReplies returns the approved direct replies of a comment, oldest-first.
func (r *commentRepository) ListReplies(ctx context.Context, parentID uint, currentUserID uint) ([]*models.Comment, error) {
	var replies []*models.Comment
	err := r.applyCommentDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Where("parent_id = ? AND is_approved", parentID).
		Order("created_at ASC").
		Find(&replies).Error
	return replies, err
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

// Delete removes the comment only. Replies are intentionally left in place
// referencing the removed parent; they are orphaned, not cascaded.
func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error
}

// ToggleLike flips the (user, comment) like state and returns the new state
// and resulting count. The insert relies on the unique index plus ON CONFLICT
// DO NOTHING, so a concurrent duplicate toggle cannot produce two rows.
func (r *commentRepository) ToggleLike(ctx context.Context, userID, commentID uint) (bool, int64, error) {
	var existing models.CommentLike
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		First(&existing).Error

	var liked bool
	switch {
	case err == nil:
		// Already liked, so unlike it
		if derr := r.db.WithContext(ctx).
			Where("user_id = ? AND comment_id = ?", userID, commentID).
			Delete(&models.CommentLike{}).Error; derr != nil {
			return false, 0, derr
		}
		liked = false
	case errors.Is(err, gorm.ErrRecordNotFound):
		like := models.CommentLike{UserID: userID, CommentID: commentID}
		if cerr := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&like).Error; cerr != nil {
			return false, 0, cerr
		}
		liked = true
	default:
		return false, 0, err
	}

	var likes int64
	if err := r.db.WithContext(ctx).
		Model(&models.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&likes).Error; err != nil {
		return liked, 0, err
	}
	return liked, likes, nil
}

func (r *commentRepository) SetApproved(ctx context.Context, id uint, approved bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", id).
		Update("is_approved", approved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Comment", id)
	}
	return nil
}

// applyCommentDetails adds subqueries to fetch the like count and the current
// user's liked flag in a single query.
func (r *commentRepository) applyCommentDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "comments.*, " +
		"(SELECT COUNT(*) FROM comment_likes WHERE comment_likes.comment_id = comments.id) as likes_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+
			", EXISTS(SELECT 1 FROM comment_likes WHERE comment_likes.comment_id = comments.id AND comment_likes.user_id = ?) as liked",
			currentUserID)
	}
	return db.Select(selectQuery + ", false as liked")
}
