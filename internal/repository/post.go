// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// PostQuery enumerates the supported filters for post listings and their
// semantics. CategoryID and CategoryName are mutually exclusive (ID wins);
// the name match is a case-insensitive exact comparison. Search is a
// case-insensitive substring match over title OR content. Status restricts
// the listing; public query paths always set it to published.
type PostQuery struct {
	CategoryID   uint
	CategoryName string
	Search       string
	Status       string
	Limit        int
	Offset       int
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	IncrementViewCount(ctx context.Context, id uint) error
	List(ctx context.Context, q PostQuery) ([]*models.Post, int64, error)
	Trending(ctx context.Context, limit int) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx)).
		Preload("User").
		Preload("User.Role").
		Preload("Category").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, err
	}
	return &post, nil
}

// IncrementViewCount bumps the view counter atomically in SQL so concurrent
// fetches never lose an increment.
func (r *postRepository) IncrementViewCount(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

func (r *postRepository) List(ctx context.Context, q PostQuery) ([]*models.Post, int64, error) {
	base := r.applyQuery(r.db.WithContext(ctx).Model(&models.Post{}), q)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.Post
	err := r.applyPostDetails(r.applyQuery(r.db.WithContext(ctx), q)).
		Preload("User").
		Preload("Category").
		Order("created_at DESC").
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// Trending returns the most-engaged published posts: comment count
// descending, ties broken by view count descending. The ranking is
// recomputed on every call; there is no materialized view or cache.
func (r *postRepository) Trending(ctx context.Context, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx)).
		Preload("User").
		Preload("Category").
		Where("status = ?", models.PostStatusPublished).
		Order("comments_count DESC, view_count DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// applyQuery translates a PostQuery into WHERE clauses.
func (r *postRepository) applyQuery(db *gorm.DB, q PostQuery) *gorm.DB {
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}
	switch {
	case q.CategoryID != 0:
		db = db.Where("category_id = ?", q.CategoryID)
	case q.CategoryName != "":
		db = db.Where(
			"category_id IN (SELECT id FROM categories WHERE LOWER(name) = LOWER(?) AND deleted_at IS NULL)",
			q.CategoryName,
		)
	}
	if q.Search != "" {
		like := "%" + strings.ToLower(q.Search) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", like, like)
	}
	return db
}

// applyPostDetails adds a subquery to fetch the approved comment count in a single query.
func (r *postRepository) applyPostDetails(db *gorm.DB) *gorm.DB {
	return db.Select("posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id " +
		"AND comments.deleted_at IS NULL AND comments.is_approved) as comments_count")
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Post{}, id).Error
}
