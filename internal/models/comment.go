package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a post. ParentID is nil for top-level
// comments; replies reference their parent through ParentID, which is fixed
// at creation and never updated, so the tree cannot contain cycles.
//
// Deleting a comment does not cascade to its replies: they survive with a
// ParentID pointing at the removed comment. That orphaning policy is
// deliberate and covered by tests.
type Comment struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Content  string   `gorm:"type:text;not null" json:"content"`
	PostID   uint     `gorm:"not null;index" json:"post_id"`
	Post     Post     `gorm:"foreignKey:PostID" json:"post,omitempty"`
	UserID   uint     `gorm:"not null;index" json:"user_id"`
	User     User     `gorm:"foreignKey:UserID" json:"user"`
	ParentID *uint    `gorm:"index" json:"parent_id"`
	Replies  []Comment `gorm:"foreignKey:ParentID" json:"replies,omitempty"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// Liked indicates whether the current requesting user liked this comment (computed)
	Liked      bool           `gorm:"->" json:"liked"`
	IsApproved bool           `gorm:"default:true;index" json:"is_approved"`
	IsEdited   bool           `gorm:"default:false" json:"is_edited"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// CommentLike records a user's like on a comment.
// The unique index gives likes set semantics per (user, comment) pair.
type CommentLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_comment" json:"user_id"`
	CommentID uint      `gorm:"not null;uniqueIndex:idx_user_comment" json:"comment_id"`
	CreatedAt time.Time `json:"created_at"`
}
