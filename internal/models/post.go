package models

import (
	"time"

	"gorm.io/gorm"
)

// Post status values.
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
	PostStatusArchived  = "archived"
)

// ValidPostStatus reports whether s is a recognized post status.
func ValidPostStatus(s string) bool {
	switch s {
	case PostStatusDraft, PostStatusPublished, PostStatusArchived:
		return true
	}
	return false
}

// Post represents a blog post. Only published posts appear in public
// listings; drafts and archived posts are excluded from public query paths.
type Post struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Title         string     `gorm:"size:300;not null" json:"title"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	Excerpt       string     `gorm:"size:500" json:"excerpt"`
	UserID        uint       `gorm:"not null;index" json:"user_id"`
	User          User       `gorm:"foreignKey:UserID" json:"user"`
	CategoryID    uint       `gorm:"not null;index" json:"category_id"`
	Category      Category   `gorm:"foreignKey:CategoryID" json:"category"`
	Tags          StringList `gorm:"type:text" json:"tags"`
	FeaturedImage string     `json:"featured_image"`
	Status        string     `gorm:"size:16;not null;default:draft;index" json:"status"`
	// ViewCount is incremented atomically in SQL on every fetch-by-id,
	// never on list queries.
	ViewCount  int  `gorm:"not null;default:0" json:"view_count"`
	IsFeatured bool `gorm:"default:false" json:"is_featured"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int            `gorm:"->" json:"comments_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
