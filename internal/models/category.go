package models

import (
	"time"

	"gorm.io/gorm"
)

// Category groups posts under a unique name with a URL-friendly slug.
// The slug is derived from the name and recomputed whenever the name changes.
type Category struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:128;unique;not null" json:"name"`
	Slug        string         `gorm:"size:160;uniqueIndex;not null" json:"slug"`
	Description string         `json:"description"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
