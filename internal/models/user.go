// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered author or administrator.
// The password hash is never serialized into responses.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"size:64;unique;not null" json:"username"`
	Email     string         `gorm:"size:255;unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	RoleID    uint           `gorm:"not null;index" json:"role_id"`
	Role      Role           `gorm:"foreignKey:RoleID" json:"role"`
	Bio       string         `json:"bio"`
	Avatar    string         `json:"avatar"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Posts     []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// Principal is the authenticated actor attached to a request after the auth
// middleware resolves the bearer token.
type Principal struct {
	ID          uint       `json:"id"`
	Role        string     `json:"role"`
	Permissions StringList `json:"permissions"`
}

// IsAdmin reports whether the principal holds the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
