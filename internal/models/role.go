// Package models contains data structures for the application's domain models.
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Role names. Roles are immutable reference data seeded at bootstrap.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// StringList is a []string stored as a JSON text column. It is used for role
// permission tags and post tags so the schema stays portable across Postgres
// and the sqlite test driver.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

// Role represents an access role assigned to users.
type Role struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:32;unique;not null" json:"name"`
	Description string     `json:"description"`
	Permissions StringList `gorm:"type:text" json:"permissions"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsAdmin reports whether the role grants admin privileges.
func (r *Role) IsAdmin() bool {
	return r != nil && r.Name == RoleAdmin
}
