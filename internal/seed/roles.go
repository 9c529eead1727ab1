package seed

import (
	"fmt"

	"inkwell/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BuiltInRole is a permanent system role.
type BuiltInRole struct {
	Name        string
	Description string
	Permissions models.StringList
}

// BuiltInRoles defines the permanent system roles.
var BuiltInRoles = []BuiltInRole{
	{
		Name:        models.RoleUser,
		Description: "Default role for registered authors.",
		Permissions: models.StringList{
			"posts:create", "posts:edit_own", "posts:delete_own",
			"comments:create", "comments:edit_own", "comments:delete_own",
			"comments:like",
		},
	},
	{
		Name:        models.RoleAdmin,
		Description: "Full administrative access.",
		Permissions: models.StringList{
			"posts:manage", "comments:manage", "comments:approve",
			"categories:manage", "users:manage",
		},
	},
}

// Roles upserts the permanent built-in roles. Registration depends on the
// user role existing, so this runs on every startup.
func Roles(db *gorm.DB) error {
	for _, item := range BuiltInRoles {
		role := models.Role{
			Name:        item.Name,
			Description: item.Description,
			Permissions: item.Permissions,
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"description", "permissions", "updated_at"}),
		}).Create(&role).Error; err != nil {
			return fmt.Errorf("seed built-in role %s: %w", item.Name, err)
		}
	}
	return nil
}
