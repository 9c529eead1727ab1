package validation

import (
	"fmt"
	"strings"
)

// reservedCategoryNames are names whose slugs would collide with API routes.
var reservedCategoryNames = map[string]struct{}{
	"trending":   {},
	"category":   {},
	"categories": {},
	"posts":      {},
	"comments":   {},
	"users":      {},
	"auth":       {},
	"admin":      {},
	"swagger":    {},
	"metrics":    {},
}

// ValidateCategoryName validates a category name.
func ValidateCategoryName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("category name is required")
	}
	if len(trimmed) > 128 {
		return fmt.Errorf("category name must not exceed 128 characters")
	}
	if _, exists := reservedCategoryNames[strings.ToLower(trimmed)]; exists {
		return fmt.Errorf("category name is reserved")
	}
	return nil
}
