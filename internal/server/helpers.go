package server

import (
	"errors"
	"strings"
	"unicode"

	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// Pagination holds parsed page/limit query parameters. Pages are 1-indexed.
type Pagination struct {
	Page  int
	Limit int
}

const (
	defaultPaginationLimit = 10
	maxPaginationLimit     = 100
)

// Offset converts the 1-indexed page into a row offset.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// parsePagination extracts page and limit query parameters, clamping both
// to sane bounds.
func parsePagination(c *fiber.Ctx) Pagination {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	limit := c.QueryInt("limit", defaultPaginationLimit)
	if limit <= 0 {
		limit = defaultPaginationLimit
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}

	return Pagination{
		Page:  page,
		Limit: limit,
	}
}

// paginationMeta builds the page window of a list response.
// Pages is ceil(total / limit).
func paginationMeta(p Pagination, total int64) *models.PaginationMeta {
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return &models.PaginationMeta{
		Current: p.Page,
		Pages:   pages,
		Total:   total,
	}
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
// The error message is derived from the parameter name (e.g. "id" -> "Invalid ID",
// "categoryId" -> "Invalid category ID").
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "categoryId" -> "category ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	// Split on camelCase boundary before the trailing "Id" suffix.
	if strings.HasSuffix(param, "Id") {
		prefix := param[:len(param)-2]
		words := splitCamel(prefix)
		return strings.ToLower(strings.Join(words, " ")) + " ID"
	}
	return param
}

// splitCamel splits a camelCase string into words.
func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}

// principal returns the principal attached by AuthRequired.
func (s *Server) principal(c *fiber.Ctx) *models.Principal {
	principal, _ := c.Locals("principal").(*models.Principal)
	return principal
}

// postFromLocals returns the post loaded by RequirePostAuthor.
func postFromLocals(c *fiber.Ctx) *models.Post {
	post, _ := c.Locals("resource").(*models.Post)
	return post
}

// commentFromLocals returns the comment loaded by RequireCommentAuthor.
func commentFromLocals(c *fiber.Ctx) *models.Comment {
	comment, _ := c.Locals("resource").(*models.Comment)
	return comment
}
