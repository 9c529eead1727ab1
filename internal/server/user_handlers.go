package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
// @Summary Own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 401 {object} models.Response
// @Router /users/me [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	principal := s.principal(c)

	user, err := s.userService.GetUserByID(c.Context(), principal.ID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return models.Respond(c, fiber.StatusOK, user)
}

// UpdateMyProfile handles PUT /api/users/me
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{username=string,bio=string,avatar=string} true "Profile fields"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.Response
// @Failure 409 {object} models.Response
// @Router /users/me [put]
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	principal := s.principal(c)

	var req struct {
		Username string `json:"username"`
		Bio      string `json:"bio"`
		Avatar   string `json:"avatar"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:   principal.ID,
		Username: req.Username,
		Bio:      req.Bio,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return models.Respond(c, fiber.StatusOK, user)
}

// GetAllUsers handles GET /api/users
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-indexed)"
// @Param limit query int false "Page size"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.Response
// @Router /users [get]
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	page := parsePagination(c)

	users, total, err := s.userService.ListUsers(c.Context(), page.Limit, page.Offset())
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return models.RespondList(c, users, len(users), paginationMeta(page, total))
}

// GetUser handles GET /api/users/:id
// @Summary Get a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /users/{id} [get]
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return models.Respond(c, fiber.StatusOK, user)
}

// SetUserStatus handles PATCH /api/users/:id/status
// @Summary Activate or deactivate a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body object{is_active=bool} true "Activation flag"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.Response
// @Failure 403 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /users/{id}/status [patch]
func (s *Server) SetUserStatus(c *fiber.Ctx) error {
	principal := s.principal(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	// Admins cannot lock themselves out.
	if id == principal.ID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("You cannot change your own active status"))
	}

	var req struct {
		IsActive *bool `json:"is_active"`
	}
	if err := c.BodyParser(&req); err != nil || req.IsActive == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("is_active is required"))
	}

	user, err := s.userService.SetActiveStatus(c.Context(), id, *req.IsActive)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return models.Respond(c, fiber.StatusOK, user)
}
