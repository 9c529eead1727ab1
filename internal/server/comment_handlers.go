package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /api/posts/:id/comments
// @Summary List comments on a post
// @Description Approved top-level comments newest-first, each with its approved replies oldest-first
// @Tags comments
// @Produce json
// @Param id path int true "Post ID"
// @Param page query int false "Page number (1-indexed)"
// @Param limit query int false "Page size"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /posts/{id}/comments [get]
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c)
	comments, total, err := s.commentService.ListByPost(c.Context(), postID, page.Limit, page.Offset(), s.optionalPrincipal(c))
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return models.RespondList(c, comments, len(comments), paginationMeta(page, total))
}

// GetCommentReplies handles GET /api/comments/:id/replies
// @Summary List direct replies of a comment
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /comments/{id}/replies [get]
func (s *Server) GetCommentReplies(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	replies, err := s.commentService.ListReplies(c.Context(), commentID, s.optionalPrincipal(c))
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	count := len(replies)
	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Data:    replies,
		Count:   &count,
	})
}

// CreateComment handles POST /api/posts/:id/comments
// @Summary Comment on a post
// @Description Create a comment, optionally as a reply to an existing comment on the same post
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body object{content=string,parent_id=int} true "Comment"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /posts/{id}/comments [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	principal := s.principal(c)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content  string `json:"content"`
		ParentID *uint  `json:"parent_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.Context(), principal.ID, service.CreateCommentInput{
		PostID:   postID,
		Content:  req.Content,
		ParentID: req.ParentID,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return models.Respond(c, fiber.StatusCreated, comment)
}

// UpdateComment handles PUT /api/comments/:id
// @Summary Edit a comment
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Param request body object{content=string} true "New content"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /comments/{id} [put]
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	comment := commentFromLocals(c)

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	updated, err := s.commentService.UpdateComment(c.Context(), comment, req.Content)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return models.Respond(c, fiber.StatusOK, updated)
}

// DeleteComment handles DELETE /api/comments/:id
// @Summary Delete a comment
// @Description Delete a comment; its replies remain and are surfaced as orphans
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /comments/{id} [delete]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	comment := commentFromLocals(c)

	if err := s.commentService.DeleteComment(c.Context(), comment); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return models.RespondMessage(c, fiber.StatusOK, "Comment deleted")
}

// LikeComment handles POST /api/comments/:id/like
// @Summary Toggle a comment like
// @Description Likes the comment if not yet liked by the caller, otherwise removes the like
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /comments/{id}/like [post]
func (s *Server) LikeComment(c *fiber.Ctx) error {
	principal := s.principal(c)
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	liked, likes, err := s.commentService.ToggleLike(c.Context(), principal.ID, commentID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return models.Respond(c, fiber.StatusOK, fiber.Map{
		"liked":       liked,
		"likes_count": likes,
	})
}

// ApproveComment handles PATCH /api/comments/:id/approve
// @Summary Set comment approval
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Param request body object{approved=bool} true "Approval flag"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /comments/{id}/approve [patch]
func (s *Server) ApproveComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Approved *bool `json:"approved"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	approved := true
	if req.Approved != nil {
		approved = *req.Approved
	}

	comment, err := s.commentService.SetApproved(c.Context(), commentID, approved)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return models.Respond(c, fiber.StatusOK, comment)
}
