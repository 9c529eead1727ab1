package server

import (
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts
// @Summary List published posts
// @Description List published posts with optional category and search filters
// @Tags posts
// @Produce json
// @Param page query int false "Page number (1-indexed)"
// @Param limit query int false "Page size"
// @Param category query string false "Category ID or name"
// @Param search query string false "Case-insensitive substring over title and content"
// @Success 200 {object} models.Response
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c)

	q := repository.PostQuery{
		Search: strings.TrimSpace(c.Query("search")),
		Limit:  page.Limit,
		Offset: page.Offset(),
	}
	// The category filter accepts either a numeric ID or a name.
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		if id := c.QueryInt("category"); id > 0 {
			q.CategoryID = uint(id)
		} else {
			q.CategoryName = category
		}
	}

	posts, total, err := s.postService.ListPosts(ctx, q)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return models.RespondList(c, posts, len(posts), paginationMeta(page, total))
}

// GetTrendingPosts handles GET /api/posts/trending
// @Summary Trending posts
// @Description Top five published posts ranked by comment count, then view count
// @Tags posts
// @Produce json
// @Success 200 {object} models.Response
// @Router /posts/trending [get]
func (s *Server) GetTrendingPosts(c *fiber.Ctx) error {
	posts, err := s.postService.Trending(c.Context())
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	count := len(posts)
	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Data:    posts,
		Count:   &count,
	})
}

// GetPostsByCategory handles GET /api/posts/category/:categoryId
// @Summary List posts in a category
// @Tags posts
// @Produce json
// @Param categoryId path int true "Category ID"
// @Param page query int false "Page number (1-indexed)"
// @Param limit query int false "Page size"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /posts/category/{categoryId} [get]
func (s *Server) GetPostsByCategory(c *fiber.Ctx) error {
	ctx := c.Context()
	categoryID, err := s.parseID(c, "categoryId")
	if err != nil {
		return nil
	}

	// 404 for unknown categories rather than an empty page.
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	page := parsePagination(c)
	posts, total, err := s.postService.ListPosts(ctx, repository.PostQuery{
		CategoryID: categoryID,
		Limit:      page.Limit,
		Offset:     page.Offset(),
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return models.RespondList(c, posts, len(posts), paginationMeta(page, total))
}

// GetPost handles GET /api/posts/:id
// @Summary Get a post
// @Description Fetch a single post and record the view
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id, s.optionalPrincipal(c))
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return models.Respond(c, fiber.StatusOK, post)
}

// CreatePost handles POST /api/posts
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{title=string,content=string,excerpt=string,category_id=int,tags=[]string,featured_image=string,status=string} true "Post"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.Response
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	principal := s.principal(c)

	var req struct {
		Title         string   `json:"title"`
		Content       string   `json:"content"`
		Excerpt       string   `json:"excerpt"`
		CategoryID    uint     `json:"category_id"`
		Tags          []string `json:"tags"`
		FeaturedImage string   `json:"featured_image"`
		Status        string   `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), principal.ID, service.CreatePostInput{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		CategoryID:    req.CategoryID,
		Tags:          req.Tags,
		FeaturedImage: req.FeaturedImage,
		Status:        req.Status,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return models.Respond(c, fiber.StatusCreated, post)
}

// UpdatePost handles PUT /api/posts/:id
// @Summary Update a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body object{title=string,content=string,excerpt=string,category_id=int,tags=[]string,featured_image=string,status=string,is_featured=bool} true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /posts/{id} [put]
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	post := postFromLocals(c)

	var req struct {
		Title         string   `json:"title"`
		Content       string   `json:"content"`
		Excerpt       string   `json:"excerpt"`
		CategoryID    uint     `json:"category_id"`
		Tags          []string `json:"tags"`
		FeaturedImage string   `json:"featured_image"`
		Status        string   `json:"status"`
		IsFeatured    *bool    `json:"is_featured"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	updated, err := s.postService.UpdatePost(c.Context(), post, service.UpdatePostInput{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		CategoryID:    req.CategoryID,
		Tags:          req.Tags,
		FeaturedImage: req.FeaturedImage,
		Status:        req.Status,
		IsFeatured:    req.IsFeatured,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return models.Respond(c, fiber.StatusOK, updated)
}

// DeletePost handles DELETE /api/posts/:id
// @Summary Delete a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	post := postFromLocals(c)

	if err := s.postService.DeletePost(c.Context(), post); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return models.RespondMessage(c, fiber.StatusOK, "Post deleted")
}
