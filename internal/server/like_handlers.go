package server

import (
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetLikes handles GET /api/likes
func (s *Server) GetLikes(c *fiber.Ctx) error {
	page := parsePagination(c, 50)
	likes, err := s.likeService.ListLikes(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.NewLikeViews(likes))
}

// GetLike handles GET /api/likes/:id
func (s *Server) GetLike(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	like, err := s.likeService.GetLike(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.NewLikeView(like))
}

// CreateLike handles POST /api/likes
func (s *Server) CreateLike(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Post uint `json:"post"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Post == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(map[string][]string{
				"post": {"This field is required"},
			}))
	}

	like, err := s.likeService.CreateLike(c.Context(), userID, req.Post)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.NewLikeView(like))
}

// UpdateLike handles PUT and PATCH /api/likes/:id
func (s *Server) UpdateLike(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Post uint `json:"post"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Post == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(map[string][]string{
				"post": {"This field is required"},
			}))
	}

	like, err := s.likeService.UpdateLike(c.Context(), userID, id, req.Post)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.NewLikeView(like))
}

// DeleteLike handles DELETE /api/likes/:id
func (s *Server) DeleteLike(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.likeService.DeleteLike(c.Context(), userID, id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
