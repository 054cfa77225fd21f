package server

import (
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFavorites handles GET /api/favorites. Only the acting user's bookmarks
// are ever listed.
func (s *Server) GetFavorites(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page := parsePagination(c, 50)

	favorites, err := s.favoriteService.ListFavorites(c.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.NewFavoriteViews(favorites))
}

// GetFavorite handles GET /api/favorites/:id. Another user's favorite id
// yields the same not-found as a nonexistent one.
func (s *Server) GetFavorite(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	favorite, err := s.favoriteService.GetFavorite(c.Context(), userID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.NewFavoriteView(favorite))
}

// CreateFavorite handles POST /api/favorites
func (s *Server) CreateFavorite(c *fiber.Ctx) error {
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

	favorite, err := s.favoriteService.CreateFavorite(c.Context(), userID, req.Post)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.NewFavoriteView(favorite))
}

// DeleteFavorite handles DELETE /api/favorites/:id
func (s *Server) DeleteFavorite(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.favoriteService.DeleteFavorite(c.Context(), userID, id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
