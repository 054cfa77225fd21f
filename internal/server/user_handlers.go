package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUserPosts handles GET /api/users/:id/posts.
// An unknown user id is a 404; a known user with no posts is an empty list.
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)
	posts, err := s.userService.GetUserPosts(c.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.NewPostViews(posts))
}

// GetProfile handles GET /api/profile
func (s *Server) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userService.GetProfile(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.NewUserView(user))
}

// UpdateProfile handles PUT /api/profile
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	return s.updateProfile(c, false)
}

// PatchProfile handles PATCH /api/profile
func (s *Server) PatchProfile(c *fiber.Ctx) error {
	return s.updateProfile(c, true)
}

func (s *Server) updateProfile(c *fiber.Ctx, partial bool) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Username *string `json:"username"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if _, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:   userID,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Partial:  partial,
	}); err != nil {
		return respondError(c, err)
	}

	// Success answers with a confirmation message, not the updated record.
	return c.JSON(fiber.Map{
		"message": "Perfil atualizado com sucesso!",
	})
}
