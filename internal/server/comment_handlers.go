package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /api/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	page := parsePagination(c, 50)
	comments, err := s.commentService.ListComments(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.NewCommentViews(comments))
}

// GetComment handles GET /api/comments/:id
func (s *Server) GetComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.GetComment(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.NewCommentView(comment))
}

// CreateComment handles POST /api/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Post    uint   `json:"post"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		UserID:  userID,
		PostID:  req.Post,
		Content: req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.NewCommentView(comment))
}

// UpdateComment handles PUT and PATCH /api/comments/:id
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content *string `json:"content"`
		Post    *uint   `json:"post"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(c.Context(), service.UpdateCommentInput{
		UserID:    userID,
		CommentID: id,
		Content:   req.Content,
		PostID:    req.Post,
		Partial:   c.Method() == fiber.MethodPatch,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.NewCommentView(comment))
}

// DeleteComment handles DELETE /api/comments/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.Context(), userID, id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetPostComments handles GET /api/posts/:id/comments
func (s *Server) GetPostComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 50)
	comments, err := s.commentService.ListCommentsByPost(c.Context(), postID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.NewCommentViews(comments))
}

// GetPostComment handles GET /api/posts/:id/comments/:commentId
func (s *Server) GetPostComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.GetComment(c.Context(), commentID)
	if err != nil {
		return respondError(c, err)
	}
	// A comment reached through the wrong post does not exist at that path.
	if comment.PostID != postID {
		return respondError(c, models.NewNotFoundError("Comment", commentID))
	}
	return c.JSON(models.NewCommentView(comment))
}

// CreatePostComment handles POST /api/posts/:id/comments.
// The post association always comes from the route; a diverging post id in
// the body is overridden.
func (s *Server) CreatePostComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		UserID:  userID,
		PostID:  postID,
		Content: req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.NewCommentView(comment))
}

// UpdatePostComment handles PUT and PATCH /api/posts/:id/comments/:commentId
func (s *Server) UpdatePostComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	existing, err := s.commentService.GetComment(c.Context(), commentID)
	if err != nil {
		return respondError(c, err)
	}
	if existing.PostID != postID {
		return respondError(c, models.NewNotFoundError("Comment", commentID))
	}

	var req struct {
		Content *string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(c.Context(), service.UpdateCommentInput{
		UserID:    userID,
		CommentID: commentID,
		Content:   req.Content,
		Partial:   c.Method() == fiber.MethodPatch,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.NewCommentView(comment))
}

// DeletePostComment handles DELETE /api/posts/:id/comments/:commentId
func (s *Server) DeletePostComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	existing, err := s.commentService.GetComment(c.Context(), commentID)
	if err != nil {
		return respondError(c, err)
	}
	if existing.PostID != postID {
		return respondError(c, models.NewNotFoundError("Comment", commentID))
	}

	if err := s.commentService.DeleteComment(c.Context(), userID, commentID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
