package server

import (
	"blogsphere/internal/models"

	"github.com/gofiber/fiber/v2"
)

type createCommentRequest struct {
	Content string `json:"content"`
}

// CreateComment attaches a comment to an article.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	articleID, err := parseID(c, "articleId")
	if err != nil {
		return nil
	}

	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.AddComment(c.UserContext(), articleID, callerID(c), req.Content)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":     "Comment added successfully",
		"comment": comment,
	})
}

// GetComments lists an article's comments, newest first.
func (s *Server) GetComments(c *fiber.Ctx) error {
	articleID, err := parseID(c, "articleId")
	if err != nil {
		return nil
	}
	page, limit := parsePagination(c)

	comments, err := s.commentService.ListComments(c.UserContext(), articleID, limit, (page-1)*limit)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"comments": comments})
}

// DeleteComment removes the caller's own comment.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.UserContext(), commentID, callerID(c)); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"msg": "Comment deleted successfully"})
}
