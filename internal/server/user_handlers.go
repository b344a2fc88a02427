package server

import (
	"blogsphere/internal/models"
	"blogsphere/internal/repository"
	"blogsphere/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the authenticated caller's own profile.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetProfile(c.UserContext(), callerID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// UpdateProfile applies a partial update to the caller's profile.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var patch service.ProfilePatch
	if err := c.BodyParser(&patch); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), callerID(c), patch)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"msg":  "Profile updated successfully",
		"user": user,
	})
}

// GetMyArticles lists the caller's own articles, drafts included.
func (s *Server) GetMyArticles(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	userID := callerID(c)

	result, err := s.articleService.ListArticles(c.UserContext(), service.ListArticlesInput{
		Filter: repository.ArticleFilter{
			AuthorID:      userID,
			IncludeDrafts: true,
		},
		Page:          page,
		Limit:         limit,
		Sort:          c.Query("sort"),
		CurrentUserID: userID,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(result)
}
