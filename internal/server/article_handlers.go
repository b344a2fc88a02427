package server

import (
	"strconv"
	"strings"

	"blogsphere/internal/models"
	"blogsphere/internal/repository"
	"blogsphere/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createArticleRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Image    string `json:"image"`
	IsDraft  bool   `json:"isDraft"`
}

// CreateArticle godoc
// @Summary Create an article
// @Description Create a new article, optionally as a draft, with an optional image upload
// @Tags articles
// @Accept json
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param request body createArticleRequest true "Article"
// @Success 201 {object} models.Article
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/articles/create [post]
func (s *Server) CreateArticle(c *fiber.Ctx) error {
	var req createArticleRequest

	if isMultipart(c) {
		req.Title = c.FormValue("title")
		req.Content = c.FormValue("content")
		req.Category = c.FormValue("category")
		req.IsDraft, _ = strconv.ParseBool(c.FormValue("isDraft"))

		if fh, err := c.FormFile("image"); err == nil && fh != nil {
			path, err := s.uploads.Save(fh)
			if err != nil {
				return models.RespondWithError(c, fiber.StatusBadRequest,
					models.NewValidationError(err.Error()))
			}
			req.Image = path
		}
	} else if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	article, err := s.articleService.CreateArticle(c.UserContext(), service.CreateArticleInput{
		AuthorID: callerID(c),
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		ImageURL: req.Image,
		IsDraft:  req.IsDraft,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":     "Article created successfully",
		"article": article,
	})
}

// GetArticles godoc
// @Summary List published articles
// @Description Page through published articles with optional category, search, and sort
// @Tags articles
// @Produce json
// @Param category query string false "Category filter"
// @Param q query string false "Search query over title and content"
// @Param sort query string false "Sort order: new, old, views, top"
// @Param page query int false "Page number (1-indexed)"
// @Param limit query int false "Page size"
// @Success 200 {object} service.ArticlePage
// @Router /api/articles [get]
func (s *Server) GetArticles(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	currentUserID, _ := s.optionalUserID(c)

	result, err := s.articleService.ListArticles(c.UserContext(), service.ListArticlesInput{
		Filter: repository.ArticleFilter{
			Category: c.Query("category"),
			Query:    strings.TrimSpace(c.Query("q")),
		},
		Page:          page,
		Limit:         limit,
		Sort:          c.Query("sort"),
		CurrentUserID: currentUserID,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(result)
}

// GetArticle returns one article and counts the read as a view.
func (s *Server) GetArticle(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	currentUserID, _ := s.optionalUserID(c)

	article, err := s.articleService.GetArticle(c.UserContext(), id, currentUserID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(article)
}

// UpdateArticle applies a partial update to the caller's own article.
func (s *Server) UpdateArticle(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var patch models.ArticlePatch
	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid multipart form"))
		}
		// Only fields present in the form become part of the patch.
		if v, ok := formField(form.Value, "title"); ok {
			patch.Title = &v
		}
		if v, ok := formField(form.Value, "content"); ok {
			patch.Content = &v
		}
		if v, ok := formField(form.Value, "category"); ok {
			patch.Category = &v
		}
		if v, ok := formField(form.Value, "isDraft"); ok {
			isDraft, perr := strconv.ParseBool(v)
			if perr != nil {
				return models.RespondWithError(c, fiber.StatusBadRequest,
					models.NewValidationError("Invalid isDraft value"))
			}
			patch.IsDraft = &isDraft
		}
		if fh, ferr := c.FormFile("image"); ferr == nil && fh != nil {
			path, serr := s.uploads.Save(fh)
			if serr != nil {
				return models.RespondWithError(c, fiber.StatusBadRequest,
					models.NewValidationError(serr.Error()))
			}
			patch.ImageURL = &path
		}
	} else if err := c.BodyParser(&patch); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	article, err := s.articleService.UpdateArticle(c.UserContext(), id, callerID(c), patch)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"msg":     "Article updated successfully",
		"article": article,
	})
}

// DeleteArticle removes the caller's own article.
func (s *Server) DeleteArticle(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.articleService.DeleteArticle(c.UserContext(), id, callerID(c)); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{"msg": "Article deleted successfully"})
}

// LikeArticle toggles the caller's like on an article.
func (s *Server) LikeArticle(c *fiber.Ctx) error {
	return s.toggleReaction(c, models.ReactionLike, "Like updated")
}

// DislikeArticle toggles the caller's dislike on an article.
func (s *Server) DislikeArticle(c *fiber.Ctx) error {
	return s.toggleReaction(c, models.ReactionDislike, "Dislike updated")
}

func (s *Server) toggleReaction(c *fiber.Ctx, kind, msg string) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var counts *models.ReactionCounts
	if kind == models.ReactionLike {
		counts, err = s.articleService.ToggleLike(c.UserContext(), id, callerID(c))
	} else {
		counts, err = s.articleService.ToggleDislike(c.UserContext(), id, callerID(c))
	}
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"msg":      msg,
		"likes":    counts.Likes,
		"dislikes": counts.Dislikes,
	})
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm)
}

func formField(values map[string][]string, key string) (string, bool) {
	v, ok := values[key]
	if !ok || len(v) == 0 {
		return "", false
	}
	return v[0], true
}
