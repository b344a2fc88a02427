package service

import (
	"context"
	"strings"

	"blogsphere/internal/models"
	"blogsphere/internal/observability"
	"blogsphere/internal/repository"
	"blogsphere/internal/validation"

	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ArticleService implements article CRUD, the engagement toggles, and the
// published-article query engine.
type ArticleService struct {
	articleRepo repository.ArticleRepository
}

// NewArticleService creates an ArticleService backed by the given repository.
func NewArticleService(articleRepo repository.ArticleRepository) *ArticleService {
	return &ArticleService{articleRepo: articleRepo}
}

// CreateArticleInput carries the fields for a new article. AuthorID always
// comes from the authenticated caller, never from client-supplied input.
type CreateArticleInput struct {
	AuthorID uint
	Title    string
	Content  string
	Category string
	ImageURL string
	IsDraft  bool
}

// ListArticlesInput selects a page of articles.
type ListArticlesInput struct {
	Filter        repository.ArticleFilter
	Page          int // 1-indexed
	Limit         int
	Sort          string
	CurrentUserID uint
}

// ArticlePage is one page of a listing plus its pagination envelope.
type ArticlePage struct {
	Articles   []*models.Article `json:"articles"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
}

func (s *ArticleService) CreateArticle(ctx context.Context, in CreateArticleInput) (*models.Article, error) {
	span, ctx := observability.NewSpan(ctx, "article.create")
	defer span.End()

	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)

	if err := validation.ValidateTitle(title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateContent(content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	category := in.Category
	if category == "" {
		category = models.CategoryLifestyle
	}
	if !models.ValidCategory(category) {
		return nil, models.NewValidationError("Unknown category")
	}

	image := in.ImageURL
	if image == "" {
		image = models.PlaceholderImage
	}

	article := &models.Article{
		Title:    title,
		Content:  content,
		Category: category,
		ImageURL: image,
		IsDraft:  in.IsDraft,
		UserID:   in.AuthorID,
	}
	if err := s.articleRepo.Create(ctx, article); err != nil {
		span.SetError(err)
		return nil, err
	}
	span.AddAttributes(attribute.Int("article.id", int(article.ID)))

	// Reload with author and engagement fields for the response.
	return s.articleRepo.GetByID(ctx, article.ID, in.AuthorID)
}

// GetArticle fetches one article and counts the read: the view increment is
// a separate atomic in-database update, so N concurrent reads bump views by
// exactly N.
func (s *ArticleService) GetArticle(ctx context.Context, id, currentUserID uint) (*models.Article, error) {
	span, ctx := observability.NewSpan(ctx, "article.read")
	defer span.End()
	span.AddAttributes(attribute.Int("article.id", int(id)))

	if err := s.articleRepo.IncrementViews(ctx, id); err != nil {
		span.SetError(err)
		return nil, err
	}
	return s.articleRepo.GetByID(ctx, id, currentUserID)
}

func (s *ArticleService) ListArticles(ctx context.Context, in ListArticlesInput) (*ArticlePage, error) {
	if in.Filter.Category != "" && !models.ValidCategory(in.Filter.Category) {
		return nil, models.NewValidationError("Unknown category")
	}

	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset := (page - 1) * limit

	articles, total, err := s.articleRepo.List(ctx, in.Filter, limit, offset, in.Sort, in.CurrentUserID)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if articles == nil {
		// A page past the end is an empty list, not an error.
		articles = []*models.Article{}
	}
	return &ArticlePage{
		Articles:   articles,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

func (s *ArticleService) UpdateArticle(ctx context.Context, articleID, callerID uint, patch models.ArticlePatch) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, articleID, callerID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(article.UserID, callerID); err != nil {
		return nil, err
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if err := validation.ValidateTitle(title); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		article.Title = title
	}
	if patch.Content != nil {
		content := strings.TrimSpace(*patch.Content)
		if err := validation.ValidateContent(content); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		article.Content = content
	}
	if patch.Category != nil {
		if !models.ValidCategory(*patch.Category) {
			return nil, models.NewValidationError("Unknown category")
		}
		article.Category = *patch.Category
	}
	if patch.IsDraft != nil {
		// Both directions are allowed; publishing is not a one-way door.
		article.IsDraft = *patch.IsDraft
	}
	if patch.ImageURL != nil && *patch.ImageURL != "" {
		article.ImageURL = *patch.ImageURL
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}
	return s.articleRepo.GetByID(ctx, articleID, callerID)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, articleID, callerID uint) error {
	article, err := s.articleRepo.GetByID(ctx, articleID, callerID)
	if err != nil {
		return err
	}
	if err := authorizeOwner(article.UserID, callerID); err != nil {
		return err
	}
	return s.articleRepo.Delete(ctx, articleID)
}

// ToggleLike flips the caller's like on an article. Any authenticated user
// may react; no ownership restriction applies.
func (s *ArticleService) ToggleLike(ctx context.Context, articleID, userID uint) (*models.ReactionCounts, error) {
	return s.articleRepo.ToggleReaction(ctx, articleID, userID, models.ReactionLike)
}

// ToggleDislike flips the caller's dislike on an article.
func (s *ArticleService) ToggleDislike(ctx context.Context, articleID, userID uint) (*models.ReactionCounts, error) {
	return s.articleRepo.ToggleReaction(ctx, articleID, userID, models.ReactionDislike)
}
