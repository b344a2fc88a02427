package service

import (
	"context"
	"strings"
	"testing"

	"blogsphere/internal/models"
	"blogsphere/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArticleService_CreateArticle(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults category and image", func(t *testing.T) {
		repo := new(mockArticleRepo)
		svc := NewArticleService(repo)

		repo.On("Create", ctx, mock.MatchedBy(func(a *models.Article) bool {
			return a.Category == models.CategoryLifestyle &&
				a.ImageURL == models.PlaceholderImage &&
				a.UserID == uint(7)
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Article).ID = 42
		}).Return(nil)
		repo.On("GetByID", ctx, uint(42), uint(7)).
			Return(&models.Article{ID: 42, Title: "A perfectly fine title"}, nil)

		article, err := svc.CreateArticle(ctx, CreateArticleInput{
			AuthorID: 7,
			Title:    "  A perfectly fine title  ",
			Content:  "Some content",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(42), article.ID)
		repo.AssertExpectations(t)
	})

	t.Run("short title is rejected before any write", func(t *testing.T) {
		repo := new(mockArticleRepo)
		svc := NewArticleService(repo)

		_, err := svc.CreateArticle(ctx, CreateArticleInput{
			AuthorID: 7, Title: "Hey", Content: "Some content",
		})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("whitespace-only content is rejected", func(t *testing.T) {
		repo := new(mockArticleRepo)
		svc := NewArticleService(repo)

		_, err := svc.CreateArticle(ctx, CreateArticleInput{
			AuthorID: 7, Title: "A perfectly fine title", Content: "   \n\t ",
		})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("overlong title is rejected", func(t *testing.T) {
		repo := new(mockArticleRepo)
		svc := NewArticleService(repo)

		_, err := svc.CreateArticle(ctx, CreateArticleInput{
			AuthorID: 7, Title: strings.Repeat("x", 151), Content: "Some content",
		})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		repo := new(mockArticleRepo)
		svc := NewArticleService(repo)

		_, err := svc.CreateArticle(ctx, CreateArticleInput{
			AuthorID: 7, Title: "A perfectly fine title", Content: "Some content",
			Category: "finance",
		})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})
}

func TestArticleService_GetArticle(t *testing.T) {
	ctx := context.Background()

	t.Run("increments views before reading", func(t *testing.T) {
		repo := new(mockArticleRepo)
		svc := NewArticleService(repo)

		repo.On("IncrementViews", ctx, uint(5)).Return(nil)
		repo.On("GetByID", ctx, uint(5), uint(9)).
			Return(&models.Article{ID: 5, Views: 12}, nil)

		article, err := svc.GetArticle(ctx, 5, 9)
		require.NoError(t, err)
		assert.Equal(t, uint(12), article.Views)
		repo.AssertExpectations(t)
	})

	t.Run("missing article surfaces not found from the increment", func(t *testing.T) {
		repo := new(mockArticleRepo)
		svc := NewArticleService(repo)

		repo.On("IncrementViews", ctx, uint(5)).
			Return(models.NewNotFoundError("Article", 5))

		_, err := svc.GetArticle(ctx, 5, 0)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
	})

}

func TestArticleService_ListArticles(t *testing.T) {
	ctx := context.Background()

	t.Run("clamps page and limit", func(t *testing.T) {
		repo := new(mockArticleRepo)
		svc := NewArticleService(repo)

		repo.On("List", ctx, repository.ArticleFilter{}, defaultPageSize, 0, "", uint(0)).
			Return([]*models.Article{{ID: 1}}, int64(1), nil)

		page, err := svc.ListArticles(ctx, ListArticlesInput{Page: -3, Limit: 0})
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("caps oversized limits", func(t *testing.T) {
		repo := new(mockArticleRepo)
		svc := NewArticleService(repo)

		repo.On("List", ctx, repository.ArticleFilter{}, maxPageSize, 0, "", uint(0)).
			Return([]*models.Article{}, int64(0), nil)

		_, err := svc.ListArticles(ctx, ListArticlesInput{Page: 1, Limit: 10000})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("total pages rounds up", func(t *testing.T) {
		repo := new(mockArticleRepo)
		svc := NewArticleService(repo)

		repo.On("List", ctx, repository.ArticleFilter{}, 10, 10, "", uint(0)).
			Return([]*models.Article{{ID: 11}}, int64(11), nil)

		page, err := svc.ListArticles(ctx, ListArticlesInput{Page: 2, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 2, page.TotalPages)
		assert.Equal(t, int64(11), page.Total)
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		repo := new(mockArticleRepo)
		svc := NewArticleService(repo)

		repo.On("List", ctx, repository.ArticleFilter{}, 10, 90, "", uint(0)).
			Return(nil, int64(3), nil)

		page, err := svc.ListArticles(ctx, ListArticlesInput{Page: 10, Limit: 10})
		require.NoError(t, err)
		require.NotNil(t, page.Articles)
		assert.Empty(t, page.Articles)
	})

	t.Run("unknown category fails fast", func(t *testing.T) {
		repo := new(mockArticleRepo)
		svc := NewArticleService(repo)

		_, err := svc.ListArticles(ctx, ListArticlesInput{
			Filter: repository.ArticleFilter{Category: "finance"},
		})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		repo.AssertNotCalled(t, "List",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestArticleService_UpdateArticle(t *testing.T) {
	ctx := context.Background()
	title := "A new and improved title"
	draft := true

	t.Run("owner can update", func(t *testing.T) {
		repo := new(mockArticleRepo)
		svc := NewArticleService(repo)

		stored := &models.Article{ID: 3, Title: "The old title here", UserID: 7}
		repo.On("GetByID", ctx, uint(3), uint(7)).Return(stored, nil).Once()
		repo.On("Update", ctx, mock.MatchedBy(func(a *models.Article) bool {
			return a.Title == title && a.IsDraft
		})).Return(nil)
		repo.On("GetByID", ctx, uint(3), uint(7)).
			Return(&models.Article{ID: 3, Title: title, IsDraft: true, UserID: 7}, nil).Once()

		got, err := svc.UpdateArticle(ctx, 3, 7, models.ArticlePatch{Title: &title, IsDraft: &draft})
		require.NoError(t, err)
		assert.Equal(t, title, got.Title)
		assert.True(t, got.IsDraft)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		repo := new(mockArticleRepo)
		svc := NewArticleService(repo)

		repo.On("GetByID", ctx, uint(3), uint(8)).
			Return(&models.Article{ID: 3, UserID: 7}, nil)

		_, err := svc.UpdateArticle(ctx, 3, 8, models.ArticlePatch{Title: &title})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "FORBIDDEN", appErr.Code)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("invalid patched title is rejected", func(t *testing.T) {
		repo := new(mockArticleRepo)
		svc := NewArticleService(repo)

		bad := "Tiny"
		repo.On("GetByID", ctx, uint(3), uint(7)).
			Return(&models.Article{ID: 3, UserID: 7}, nil)

		_, err := svc.UpdateArticle(ctx, 3, 7, models.ArticlePatch{Title: &bad})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})
}

func TestArticleService_DeleteArticle(t *testing.T) {
	ctx := context.Background()

	t.Run("owner can delete", func(t *testing.T) {
		repo := new(mockArticleRepo)
		svc := NewArticleService(repo)

		repo.On("GetByID", ctx, uint(3), uint(7)).
			Return(&models.Article{ID: 3, UserID: 7}, nil)
		repo.On("Delete", ctx, uint(3)).Return(nil)

		require.NoError(t, svc.DeleteArticle(ctx, 3, 7))
		repo.AssertExpectations(t)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		repo := new(mockArticleRepo)
		svc := NewArticleService(repo)

		repo.On("GetByID", ctx, uint(3), uint(8)).
			Return(&models.Article{ID: 3, UserID: 7}, nil)

		err := svc.DeleteArticle(ctx, 3, 8)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "FORBIDDEN", appErr.Code)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestArticleService_Toggles(t *testing.T) {
	ctx := context.Background()

	t.Run("like passes through to the repository", func(t *testing.T) {
		repo := new(mockArticleRepo)
		svc := NewArticleService(repo)

		repo.On("ToggleReaction", ctx, uint(3), uint(7), models.ReactionLike).
			Return(&models.ReactionCounts{Likes: 4, Dislikes: 1}, nil)

		counts, err := svc.ToggleLike(ctx, 3, 7)
		require.NoError(t, err)
		assert.Equal(t, 4, counts.Likes)
	})

	t.Run("dislike passes through to the repository", func(t *testing.T) {
		repo := new(mockArticleRepo)
		svc := NewArticleService(repo)

		repo.On("ToggleReaction", ctx, uint(3), uint(7), models.ReactionDislike).
			Return(&models.ReactionCounts{Likes: 0, Dislikes: 2}, nil)

		counts, err := svc.ToggleDislike(ctx, 3, 7)
		require.NoError(t, err)
		assert.Equal(t, 2, counts.Dislikes)
	})
}
