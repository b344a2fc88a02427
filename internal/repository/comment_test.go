package repository

import (
	"testing"
	"time"

	"blogsphere/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := testContext()

	author := createTestUser(t, db, "author")
	article := createTestArticle(t, db, author.ID, "An article to discuss")

	comment := &models.Comment{
		Content:   "Great read",
		UserID:    author.ID,
		ArticleID: article.ID,
	}
	require.NoError(t, repo.Create(ctx, comment))
	require.NotZero(t, comment.ID)

	got, err := repo.GetByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "Great read", got.Content)
	assert.Equal(t, author.Username, got.User.Username)

	_, err = repo.GetByID(ctx, 9999)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestCommentRepository_ListByArticle(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := testContext()

	author := createTestUser(t, db, "author")
	reader := createTestUser(t, db, "reader")
	article := createTestArticle(t, db, author.ID, "Busy comment section")
	quiet := createTestArticle(t, db, author.ID, "Nobody commented here")

	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, db.Create(&models.Comment{
			Content:   "Comment",
			UserID:    reader.ID,
			ArticleID: article.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}

	t.Run("newest first with author fields", func(t *testing.T) {
		comments, err := repo.ListByArticle(ctx, article.ID, 10, 0)
		require.NoError(t, err)
		require.Len(t, comments, 5)
		assert.True(t, comments[0].CreatedAt.After(comments[4].CreatedAt))
		assert.Equal(t, reader.Username, comments[0].User.Username)
	})

	t.Run("pagination", func(t *testing.T) {
		comments, err := repo.ListByArticle(ctx, article.ID, 2, 4)
		require.NoError(t, err)
		assert.Len(t, comments, 1)
	})

	t.Run("empty for an article without comments", func(t *testing.T) {
		comments, err := repo.ListByArticle(ctx, quiet.ID, 10, 0)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})
}

func TestCommentRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := testContext()

	author := createTestUser(t, db, "author")
	article := createTestArticle(t, db, author.ID, "Comment gets removed")

	comment := &models.Comment{Content: "Delete me", UserID: author.ID, ArticleID: article.ID}
	require.NoError(t, repo.Create(ctx, comment))

	require.NoError(t, repo.Delete(ctx, comment.ID))

	_, err := repo.GetByID(ctx, comment.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
