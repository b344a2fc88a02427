package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"blogsphere/internal/database"
	"blogsphere/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory sqlite database with the full schema.
// Each test gets its own named database so connections from the pool share
// state within a test but never across tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed-password",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestArticle(t *testing.T, db *gorm.DB, userID uint, title string, opts ...func(*models.Article)) *models.Article {
	t.Helper()
	article := &models.Article{
		Title:     title,
		Content:   "Content for " + title,
		Category:  models.CategoryTech,
		ImageURL:  models.PlaceholderImage,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(article)
	}
	require.NoError(t, db.Create(article).Error)
	return article
}

func asDraft(a *models.Article) { a.IsDraft = true }

func withCategory(category string) func(*models.Article) {
	return func(a *models.Article) { a.Category = category }
}

func withCreatedAt(ts time.Time) func(*models.Article) {
	return func(a *models.Article) { a.CreatedAt = ts }
}

func testContext() context.Context {
	return context.Background()
}
