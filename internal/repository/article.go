package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"blogsphere/internal/models"

	"gorm.io/gorm"
)

// ArticleFilter narrows article listings. The zero value selects all
// published articles.
type ArticleFilter struct {
	Category string // empty = any
	Query    string // case-insensitive substring over title and content
	AuthorID uint   // 0 = any author
	// IncludeDrafts lifts the default isDraft exclusion. Only the "my
	// articles" listing sets this.
	IncludeDrafts bool
}

// ArticleRepository defines persistence operations for articles and their
// engagement sets.
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Article, error)
	// IncrementViews bumps the view counter atomically in the database so
	// concurrent readers never lose updates.
	IncrementViews(ctx context.Context, id uint) error
	List(ctx context.Context, filter ArticleFilter, limit, offset int, sort string, currentUserID uint) ([]*models.Article, int64, error)
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id uint) error
	// ToggleReaction flips the caller's membership in the article's like or
	// dislike set inside a single transaction and returns the new counts.
	ToggleReaction(ctx context.Context, articleID, userID uint, kind string) (*models.ReactionCounts, error)
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	if err := r.db.WithContext(ctx).Create(article).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *articleRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Article, error) {
	var article models.Article
	err := r.applyArticleDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		First(&article, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Article", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &article, nil
}

func (r *articleRepository) IncrementViews(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Article", id)
	}
	return nil
}

func (r *articleRepository) List(ctx context.Context, filter ArticleFilter, limit, offset int, sort string, currentUserID uint) ([]*models.Article, int64, error) {
	base := r.applyFilter(r.db.WithContext(ctx).Model(&models.Article{}), filter)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var articles []*models.Article
	query := r.applyArticleDetails(r.applyFilter(r.db.WithContext(ctx), filter), currentUserID).
		Preload("User")
	err := r.applySort(query, sort).
		Limit(limit).
		Offset(offset).
		Find(&articles).Error
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return articles, total, nil
}

func (r *articleRepository) applyFilter(db *gorm.DB, filter ArticleFilter) *gorm.DB {
	if !filter.IncludeDrafts {
		db = db.Where("articles.is_draft = ?", false)
	}
	if filter.Category != "" {
		db = db.Where("articles.category = ?", filter.Category)
	}
	if filter.AuthorID != 0 {
		db = db.Where("articles.user_id = ?", filter.AuthorID)
	}
	if filter.Query != "" {
		// LOWER(...) LIKE works on both PostgreSQL and sqlite; ILIKE would
		// tie the query to PostgreSQL.
		like := "%" + strings.ToLower(filter.Query) + "%"
		db = db.Where("LOWER(articles.title) LIKE ? OR LOWER(articles.content) LIKE ?", like, like)
	}
	return db
}

// applySort appends the ORDER BY clause for the requested sort type.
// likes_count is a SELECT alias from applyArticleDetails.
func (r *articleRepository) applySort(db *gorm.DB, sort string) *gorm.DB {
	switch sort {
	case "old":
		return db.Order("articles.created_at ASC")
	case "views":
		return db.Order("articles.views DESC, articles.created_at DESC")
	case "top":
		return db.Order("likes_count DESC, articles.created_at DESC")
	default: // "new" and anything unrecognized
		return db.Order("articles.created_at DESC")
	}
}

// applyArticleDetails adds subqueries to fetch engagement counts and the
// caller's reaction status in a single query.
func (r *articleRepository) applyArticleDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "articles.*, " +
		"(SELECT COUNT(*) FROM reactions WHERE reactions.article_id = articles.id AND reactions.kind = 'like') as likes_count, " +
		"(SELECT COUNT(*) FROM reactions WHERE reactions.article_id = articles.id AND reactions.kind = 'dislike') as dislikes_count, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.article_id = articles.id AND comments.deleted_at IS NULL) as comments_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+
			", EXISTS(SELECT 1 FROM reactions WHERE reactions.article_id = articles.id AND reactions.user_id = ? AND reactions.kind = 'like') as liked"+
			", EXISTS(SELECT 1 FROM reactions WHERE reactions.article_id = articles.id AND reactions.user_id = ? AND reactions.kind = 'dislike') as disliked",
			currentUserID, currentUserID)
	}

	return db.Select(selectQuery + ", false as liked, false as disliked")
}

// Update writes the mutable content columns only. The article value was read
// earlier in the request, so writing every column back would erase view
// increments that landed in between.
func (r *articleRepository) Update(ctx context.Context, article *models.Article) error {
	err := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ?", article.ID).
		Updates(map[string]any{
			"title":     article.Title,
			"content":   article.Content,
			"category":  article.Category,
			"is_draft":  article.IsDraft,
			"image_url": article.ImageURL,
		}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Article{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *articleRepository) ToggleReaction(ctx context.Context, articleID, userID uint, kind string) (*models.ReactionCounts, error) {
	if kind != models.ReactionLike && kind != models.ReactionDislike {
		return nil, models.NewValidationError(fmt.Sprintf("Unknown reaction kind %q", kind))
	}

	var counts models.ReactionCounts
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&models.Article{}).Where("id = ?", articleID).Count(&exists).Error; err != nil {
			return models.NewInternalError(err)
		}
		if exists == 0 {
			return models.NewNotFoundError("Article", articleID)
		}

		var current models.Reaction
		err := tx.Where("article_id = ? AND user_id = ?", articleID, userID).First(&current).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Neutral: join the requested set.
			reaction := models.Reaction{UserID: userID, ArticleID: articleID, Kind: kind}
			if err := tx.Create(&reaction).Error; err != nil {
				return models.NewInternalError(err)
			}
		case err != nil:
			return models.NewInternalError(err)
		case current.Kind == kind:
			// Toggling the same side twice returns to neutral.
			if err := tx.Delete(&current).Error; err != nil {
				return models.NewInternalError(err)
			}
		default:
			// Switching sides updates the single row in place, so the user
			// is never in both sets.
			if err := tx.Model(&current).Update("kind", kind).Error; err != nil {
				return models.NewInternalError(err)
			}
		}

		var likes, dislikes int64
		if err := tx.Model(&models.Reaction{}).
			Where("article_id = ? AND kind = ?", articleID, models.ReactionLike).
			Count(&likes).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Model(&models.Reaction{}).
			Where("article_id = ? AND kind = ?", articleID, models.ReactionDislike).
			Count(&dislikes).Error; err != nil {
			return models.NewInternalError(err)
		}
		counts.Likes = int(likes)
		counts.Dislikes = int(dislikes)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &counts, nil
}
