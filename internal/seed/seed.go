// Package seed populates a development database with realistic fake data.
package seed

import (
	"fmt"
	"log"
	"math/rand"

	"blogsphere/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoPassword is the plaintext password every seeded account uses.
const DemoPassword = "password123"

var categories = []string{
	models.CategoryLifestyle,
	models.CategorySport,
	models.CategoryTech,
	models.CategorySante,
}

// Options controls how much data Seed generates.
type Options struct {
	Users              int
	ArticlesPerUser    int
	CommentsPerArticle int
}

// DefaultOptions returns a small but representative data set.
func DefaultOptions() Options {
	return Options{
		Users:              10,
		ArticlesPerUser:    5,
		CommentsPerArticle: 3,
	}
}

// Seed fills the database with fake users, articles, comments, and reactions.
// It refuses to run on a database that already has users.
func Seed(db *gorm.DB, opts Options) error {
	var existing int64
	if err := db.Model(&models.User{}).Count(&existing).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if existing > 0 {
		return fmt.Errorf("database already has %d users, refusing to seed", existing)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user := &models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:    fmt.Sprintf("user%d@%s", i, gofakeit.DomainName()),
			Password: string(hashed),
			Bio:      gofakeit.Sentence(12),
			Avatar:   gofakeit.ImageURL(200, 200),
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}

	var articles []*models.Article
	for _, user := range users {
		for i := 0; i < opts.ArticlesPerUser; i++ {
			article := &models.Article{
				Title:    gofakeit.Sentence(6),
				Content:  gofakeit.Paragraph(3, 5, 12, "\n\n"),
				Category: categories[rand.Intn(len(categories))],
				ImageURL: gofakeit.ImageURL(400, 200),
				// Roughly one article in five stays a draft.
				IsDraft: rand.Intn(5) == 0,
				UserID:  user.ID,
			}
			if err := db.Create(article).Error; err != nil {
				return fmt.Errorf("failed to create article: %w", err)
			}
			articles = append(articles, article)
		}
	}

	for _, article := range articles {
		if article.IsDraft {
			continue
		}
		for i := 0; i < opts.CommentsPerArticle; i++ {
			commenter := users[rand.Intn(len(users))]
			comment := &models.Comment{
				Content:   gofakeit.Sentence(10),
				ArticleID: article.ID,
				UserID:    commenter.ID,
			}
			if err := db.Create(comment).Error; err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
		}

		// Each user reacts to about half the published articles.
		for _, user := range users {
			if rand.Intn(2) == 0 {
				continue
			}
			kind := models.ReactionLike
			if rand.Intn(4) == 0 {
				kind = models.ReactionDislike
			}
			reaction := &models.Reaction{
				UserID:    user.ID,
				ArticleID: article.ID,
				Kind:      kind,
			}
			if err := db.Create(reaction).Error; err != nil {
				return fmt.Errorf("failed to create reaction: %w", err)
			}
		}
	}

	log.Printf("Seeded %d users, %d articles", len(users), len(articles))
	return nil
}
