// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Article categories. Category defaults to lifestyle when not supplied.
const (
	CategoryLifestyle = "lifestyle"
	CategorySport     = "sport"
	CategoryTech      = "tech"
	CategorySante     = "santé"
)

// PlaceholderImage is used when an article is created without an image.
const PlaceholderImage = "https://source.unsplash.com/random/400x200?sig=1"

// ValidCategory reports whether the given category is one of the known values.
func ValidCategory(category string) bool {
	switch category {
	case CategoryLifestyle, CategorySport, CategoryTech, CategorySante:
		return true
	}
	return false
}

// Article represents a blog article. The author (UserID) is fixed at
// creation and never changes afterwards.
type Article struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Content  string `gorm:"type:text;not null" json:"content"`
	ImageURL string `json:"image"`
	Category string `gorm:"not null;default:lifestyle;index" json:"category"`
	IsDraft  bool   `gorm:"not null;default:false;index" json:"isDraft"`
	// Views is only ever mutated with an atomic in-database increment.
	Views  uint `gorm:"not null;default:0" json:"views"`
	UserID uint `gorm:"not null;index" json:"author_id"`
	User   User `gorm:"foreignKey:UserID" json:"author"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes"`
	// DislikesCount is not persisted; computed at query time
	DislikesCount int `gorm:"->" json:"dislikes"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
	// Liked/Disliked indicate the requesting user's reaction (computed)
	Liked     bool           `gorm:"->" json:"liked"`
	Disliked  bool           `gorm:"->" json:"disliked"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ArticlePatch carries an owner-supplied partial update. Only non-nil
// fields are applied; author and id are immutable and have no patch field.
type ArticlePatch struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	IsDraft  *bool   `json:"isDraft"`
	ImageURL *string `json:"image"`
}
