// Package models contains data structures for the application's domain models.
package models

import "time"

// Post represents a blog post. LikesCount and FavoritesCount are never
// persisted; they are SELECT aliases computed by the repository at read time.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Content  string `gorm:"type:text;not null" json:"content"`
	ImageURL string `json:"image_url,omitempty"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`

	Tags     []Tag     `gorm:"many2many:post_tags" json:"tags,omitempty"`
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`

	LikesCount     int `gorm:"->;-:migration" json:"likes_count"`
	FavoritesCount int `gorm:"->;-:migration" json:"favorites_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
