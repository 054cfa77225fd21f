package models

// Tag labels posts. Posts and tags are related many-to-many via post_tags.
type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"unique;not null" json:"name"`
	Posts []Post `gorm:"many2many:post_tags" json:"posts,omitempty"`
}
