// Package policy holds the per-resource ownership rules. Each rule is a pure
// predicate over the acting identity and an entity instance; handlers compose
// them explicitly for unsafe verbs, while reads stay unconditional.
package policy

import "inkwell/internal/models"

// CanModifyPost reports whether userID may update or delete the post.
func CanModifyPost(userID uint, post *models.Post) bool {
	return post.AuthorID == userID
}

// CanModifyComment reports whether userID may update or delete the comment.
func CanModifyComment(userID uint, comment *models.Comment) bool {
	return comment.AuthorID == userID
}

// CanModifyLike reports whether userID may update or delete the like.
func CanModifyLike(userID uint, like *models.Like) bool {
	return like.UserID == userID
}
