package policy

import (
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanModifyPost(t *testing.T) {
	post := &models.Post{ID: 1, AuthorID: 7}

	assert.True(t, CanModifyPost(7, post))
	assert.False(t, CanModifyPost(8, post))
}

func TestCanModifyComment(t *testing.T) {
	comment := &models.Comment{ID: 3, AuthorID: 2, PostID: 1}

	assert.True(t, CanModifyComment(2, comment))
	assert.False(t, CanModifyComment(1, comment))
}

func TestCanModifyLike(t *testing.T) {
	like := &models.Like{ID: 5, UserID: 4, PostID: 1}

	assert.True(t, CanModifyLike(4, like))
	assert.False(t, CanModifyLike(9, like))
}
