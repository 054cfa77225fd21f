package service

import (
	"context"
	"strings"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listFn       func(context.Context, int, int) ([]models.Comment, error)
	listByPostFn func(context.Context, uint, int, int) ([]models.Comment, error)
	updateFn     func(context.Context, *models.Comment) error
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) List(ctx context.Context, limit, offset int) ([]models.Comment, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:    func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listFn:       func(_ context.Context, _, _ int) ([]models.Comment, error) { return nil, nil },
		listByPostFn: func(_ context.Context, _ uint, _, _ int) ([]models.Comment, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

func TestCommentService_CreateComment_Validation(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(noopCommentRepo(), noopPostRepo())
	ctx := context.Background()

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateComment(ctx, CreateCommentInput{UserID: 1, PostID: 1})
		assertValidationError(t, err)
	})

	t.Run("content too long", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateComment(ctx, CreateCommentInput{
			UserID:  1,
			PostID:  1,
			Content: strings.Repeat("x", 10001),
		})
		assertValidationError(t, err)
	})

	t.Run("unknown post propagates not found", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post", id)
		}
		svc2 := NewCommentService(noopCommentRepo(), postRepo)
		_, err := svc2.CreateComment(ctx, CreateCommentInput{UserID: 1, PostID: 99, Content: "hi"})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

func TestCommentService_CreateComment_Success(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.createFn = func(_ context.Context, c *models.Comment) error {
		c.ID = 42
		return nil
	}
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, Content: "hello", AuthorID: 1, PostID: 1}, nil
	}

	svc := NewCommentService(commentRepo, noopPostRepo())
	comment, err := svc.CreateComment(context.Background(), CreateCommentInput{
		UserID:  1,
		PostID:  1,
		Content: "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), comment.ID)
	assert.Equal(t, "hello", comment.Content)
}

func TestCommentService_UpdateComment_Ownership(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, Content: "mine", AuthorID: 1, PostID: 1}, nil
	}
	svc := NewCommentService(commentRepo, noopPostRepo())

	_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{
		UserID:    2,
		CommentID: 5,
		Content:   strPtr("hijacked"),
		Partial:   true,
	})
	assertForbiddenError(t, err)
}

func TestCommentService_UpdateComment_MovesToExistingPost(t *testing.T) {
	t.Parallel()

	var saved *models.Comment
	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		if saved != nil {
			return saved, nil
		}
		return &models.Comment{ID: id, Content: "mine", AuthorID: 1, PostID: 1}, nil
	}
	commentRepo.updateFn = func(_ context.Context, c *models.Comment) error {
		saved = c
		return nil
	}
	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		if id == 2 {
			return &models.Post{ID: 2}, nil
		}
		return nil, models.NewNotFoundError("Post", id)
	}
	svc := NewCommentService(commentRepo, postRepo)

	postID := uint(2)
	_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{
		UserID:    1,
		CommentID: 5,
		Content:   strPtr("moved"),
		PostID:    &postID,
		Partial:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(2), saved.PostID)
	assert.Equal(t, "moved", saved.Content)
}

func TestCommentService_DeleteComment_Ownership(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, AuthorID: 1, PostID: 1}, nil
	}
	deleted := false
	commentRepo.deleteFn = func(_ context.Context, _ uint) error {
		deleted = true
		return nil
	}
	svc := NewCommentService(commentRepo, noopPostRepo())
	ctx := context.Background()

	err := svc.DeleteComment(ctx, 2, 5)
	assertForbiddenError(t, err)
	assert.False(t, deleted)

	require.NoError(t, svc.DeleteComment(ctx, 1, 5))
	assert.True(t, deleted)
}
