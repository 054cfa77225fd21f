package service

import (
	"context"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/policy"
	"inkwell/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

type UpdateCommentInput struct {
	UserID    uint
	CommentID uint
	Content   *string
	PostID    *uint
	Partial   bool
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

const maxCommentLen = 10000

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewFieldValidationError(map[string][]string{
			"content": {"This field is required"},
		})
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewFieldValidationError(map[string][]string{
			"content": {"Comment too long (max 10000 characters)"},
		})
	}

	comment := &models.Comment{
		Content:  in.Content,
		AuthorID: in.UserID,
		PostID:   in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *CommentService) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

func (s *CommentService) ListComments(ctx context.Context, limit, offset int) ([]models.Comment, error) {
	return s.commentRepo.List(ctx, limit, offset)
}

func (s *CommentService) ListCommentsByPost(ctx context.Context, postID uint, limit, offset int) ([]models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID, limit, offset)
}

func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if !policy.CanModifyComment(in.UserID, comment) {
		return nil, models.NewForbiddenError("You do not have permission to modify this comment")
	}

	if !in.Partial && in.Content == nil {
		return nil, models.NewFieldValidationError(map[string][]string{
			"content": {"This field is required"},
		})
	}
	if in.Content != nil {
		if strings.TrimSpace(*in.Content) == "" {
			return nil, models.NewFieldValidationError(map[string][]string{
				"content": {"This field is required"},
			})
		}
		if len(*in.Content) > maxCommentLen {
			return nil, models.NewFieldValidationError(map[string][]string{
				"content": {"Comment too long (max 10000 characters)"},
			})
		}
		comment.Content = *in.Content
	}
	if in.PostID != nil && *in.PostID != comment.PostID {
		if _, err := s.postRepo.GetByID(ctx, *in.PostID); err != nil {
			return nil, err
		}
		comment.PostID = *in.PostID
	}

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *CommentService) DeleteComment(ctx context.Context, userID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if !policy.CanModifyComment(userID, comment) {
		return models.NewForbiddenError("You do not have permission to delete this comment")
	}
	return s.commentRepo.Delete(ctx, commentID)
}
