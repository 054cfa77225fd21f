package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/policy"
	"inkwell/internal/repository"
)

type LikeService struct {
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
}

func NewLikeService(likeRepo repository.LikeRepository, postRepo repository.PostRepository) *LikeService {
	return &LikeService{likeRepo: likeRepo, postRepo: postRepo}
}

func (s *LikeService) ListLikes(ctx context.Context, limit, offset int) ([]*models.Like, error) {
	return s.likeRepo.List(ctx, limit, offset)
}

func (s *LikeService) GetLike(ctx context.Context, id uint) (*models.Like, error) {
	return s.likeRepo.GetByID(ctx, id)
}

// CreateLike records userID liking postID. The owner always comes from the
// authenticated identity.
func (s *LikeService) CreateLike(ctx context.Context, userID, postID uint) (*models.Like, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	like := &models.Like{UserID: userID, PostID: postID}
	if err := s.likeRepo.Create(ctx, like); err != nil {
		return nil, err
	}
	return s.likeRepo.GetByID(ctx, like.ID)
}

// UpdateLike repoints an owned like at a different post.
func (s *LikeService) UpdateLike(ctx context.Context, userID, likeID, postID uint) (*models.Like, error) {
	like, err := s.likeRepo.GetByID(ctx, likeID)
	if err != nil {
		return nil, err
	}
	if !policy.CanModifyLike(userID, like) {
		return nil, models.NewForbiddenError("You do not have permission to modify this like")
	}
	if postID != like.PostID {
		if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
			return nil, err
		}
		like.PostID = postID
	}
	if err := s.likeRepo.Update(ctx, like); err != nil {
		return nil, err
	}
	return s.likeRepo.GetByID(ctx, like.ID)
}

func (s *LikeService) DeleteLike(ctx context.Context, userID, likeID uint) error {
	like, err := s.likeRepo.GetByID(ctx, likeID)
	if err != nil {
		return err
	}
	if !policy.CanModifyLike(userID, like) {
		return models.NewForbiddenError("You do not have permission to delete this like")
	}
	return s.likeRepo.Delete(ctx, likeID)
}
