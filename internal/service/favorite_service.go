package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// FavoriteService manages private bookmarks. Every operation is scoped to the
// acting user; other users' favorites are indistinguishable from missing rows.
type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
	postRepo     repository.PostRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, postRepo repository.PostRepository) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo, postRepo: postRepo}
}

func (s *FavoriteService) ListFavorites(ctx context.Context, userID uint, limit, offset int) ([]*models.Favorite, error) {
	return s.favoriteRepo.ListByUser(ctx, userID, limit, offset)
}

func (s *FavoriteService) GetFavorite(ctx context.Context, userID, favoriteID uint) (*models.Favorite, error) {
	return s.favoriteRepo.GetByIDForUser(ctx, favoriteID, userID)
}

func (s *FavoriteService) CreateFavorite(ctx context.Context, userID, postID uint) (*models.Favorite, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	favorite := &models.Favorite{UserID: userID, PostID: postID}
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, err
	}
	return s.favoriteRepo.GetByIDForUser(ctx, favorite.ID, userID)
}

func (s *FavoriteService) DeleteFavorite(ctx context.Context, userID, favoriteID uint) error {
	return s.favoriteRepo.DeleteForUser(ctx, favoriteID, userID)
}
