package repository

import (
	"context"
	"errors"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteRepository defines persistence operations for favorites. Favorites
// are private to their owner, so every read is scoped to the acting user and
// rows belonging to anyone else behave as if they do not exist.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *models.Favorite) error
	GetByIDForUser(ctx context.Context, id, userID uint) (*models.Favorite, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Favorite, error)
	DeleteForUser(ctx context.Context, id, userID uint) error
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository returns a new FavoriteRepository implementation.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	res := r.db.WithContext(ctx).
		Omit("User", "Post").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favorite)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewValidationError("Post already favorited")
	}
	cache.InvalidatePost(ctx, favorite.PostID)
	return nil
}

func (r *favoriteRepository) GetByIDForUser(ctx context.Context, id, userID uint) (*models.Favorite, error) {
	var favorite models.Favorite
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ? AND user_id = ?", id, userID).
		First(&favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Favorite", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &favorite, nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Favorite, error) {
	var favorites []*models.Favorite
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&favorites).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return favorites, nil
}

func (r *favoriteRepository) DeleteForUser(ctx context.Context, id, userID uint) error {
	favorite, err := r.GetByIDForUser(ctx, id, userID)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Favorite{}, favorite.ID).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, favorite.PostID)
	return nil
}
