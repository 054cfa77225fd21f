package repository

import (
	"context"
	"errors"
	"strings"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// PostQuery describes the filter, search, ordering and pagination options
// accepted by the post listing.
type PostQuery struct {
	AuthorID uint
	TagIDs   []uint
	Search   string
	Ordering string
	Limit    int
	Offset   int
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post, tags []models.Tag) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, q PostQuery) ([]*models.Post, error)
	GetByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post, tags []models.Tag, replaceTags bool) error
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post, tags []models.Tag) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(post).Error; err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := tx.Model(post).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	key := cache.PostKey(id)

	err := cache.Aside(ctx, key, &post, cache.PostTTL, func() error {
		if err := r.withPostCounts(r.db.WithContext(ctx)).
			Preload("Author").
			Preload("Tags").
			Preload("Comments", commentOrder).
			Preload("Comments.Author").
			First(&post, "posts.id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, q PostQuery) ([]*models.Post, error) {
	var posts []*models.Post
	db := r.withPostCounts(r.db.WithContext(ctx)).
		Preload("Author").
		Preload("Tags").
		Preload("Comments", commentOrder).
		Preload("Comments.Author")

	if q.AuthorID != 0 {
		db = db.Where("posts.author_id = ?", q.AuthorID)
	}
	if len(q.TagIDs) > 0 {
		db = db.
			Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Where("post_tags.tag_id IN ?", q.TagIDs).
			Distinct()
	}
	if q.Search != "" {
		like := "%" + strings.ToLower(q.Search) + "%"
		db = db.Where("LOWER(posts.title) LIKE ? OR LOWER(posts.content) LIKE ?", like, like)
	}

	err := applyPostOrdering(db, q.Ordering).
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) GetByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.Post, error) {
	return r.List(ctx, PostQuery{AuthorID: authorID, Limit: limit, Offset: offset})
}

func (r *postRepository) Update(ctx context.Context, post *models.Post, tags []models.Tag, replaceTags bool) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Author", "Comments").Save(post).Error; err != nil {
			return err
		}
		if replaceTags {
			if err := tx.Model(post).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, post.ID)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post := models.Post{ID: id}
		if err := tx.Model(&post).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

// withPostCounts adds subqueries fetching the like and favorite counts in a
// single query. The aliases map onto the read-only count fields of models.Post.
func (r *postRepository) withPostCounts(db *gorm.DB) *gorm.DB {
	return db.Select("posts.*, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) as likes_count, " +
		"(SELECT COUNT(*) FROM favorites WHERE favorites.post_id = posts.id) as favorites_count")
}

// applyPostOrdering appends the ORDER BY clause for the requested ordering.
// Anything unrecognized falls back to newest-first.
func applyPostOrdering(db *gorm.DB, ordering string) *gorm.DB {
	switch ordering {
	case "created_at":
		return db.Order("posts.created_at ASC")
	case "updated_at":
		return db.Order("posts.updated_at ASC")
	case "-updated_at":
		return db.Order("posts.updated_at DESC")
	default: // "-created_at" and anything unrecognized
		return db.Order("posts.created_at DESC")
	}
}

func commentOrder(db *gorm.DB) *gorm.DB {
	return db.Order("comments.created_at ASC")
}
