// Package seed provides helpers to create development and demo data.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options tune factory behavior.
type Options struct {
	// SkipBcrypt stores a plaintext marker instead of a real hash. Much faster
	// for large seeds; the accounts cannot log in.
	SkipBcrypt bool
	// MaxDays spreads created_at timestamps over the past N days (default 90).
	MaxDays int
}

// Factory builds domain entities and persists them.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (f *Factory) pastTime() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	back := time.Duration(f.rng.Intn(maxDays))*24*time.Hour +
		time.Duration(f.rng.Intn(24))*time.Hour +
		time.Duration(f.rng.Intn(60))*time.Minute
	return time.Now().Add(-back)
}

// CreateUser persists a sample user. All seeded accounts share the password
// "password123" so they are usable from a dev frontend.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
	}

	if f.opts.SkipBcrypt {
		user.Password = "not-a-hash"
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateTag persists a tag with a unique name.
func (f *Factory) CreateTag(overrides ...func(*models.Tag)) (*models.Tag, error) {
	tag := &models.Tag{
		Name: strings.ToLower(gofakeit.BuzzWord()) + fmt.Sprintf("-%d", gofakeit.Number(10, 99)),
	}

	for _, override := range overrides {
		override(tag)
	}

	if err := f.db.Create(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

// CreatePost persists a post by the given author, optionally tagged.
func (f *Factory) CreatePost(author *models.User, tags []models.Tag, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Title:     gofakeit.Sentence(5),
		Content:   gofakeit.Paragraph(2, 4, 8, "\n\n"),
		AuthorID:  author.ID,
		CreatedAt: f.pastTime(),
	}
	if f.rng.Intn(3) == 0 {
		post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID())
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Omit("Tags").Create(post).Error; err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		if err := f.db.Model(post).Association("Tags").Replace(tags); err != nil {
			return nil, err
		}
	}
	return post, nil
}

// CreateComment persists a comment by the given author on the given post.
func (f *Factory) CreateComment(author *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Content:   gofakeit.Sentence(gofakeit.Number(5, 20)),
		AuthorID:  author.ID,
		PostID:    post.ID,
		CreatedAt: f.pastTime(),
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like. The (user, post) pair must not already exist.
func (f *Factory) CreateLike(user *models.User, post *models.Post) (*models.Like, error) {
	like := &models.Like{
		UserID:    user.ID,
		PostID:    post.ID,
		CreatedAt: f.pastTime(),
	}
	if err := f.db.Create(like).Error; err != nil {
		return nil, err
	}
	return like, nil
}

// CreateFavorite persists a favorite. The (user, post) pair must not already exist.
func (f *Factory) CreateFavorite(user *models.User, post *models.Post) (*models.Favorite, error) {
	favorite := &models.Favorite{
		UserID:    user.ID,
		PostID:    post.ID,
		CreatedAt: f.pastTime(),
	}
	if err := f.db.Create(favorite).Error; err != nil {
		return nil, err
	}
	return favorite, nil
}
