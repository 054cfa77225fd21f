package seed

import (
	"fmt"
	"strings"
	"testing"

	"inkwell/internal/database"
	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	return db
}

func TestFactoryCreateUser(t *testing.T) {
	db := newTestDB(t)
	factory := NewFactory(db, Options{})

	user, err := factory.CreateUser(func(u *models.User) {
		u.Username = "seeded"
	})
	require.NoError(t, err)
	assert.Equal(t, "seeded", user.Username)
	assert.NotZero(t, user.ID)

	// Seeded accounts must be able to log in with the shared password.
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(user.Password), []byte("password123")))
}

func TestFactoryCreatePostWithTags(t *testing.T) {
	db := newTestDB(t)
	factory := NewFactory(db, Options{SkipBcrypt: true})

	author, err := factory.CreateUser()
	require.NoError(t, err)
	tag, err := factory.CreateTag()
	require.NoError(t, err)

	post, err := factory.CreatePost(author, []models.Tag{*tag})
	require.NoError(t, err)

	var got models.Post
	require.NoError(t, db.Preload("Tags").First(&got, post.ID).Error)
	assert.Equal(t, author.ID, got.AuthorID)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, tag.Name, got.Tags[0].Name)
}

func TestSeederRun(t *testing.T) {
	db := newTestDB(t)
	seeder := NewSeeder(db, Options{SkipBcrypt: true})

	users, err := seeder.Run(5, 20, 6)
	require.NoError(t, err)
	assert.Len(t, users, 5)

	var postCount, tagCount int64
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	require.NoError(t, db.Model(&models.Tag{}).Count(&tagCount).Error)
	assert.EqualValues(t, 20, postCount)
	assert.EqualValues(t, 6, tagCount)

	// Every like pair must be unique.
	var likeCount, distinctLikes int64
	require.NoError(t, db.Model(&models.Like{}).Count(&likeCount).Error)
	require.NoError(t, db.Model(&models.Like{}).
		Distinct("user_id", "post_id").Count(&distinctLikes).Error)
	assert.Equal(t, likeCount, distinctLikes)

	// All foreign keys resolve to seeded rows.
	var orphans int64
	require.NoError(t, db.Model(&models.Comment{}).
		Where("post_id NOT IN (SELECT id FROM posts)").Count(&orphans).Error)
	assert.Zero(t, orphans)
}

func TestSeederClearAll(t *testing.T) {
	db := newTestDB(t)
	seeder := NewSeeder(db, Options{SkipBcrypt: true})

	_, err := seeder.Run(3, 5, 4)
	require.NoError(t, err)
	require.NoError(t, seeder.ClearAll())

	for _, model := range database.PersistentModels() {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}
}
