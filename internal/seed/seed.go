package seed

import (
	"fmt"
	"log"
	"math/rand"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// Seeder populates the database with a coherent mesh of users, tags, posts,
// comments, likes and favorites.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	rng     *rand.Rand
}

// NewSeeder creates a Seeder with default factory options.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	factory := NewFactory(db, opts)
	return &Seeder{db: db, factory: factory, rng: factory.rng}
}

// ClearAll removes all seedable rows. Deletion order respects foreign keys.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")

	steps := []struct {
		name string
		fn   func() error
	}{
		{"favorites", func() error { return s.db.Exec("DELETE FROM favorites").Error }},
		{"likes", func() error { return s.db.Exec("DELETE FROM likes").Error }},
		{"comments", func() error { return s.db.Exec("DELETE FROM comments").Error }},
		{"post_tags", func() error { return s.db.Exec("DELETE FROM post_tags").Error }},
		{"posts", func() error { return s.db.Exec("DELETE FROM posts").Error }},
		{"tags", func() error { return s.db.Exec("DELETE FROM tags").Error }},
		{"users", func() error { return s.db.Exec("DELETE FROM users").Error }},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			return fmt.Errorf("clear %s: %w", step.name, err)
		}
	}
	return nil
}

// Run seeds numUsers users and numPosts posts, then layers comments, likes
// and favorites on top. Returns the created users.
func (s *Seeder) Run(numUsers, numPosts, numTags int) ([]*models.User, error) {
	if numTags <= 0 {
		numTags = 12
	}

	log.Printf("Seeding %d users, %d tags, %d posts...", numUsers, numTags, numPosts)

	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		users = append(users, user)
	}

	tags := make([]models.Tag, 0, numTags)
	for i := 0; i < numTags; i++ {
		tag, err := s.factory.CreateTag()
		if err != nil {
			return nil, fmt.Errorf("create tag: %w", err)
		}
		tags = append(tags, *tag)
	}

	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[s.rng.Intn(len(users))]
		post, err := s.factory.CreatePost(author, s.pickTags(tags))
		if err != nil {
			return nil, fmt.Errorf("create post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := s.layerEngagement(users, posts); err != nil {
		return nil, err
	}

	log.Printf("Seeding complete: %d users, %d posts", len(users), len(posts))
	return users, nil
}

// pickTags selects 0-3 distinct tags for a post.
func (s *Seeder) pickTags(tags []models.Tag) []models.Tag {
	n := s.rng.Intn(4)
	if n == 0 || len(tags) == 0 {
		return nil
	}
	perm := s.rng.Perm(len(tags))
	if n > len(tags) {
		n = len(tags)
	}
	picked := make([]models.Tag, 0, n)
	for _, idx := range perm[:n] {
		picked = append(picked, tags[idx])
	}
	return picked
}

// layerEngagement adds comments, likes and favorites. Like and favorite
// pairs are tracked locally so the unique (user, post) constraints hold.
func (s *Seeder) layerEngagement(users []*models.User, posts []*models.Post) error {
	liked := map[[2]uint]bool{}
	favorited := map[[2]uint]bool{}

	for _, post := range posts {
		for i := 0; i < s.rng.Intn(5); i++ {
			commenter := users[s.rng.Intn(len(users))]
			if _, err := s.factory.CreateComment(commenter, post); err != nil {
				return fmt.Errorf("create comment: %w", err)
			}
		}

		for i := 0; i < s.rng.Intn(8); i++ {
			user := users[s.rng.Intn(len(users))]
			key := [2]uint{user.ID, post.ID}
			if liked[key] {
				continue
			}
			liked[key] = true
			if _, err := s.factory.CreateLike(user, post); err != nil {
				return fmt.Errorf("create like: %w", err)
			}
		}

		for i := 0; i < s.rng.Intn(3); i++ {
			user := users[s.rng.Intn(len(users))]
			key := [2]uint{user.ID, post.ID}
			if favorited[key] {
				continue
			}
			favorited[key] = true
			if _, err := s.factory.CreateFavorite(user, post); err != nil {
				return fmt.Errorf("create favorite: %w", err)
			}
		}
	}
	return nil
}
