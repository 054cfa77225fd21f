package service

import (
	"context"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/policy"
	"inkwell/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
	tagRepo  repository.TagRepository
}

type CreatePostInput struct {
	AuthorID uint
	Title    string
	Content  string
	ImageURL string
	TagIDs   []uint
}

type UpdatePostInput struct {
	UserID   uint
	PostID   uint
	Title    *string
	Content  *string
	ImageURL *string
	TagIDs   *[]uint
	Partial  bool
}

func NewPostService(postRepo repository.PostRepository, tagRepo repository.TagRepository) *PostService {
	return &PostService{postRepo: postRepo, tagRepo: tagRepo}
}

const (
	maxTitleLen   = 255
	maxContentLen = 50000
)

func validateTitle(title string) map[string][]string {
	fields := map[string][]string{}
	if strings.TrimSpace(title) == "" {
		fields["title"] = append(fields["title"], "This field is required")
	}
	if len(title) > maxTitleLen {
		fields["title"] = append(fields["title"], "Title too long (max 255 characters)")
	}
	return fields
}

func (s *PostService) ListPosts(ctx context.Context, q repository.PostQuery) ([]*models.Post, error) {
	return s.postRepo.List(ctx, q)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// CreatePost creates a post owned by the acting user. The author always comes
// from the authenticated identity, never from the request body.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if fields := validateTitle(in.Title); len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewFieldValidationError(map[string][]string{
			"content": {"Content too long (max 50000 characters)"},
		})
	}

	tags, err := s.tagRepo.GetByIDs(ctx, in.TagIDs)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:    in.Title,
		Content:  in.Content,
		ImageURL: in.ImageURL,
		AuthorID: in.AuthorID,
	}
	if err := s.postRepo.Create(ctx, post, tags); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if !policy.CanModifyPost(in.UserID, post) {
		return nil, models.NewForbiddenError("You do not have permission to modify this post")
	}

	if !in.Partial && in.Title == nil {
		return nil, models.NewFieldValidationError(map[string][]string{
			"title": {"This field is required"},
		})
	}
	if in.Title != nil {
		if fields := validateTitle(*in.Title); len(fields) > 0 {
			return nil, models.NewFieldValidationError(fields)
		}
		post.Title = *in.Title
	}
	if in.Content != nil {
		if len(*in.Content) > maxContentLen {
			return nil, models.NewFieldValidationError(map[string][]string{
				"content": {"Content too long (max 50000 characters)"},
			})
		}
		post.Content = *in.Content
	}
	if in.ImageURL != nil {
		post.ImageURL = *in.ImageURL
	}

	var tags []models.Tag
	replaceTags := false
	if in.TagIDs != nil {
		tags, err = s.tagRepo.GetByIDs(ctx, *in.TagIDs)
		if err != nil {
			return nil, err
		}
		replaceTags = true
	}

	if err := s.postRepo.Update(ctx, post, tags, replaceTags); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if !policy.CanModifyPost(userID, post) {
		return models.NewForbiddenError("You do not have permission to delete this post")
	}
	return s.postRepo.Delete(ctx, postID)
}
