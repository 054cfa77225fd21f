package service

import (
	"context"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

type TagService struct {
	tagRepo repository.TagRepository
}

func NewTagService(tagRepo repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

const maxTagNameLen = 50

func validateTagName(name string) error {
	if strings.TrimSpace(name) == "" {
		return models.NewFieldValidationError(map[string][]string{
			"name": {"This field is required"},
		})
	}
	if len(name) > maxTagNameLen {
		return models.NewFieldValidationError(map[string][]string{
			"name": {"Tag name too long (max 50 characters)"},
		})
	}
	return nil
}

func (s *TagService) ListTags(ctx context.Context, limit, offset int) ([]*models.Tag, error) {
	return s.tagRepo.List(ctx, limit, offset)
}

func (s *TagService) GetTag(ctx context.Context, id uint) (*models.Tag, error) {
	return s.tagRepo.GetByID(ctx, id)
}

func (s *TagService) CreateTag(ctx context.Context, name string) (*models.Tag, error) {
	if err := validateTagName(name); err != nil {
		return nil, err
	}
	tag := &models.Tag{Name: name}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) UpdateTag(ctx context.Context, id uint, name string) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateTagName(name); err != nil {
		return nil, err
	}
	tag.Name = name
	if err := s.tagRepo.Update(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) DeleteTag(ctx context.Context, id uint) error {
	return s.tagRepo.Delete(ctx, id)
}
