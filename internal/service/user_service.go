// Package service holds the application's business logic, sitting between
// the HTTP handlers and the repositories.
package service

import (
	"context"
	"errors"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
	"inkwell/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// UpdateProfileInput carries a profile update. Nil pointers mean the field
// was absent from the request, which only partial updates tolerate.
type UpdateProfileInput struct {
	UserID   uint
	Username *string
	Email    *string
	Password *string
	Partial  bool
}

func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository) *UserService {
	return &UserService{userRepo: userRepo, postRepo: postRepo}
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	fields := map[string][]string{}
	if err := validation.ValidateUsername(in.Username); err != nil {
		fields["username"] = append(fields["username"], err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		fields["email"] = append(fields["email"], err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		fields["password"] = append(fields["password"], err.Error())
	}
	if len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	existing, err := s.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewFieldValidationError(map[string][]string{
			"username": {validation.ErrUsernameTaken},
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can slip past the pre-check and trip
		// the unique index instead.
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeValidation {
			return nil, models.NewFieldValidationError(map[string][]string{
				"username": {validation.ErrUsernameTaken},
			})
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		observability.AuthFailures.WithLabelValues("unknown_user").Inc()
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		observability.AuthFailures.WithLabelValues("bad_password").Inc()
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	fields := map[string][]string{}

	if !in.Partial {
		if in.Username == nil {
			fields["username"] = append(fields["username"], "This field is required")
		}
		if in.Email == nil {
			fields["email"] = append(fields["email"], "This field is required")
		}
	}

	if in.Username != nil {
		if err := validation.ValidateUsername(*in.Username); err != nil {
			fields["username"] = append(fields["username"], err.Error())
		} else if *in.Username != user.Username {
			other, err := s.userRepo.GetByUsername(ctx, *in.Username)
			if err != nil {
				return nil, err
			}
			if other != nil {
				fields["username"] = append(fields["username"], validation.ErrUsernameTaken)
			}
		}
	}
	if in.Email != nil {
		if err := validation.ValidateEmail(*in.Email); err != nil {
			fields["email"] = append(fields["email"], err.Error())
		}
	}
	if in.Password != nil {
		if err := validation.ValidatePassword(*in.Password); err != nil {
			fields["password"] = append(fields["password"], err.Error())
		}
	}
	if len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = string(hash)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserPosts lists a user's posts, erroring when the user itself is unknown
// so an empty result is distinguishable from a bad id.
func (s *UserService) GetUserPosts(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByAuthor(ctx, userID, limit, offset)
}
