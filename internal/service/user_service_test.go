package service

import (
	"context"
	"errors"
	"testing"

	"inkwell/internal/models"
	"inkwell/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
	}
}

func fieldErrors(t *testing.T, err error) map[string][]string {
	t.Helper()
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	return appErr.Fields
}

func TestUserService_Register_Validation(t *testing.T) {
	t.Parallel()

	svc := NewUserService(noopUserRepo(), noopPostRepo())
	ctx := context.Background()

	t.Run("short password", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "a@example.com", Password: "12345"})
		assertValidationError(t, err)
		assert.Contains(t, fieldErrors(t, err), "password")
	})

	t.Run("six character password passes", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "a@example.com", Password: "123456"})
		assert.NoError(t, err)
	})

	t.Run("missing username", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Register(ctx, RegisterInput{Email: "a@example.com", Password: "123456"})
		assertValidationError(t, err)
		assert.Contains(t, fieldErrors(t, err), "username")
	})

	t.Run("bad email", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "nope", Password: "123456"})
		assertValidationError(t, err)
		assert.Contains(t, fieldErrors(t, err), "email")
	})
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	t.Parallel()

	userRepo := noopUserRepo()
	userRepo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		return &models.User{ID: 1, Username: username}, nil
	}
	svc := NewUserService(userRepo, noopPostRepo())

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "a@example.com",
		Password: "123456",
	})
	assertValidationError(t, err)
	fields := fieldErrors(t, err)
	require.Contains(t, fields, "username")
	assert.Equal(t, []string{validation.ErrUsernameTaken}, fields["username"])
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	t.Parallel()

	var created *models.User
	userRepo := noopUserRepo()
	userRepo.createFn = func(_ context.Context, u *models.User) error {
		u.ID = 1
		created = u
		return nil
	}
	svc := NewUserService(userRepo, noopPostRepo())

	user, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "a@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret")))
}

func TestUserService_Authenticate(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := noopUserRepo()
	userRepo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		if username == "alice" {
			return &models.User{ID: 1, Username: "alice", Password: string(hash)}, nil
		}
		return nil, nil
	}
	svc := NewUserService(userRepo, noopPostRepo())
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "alice", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "alice", "wrong")
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.CodeUnauthorized, appErr.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "ghost", "s3cret")
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.CodeUnauthorized, appErr.Code)
	})
}

func TestUserService_UpdateProfile_FullRequiresUsernameAndEmail(t *testing.T) {
	t.Parallel()

	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Username: "alice", Email: "a@example.com"}, nil
	}
	svc := NewUserService(userRepo, noopPostRepo())

	_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
		UserID: 1,
		Email:  strPtr("new@example.com"),
	})
	assertValidationError(t, err)
	assert.Contains(t, fieldErrors(t, err), "username")
}

func TestUserService_UpdateProfile_PartialKeepsOtherFields(t *testing.T) {
	t.Parallel()

	var saved *models.User
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Username: "alice", Email: "a@example.com", Password: "hash"}, nil
	}
	userRepo.updateFn = func(_ context.Context, u *models.User) error {
		saved = u
		return nil
	}
	svc := NewUserService(userRepo, noopPostRepo())

	_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
		UserID:  1,
		Email:   strPtr("new@example.com"),
		Partial: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", saved.Username)
	assert.Equal(t, "new@example.com", saved.Email)
	assert.Equal(t, "hash", saved.Password)
}

func TestUserService_UpdateProfile_FullWithoutPasswordKeepsHash(t *testing.T) {
	t.Parallel()

	var saved *models.User
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Username: "alice", Email: "a@example.com", Password: "hash"}, nil
	}
	userRepo.updateFn = func(_ context.Context, u *models.User) error {
		saved = u
		return nil
	}
	svc := NewUserService(userRepo, noopPostRepo())

	_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
		UserID:   1,
		Username: strPtr("alice2"),
		Email:    strPtr("a@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "alice2", saved.Username)
	assert.Equal(t, "hash", saved.Password)
}

func TestUserService_UpdateProfile_DuplicateUsername(t *testing.T) {
	t.Parallel()

	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Username: "alice", Email: "a@example.com"}, nil
	}
	userRepo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		return &models.User{ID: 2, Username: username}, nil
	}
	svc := NewUserService(userRepo, noopPostRepo())

	_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
		UserID:   1,
		Username: strPtr("bob"),
		Partial:  true,
	})
	assertValidationError(t, err)
	fields := fieldErrors(t, err)
	assert.Equal(t, []string{validation.ErrUsernameTaken}, fields["username"])
}

func TestUserService_GetUserPosts_UnknownUser(t *testing.T) {
	t.Parallel()

	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", id)
	}
	svc := NewUserService(userRepo, noopPostRepo())

	_, err := svc.GetUserPosts(context.Background(), 99, 20, 0)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
