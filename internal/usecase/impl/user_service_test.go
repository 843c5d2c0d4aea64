package impl

import (
	"context"
	"strings"
	"testing"

	"tube/internal/domain/entity"
	domainerrors "tube/internal/domain/errors"
	"tube/internal/domain/repository"
	"tube/internal/domain/service"
	mockRepo "tube/internal/mocks/repository"
	mockSvc "tube/internal/mocks/service"
	"tube/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	mediaStorage *mockSvc.MockMediaStorage
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	mediaStorage := mockSvc.NewMockMediaStorage(t)

	return userServiceFixtures{
		service: NewUserService(UserServiceParams{
			UserRepo:     userRepo,
			Hasher:       hasher,
			MediaStorage: mediaStorage,
			Config:       newTestConfig(),
			Logger:       newDiscardLogger(),
		}),
		userRepo:     userRepo,
		hasher:       hasher,
		mediaStorage: mediaStorage,
	}
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		FullName: " Alice Liddell ",
		Username: "Alice",
		Email:    "Alice@Example.com",
		Password: "Password123!",
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	avatar, cover := newTestFile("me.png"), newTestFile("banner.png")

	fx.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "alice", "alice@example.com").Return(nil, repository.ErrUserNotFound)
	fx.mediaStorage.EXPECT().Upload(ctx, "avatars", avatar).Return("https://cdn/avatars/1.png", nil)
	fx.mediaStorage.EXPECT().Upload(ctx, "covers", cover).Return("https://cdn/covers/2.png", nil)
	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "alice", user.Username)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.Equal(t, "Alice Liddell", user.FullName)
			assert.Equal(t, "hashed_password", user.PasswordHash)
			assert.Empty(t, user.RefreshToken)
			user.ID = "65f1a2b3c4d5e6f708192a3b"
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, validRegisterInput(), avatar, cover)

	require.NoError(t, err)
	assert.Equal(t, "65f1a2b3c4d5e6f708192a3b", output.ID)
	assert.Equal(t, "https://cdn/avatars/1.png", output.Avatar)
	assert.Equal(t, "https://cdn/covers/2.png", output.CoverImage)
	assert.NotNil(t, output.WatchHistory)
}

func TestUserService_Register_CoverUploadFailureIsTolerated(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	avatar, cover := newTestFile("me.png"), newTestFile("banner.png")

	fx.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "alice", "alice@example.com").Return(nil, repository.ErrUserNotFound)
	fx.mediaStorage.EXPECT().Upload(ctx, "avatars", avatar).Return("https://cdn/avatars/1.png", nil)
	fx.mediaStorage.EXPECT().Upload(ctx, "covers", cover).Return("", errors.New("bucket unavailable"))
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed_password", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	output, err := fx.service.Register(ctx, validRegisterInput(), avatar, cover)

	require.NoError(t, err)
	assert.Empty(t, output.CoverImage)
}

func TestUserService_Register_Errors(t *testing.T) {
	avatar := newTestFile("me.png")

	tests := []struct {
		name    string
		input   *usecase.RegisterInput
		avatar  bool
		setup   func(fx userServiceFixtures)
		wantErr error
	}{
		{
			name:    "whitespace-only field",
			input:   &usecase.RegisterInput{FullName: "   ", Username: "alice", Email: "a@b.c", Password: "x"},
			avatar:  true,
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:   "username taken in another case",
			input:  &usecase.RegisterInput{FullName: "A", Username: "ALICE", Email: "new@example.com", Password: "x"},
			avatar: true,
			setup: func(fx userServiceFixtures) {
				fx.userRepo.EXPECT().FindByUsernameOrEmail(mock.Anything, "alice", "new@example.com").Return(newTestUser(), nil)
			},
			wantErr: domainerrors.ErrUserAlreadyExists,
		},
		{
			name:  "missing avatar",
			input: validRegisterInput(),
			setup: func(fx userServiceFixtures) {
				fx.userRepo.EXPECT().FindByUsernameOrEmail(mock.Anything, "alice", "alice@example.com").Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrAvatarRequired,
		},
		{
			name:   "avatar upload fails",
			input:  validRegisterInput(),
			avatar: true,
			setup: func(fx userServiceFixtures) {
				fx.userRepo.EXPECT().FindByUsernameOrEmail(mock.Anything, "alice", "alice@example.com").Return(nil, repository.ErrUserNotFound)
				fx.mediaStorage.EXPECT().Upload(mock.Anything, "avatars", avatar).Return("", errors.New("bucket unavailable"))
			},
			wantErr: domainerrors.ErrAvatarUploadFailed,
		},
		{
			name:   "insert race on unique index",
			input:  validRegisterInput(),
			avatar: true,
			setup: func(fx userServiceFixtures) {
				fx.userRepo.EXPECT().FindByUsernameOrEmail(mock.Anything, "alice", "alice@example.com").Return(nil, repository.ErrUserNotFound)
				fx.mediaStorage.EXPECT().Upload(mock.Anything, "avatars", avatar).Return("url", nil)
				fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed_password", nil)
				fx.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domainerrors.ErrUserAlreadyExists.WrapMessage("duplicate key"))
			},
			wantErr: domainerrors.ErrUserAlreadyExists,
		},
		{
			name:   "hash failure",
			input:  validRegisterInput(),
			avatar: true,
			setup: func(fx userServiceFixtures) {
				fx.userRepo.EXPECT().FindByUsernameOrEmail(mock.Anything, "alice", "alice@example.com").Return(nil, repository.ErrUserNotFound)
				fx.hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("hash unavailable"))
			},
			wantErr: domainerrors.ErrPasswordHashFailed,
		},
		{
			name:    "multibyte password over the bcrypt limit",
			input:   &usecase.RegisterInput{FullName: "A", Username: "alice", Email: "a@b.c", Password: strings.Repeat("é", 72)},
			avatar:  true,
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			var file = avatar
			if !tt.avatar {
				file = nil
			}

			output, err := fx.service.Register(context.Background(), tt.input, file, nil)

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestUserService_ChangePassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		user := newTestUser()

		fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Check("old", "hashed_password").Return(true)
		fx.hasher.EXPECT().Hash("new").Return("new_hash", nil)
		fx.userRepo.EXPECT().
			Update(mock.Anything, user.ID, mock.AnythingOfType("*entity.UserUpdate")).
			Run(func(_ context.Context, _ string, update *entity.UserUpdate) {
				require.NotNil(t, update.PasswordHash)
				assert.Equal(t, "new_hash", *update.PasswordHash)
				assert.Nil(t, update.Email)
			}).
			Return(user, nil)

		output, err := fx.service.ChangePassword(context.Background(), user.ID, &usecase.ChangePasswordInput{OldPassword: "old", NewPassword: "new"})

		require.NoError(t, err)
		assert.Equal(t, user.ID, output.ID)
	})

	t.Run("wrong old password", func(t *testing.T) {
		fx := createTestUserService(t)
		user := newTestUser()

		fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Check("bad", "hashed_password").Return(false)

		_, err := fx.service.ChangePassword(context.Background(), user.ID, &usecase.ChangePasswordInput{OldPassword: "bad", NewPassword: "new"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidOldPassword))
	})

	t.Run("missing fields", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.ChangePassword(context.Background(), "id", &usecase.ChangePasswordInput{OldPassword: "old"})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("new password over the bcrypt limit", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.ChangePassword(context.Background(), "id", &usecase.ChangePasswordInput{OldPassword: "old", NewPassword: strings.Repeat("密", 25)})

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		assert.Equal(t, "password must be at most 72 bytes", appErr.Details())
	})

	t.Run("user gone", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(mock.Anything, "id").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.ChangePassword(context.Background(), "id", &usecase.ChangePasswordInput{OldPassword: "old", NewPassword: "new"})

		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}

func TestUserService_UpdateAccount(t *testing.T) {
	t.Run("lowercases email and returns the updated user", func(t *testing.T) {
		fx := createTestUserService(t)
		user := newTestUser()
		updated := newTestUser()
		updated.FullName = "Alice L."
		updated.Email = "new@example.com"

		fx.userRepo.EXPECT().FindByUsernameOrEmail(mock.Anything, "", "new@example.com").Return(nil, repository.ErrUserNotFound)
		fx.userRepo.EXPECT().
			Update(mock.Anything, user.ID, mock.AnythingOfType("*entity.UserUpdate")).
			Run(func(_ context.Context, _ string, update *entity.UserUpdate) {
				assert.Equal(t, "Alice L.", *update.FullName)
				assert.Equal(t, "new@example.com", *update.Email)
			}).
			Return(updated, nil)

		output, err := fx.service.UpdateAccount(context.Background(), user.ID, &usecase.UpdateAccountInput{FullName: "Alice L.", Email: " NEW@example.com "})

		require.NoError(t, err)
		assert.Equal(t, "new@example.com", output.Email)
		assert.Equal(t, "Alice L.", output.FullName)
	})

	t.Run("keeping own email is allowed", func(t *testing.T) {
		fx := createTestUserService(t)
		user := newTestUser()

		fx.userRepo.EXPECT().FindByUsernameOrEmail(mock.Anything, "", user.Email).Return(user, nil)
		fx.userRepo.EXPECT().Update(mock.Anything, user.ID, mock.Anything).Return(user, nil)

		_, err := fx.service.UpdateAccount(context.Background(), user.ID, &usecase.UpdateAccountInput{FullName: "Alice", Email: user.Email})

		assert.NoError(t, err)
	})

	t.Run("email owned by another user", func(t *testing.T) {
		fx := createTestUserService(t)
		other := newTestUser()
		other.ID = "65f1a2b3c4d5e6f708192a3c"

		fx.userRepo.EXPECT().FindByUsernameOrEmail(mock.Anything, "", other.Email).Return(other, nil)

		_, err := fx.service.UpdateAccount(context.Background(), "65f1a2b3c4d5e6f708192a3b", &usecase.UpdateAccountInput{FullName: "Alice", Email: other.Email})

		assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
	})

	t.Run("missing fields", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.UpdateAccount(context.Background(), "id", &usecase.UpdateAccountInput{FullName: "Alice"})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestUserService_UpdateMedia(t *testing.T) {
	t.Run("avatar", func(t *testing.T) {
		fx := createTestUserService(t)
		user := newTestUser()
		file := newTestFile("new.png")

		fx.mediaStorage.EXPECT().Upload(mock.Anything, "avatars", file).Return("https://cdn/avatars/new.png", nil)
		fx.userRepo.EXPECT().
			Update(mock.Anything, user.ID, mock.AnythingOfType("*entity.UserUpdate")).
			RunAndReturn(func(_ context.Context, _ string, update *entity.UserUpdate) (*entity.User, error) {
				user.Avatar = *update.Avatar

				return user, nil
			})

		output, err := fx.service.UpdateAvatar(context.Background(), user.ID, file)

		require.NoError(t, err)
		assert.Equal(t, "https://cdn/avatars/new.png", output.Avatar)
	})

	t.Run("cover image", func(t *testing.T) {
		fx := createTestUserService(t)
		user := newTestUser()
		file := newTestFile("new.png")

		fx.mediaStorage.EXPECT().Upload(mock.Anything, "covers", file).Return("https://cdn/covers/new.png", nil)
		fx.userRepo.EXPECT().
			Update(mock.Anything, user.ID, mock.AnythingOfType("*entity.UserUpdate")).
			RunAndReturn(func(_ context.Context, _ string, update *entity.UserUpdate) (*entity.User, error) {
				user.CoverImage = *update.CoverImage

				return user, nil
			})

		output, err := fx.service.UpdateCoverImage(context.Background(), user.ID, file)

		require.NoError(t, err)
		assert.Equal(t, "https://cdn/covers/new.png", output.CoverImage)
	})

	t.Run("missing files", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.UpdateAvatar(context.Background(), "id", nil)
		assert.True(t, errors.Is(err, domainerrors.ErrAvatarRequired))

		_, err = fx.service.UpdateCoverImage(context.Background(), "id", nil)
		assert.True(t, errors.Is(err, domainerrors.ErrCoverImageRequired))
	})

	t.Run("upload failures", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.mediaStorage.EXPECT().Upload(mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("down"))

		_, err := fx.service.UpdateAvatar(context.Background(), "id", newTestFile("a.png"))
		assert.True(t, errors.Is(err, domainerrors.ErrAvatarUploadFailed))

		_, err = fx.service.UpdateCoverImage(context.Background(), "id", newTestFile("c.png"))
		assert.True(t, errors.Is(err, domainerrors.ErrCoverImageUploadFailed))
	})

	t.Run("oversized file reports the limit", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.mediaStorage.EXPECT().Upload(mock.Anything, "avatars", mock.Anything).
			Return("", errors.Wrap(service.ErrMediaTooLarge, "6291456 bytes"))

		_, err := fx.service.UpdateAvatar(context.Background(), "id", newTestFile("big.png"))

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.True(t, errors.Is(err, domainerrors.ErrAvatarUploadFailed))
		assert.Equal(t, "file exceeds 5.0 MB", appErr.Details())
	})
}
