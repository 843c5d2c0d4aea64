package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"tube/config"
	deliverycontext "tube/internal/delivery/context"
	"tube/internal/domain/entity"
	domainerrors "tube/internal/domain/errors"
	"tube/internal/domain/repository"
	"tube/internal/domain/service"
	"tube/internal/usecase"
	"tube/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultAvatarFolder = "avatars"
	defaultCoverFolder  = "covers"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	mediaStorage service.MediaStorage
	avatarFolder string
	coverFolder  string
	maxMediaSize int64
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	MediaStorage service.MediaStorage
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	avatarFolder, coverFolder := defaultAvatarFolder, defaultCoverFolder
	var maxMediaSize int64
	if params.Config != nil {
		maxMediaSize = params.Config.Media.MaxUploadSize
		if params.Config.Media.AvatarFolder != "" {
			avatarFolder = params.Config.Media.AvatarFolder
		}
		if params.Config.Media.CoverFolder != "" {
			coverFolder = params.Config.Media.CoverFolder
		}
	}

	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		mediaStorage: params.MediaStorage,
		avatarFolder: avatarFolder,
		coverFolder:  coverFolder,
		maxMediaSize: maxMediaSize,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput, avatar, cover *service.MediaFile) (*usecase.UserOutput, error) {
	fullName := strings.TrimSpace(input.FullName)
	username := strings.ToLower(strings.TrimSpace(input.Username))
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if fullName == "" || username == "" || email == "" || strings.TrimSpace(input.Password) == "" {
		return nil, domainerrors.ErrValidationFailed
	}
	if err := checkPasswordLength(input.Password); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", username), slog.String("email", email))

	_, err := srv.userRepo.FindByUsernameOrEmail(ctx, username, email)
	switch {
	case err == nil:
		return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration")
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	if avatar == nil {
		return nil, domainerrors.ErrAvatarRequired
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	avatarURL, err := srv.mediaStorage.Upload(ctx, srv.avatarFolder, avatar)
	if err != nil {
		srv.log(ctx).Error("Failed to upload avatar", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(srv.uploadError(domainerrors.ErrAvatarUploadFailed, err), "registration")
	}

	var coverURL string
	if cover != nil {
		coverURL, err = srv.mediaStorage.Upload(ctx, srv.coverFolder, cover)
		if err != nil {
			// The cover image is optional, so the account is created without it.
			srv.log(ctx).Warn("Failed to upload cover image", slog.String("username", username), slog.Any("error", err))
			coverURL = ""
		}
	}

	newUser := &entity.User{
		Username:     username,
		Email:        email,
		FullName:     fullName,
		Avatar:       avatarURL,
		CoverImage:   coverURL,
		PasswordHash: hashedPassword,
		WatchHistory: []string{},
	}
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("userID", newUser.ID))

	return usecase.NewUserOutput(newUser), nil
}

// ChangePassword replaces the password after verifying the current one.
func (srv *userService) ChangePassword(ctx context.Context, userID string, input *usecase.ChangePasswordInput) (*usecase.UserOutput, error) {
	if strings.TrimSpace(input.OldPassword) == "" || strings.TrimSpace(input.NewPassword) == "" {
		return nil, domainerrors.ErrValidationFailed
	}
	if err := checkPasswordLength(input.NewPassword); err != nil {
		return nil, err
	}

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Old password mismatch", slog.String("userID", userID))

		return nil, domainerrors.ErrInvalidOldPassword
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	updated, err := srv.update(ctx, userID, &entity.UserUpdate{PasswordHash: &hashedPassword})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Password changed", slog.String("userID", userID))

	return usecase.NewUserOutput(updated), nil
}

// UpdateAccount overwrites the full name and email of the user.
func (srv *userService) UpdateAccount(ctx context.Context, userID string, input *usecase.UpdateAccountInput) (*usecase.UserOutput, error) {
	fullName := strings.TrimSpace(input.FullName)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if fullName == "" || email == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	owner, err := srv.userRepo.FindByUsernameOrEmail(ctx, "", email)
	switch {
	case err == nil && owner.ID != userID:
		return nil, errors.Wrap(domainerrors.ErrEmailTaken, "update account")
	case err != nil && !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to check email owner")
	}

	updated, err := srv.update(ctx, userID, &entity.UserUpdate{FullName: &fullName, Email: &email})
	if err != nil {
		return nil, err
	}

	return usecase.NewUserOutput(updated), nil
}

// UpdateAvatar uploads a new avatar and points the user at it.
func (srv *userService) UpdateAvatar(ctx context.Context, userID string, avatar *service.MediaFile) (*usecase.UserOutput, error) {
	if avatar == nil {
		return nil, domainerrors.ErrAvatarRequired
	}

	url, err := srv.mediaStorage.Upload(ctx, srv.avatarFolder, avatar)
	if err != nil {
		srv.log(ctx).Error("Failed to upload avatar", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(srv.uploadError(domainerrors.ErrAvatarUploadFailed, err), "update avatar")
	}

	updated, err := srv.update(ctx, userID, &entity.UserUpdate{Avatar: &url})
	if err != nil {
		return nil, err
	}

	return usecase.NewUserOutput(updated), nil
}

// UpdateCoverImage uploads a new cover image and points the user at it.
func (srv *userService) UpdateCoverImage(ctx context.Context, userID string, cover *service.MediaFile) (*usecase.UserOutput, error) {
	if cover == nil {
		return nil, domainerrors.ErrCoverImageRequired
	}

	url, err := srv.mediaStorage.Upload(ctx, srv.coverFolder, cover)
	if err != nil {
		srv.log(ctx).Error("Failed to upload cover image", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(srv.uploadError(domainerrors.ErrCoverImageUploadFailed, err), "update cover image")
	}

	updated, err := srv.update(ctx, userID, &entity.UserUpdate{CoverImage: &url})
	if err != nil {
		return nil, err
	}

	return usecase.NewUserOutput(updated), nil
}

// uploadError tells the client the size limit when that is why the upload failed.
func (srv *userService) uploadError(base *domainerrors.BaseError, err error) error {
	if errors.Is(err, service.ErrMediaTooLarge) && srv.maxMediaSize > 0 {
		return base.WithDetails("file exceeds " + util.FormatBytes(srv.maxMediaSize))
	}

	return base
}

// checkPasswordLength rejects passwords the hasher would refuse, so a long
// multibyte password is a client error rather than a hashing failure.
func checkPasswordLength(password string) error {
	if len(password) > service.MaxPasswordBytes {
		return domainerrors.ErrValidationFailed.WithDetails("password must be at most " + strconv.Itoa(service.MaxPasswordBytes) + " bytes")
	}

	return nil
}

func (srv *userService) findUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, userID)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *userService) update(ctx context.Context, userID string, update *entity.UserUpdate) (*entity.User, error) {
	updated, err := srv.userRepo.Update(ctx, userID, update)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, userID)
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	return updated, nil
}
