package impl

import (
	"context"
	"log/slog"
	"time"

	"zoning/internal/domain/entity"
	domainerrors "zoning/internal/domain/errors"
	"zoning/internal/domain/repository"
	"zoning/internal/domain/service"
	"zoning/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Register creates a new officer account. Usernames are unique
// case-insensitively; the credential is stored as given.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Registering officer account", slog.String("username", input.Username))

	_, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err == nil {
		return nil, domainerrors.ErrUsernameTaken.WrapMessage("username already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check username uniqueness")
	}

	newUser := &entity.User{
		ID:         uuid.New(),
		Username:   input.Username,
		Credential: input.Credential,
		CreatedAt:  time.Now(),
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.logger.Debug("Officer account registered", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login authenticates an officer and issues an access token. A missing user
// and a wrong credential both surface as ErrInvalidCredentials so the login
// form cannot be used to enumerate usernames.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Officer login attempt", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if user.Credential != input.Credential {
		srv.logger.Warn("Login failed", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	accessToken, err := srv.tokenService.GenerateToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.logger.Info("Officer logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		User:        user,
	}, nil
}
