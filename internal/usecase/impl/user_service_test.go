package impl

import (
	"context"
	"testing"

	domainerrors "zoning/internal/domain/errors"
	"zoning/internal/domain/repository"
	"zoning/internal/domain/service"
	"zoning/internal/infra/persistence/collection"
	"zoning/internal/infra/persistence/memory"
	"zoning/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTokenService issues a fixed token so login tests do not depend on a
// real signing key.
type stubTokenService struct {
	token string
	err   error
}

func (s *stubTokenService) GenerateToken(uuid.UUID) (string, error) {
	return s.token, s.err
}

func (s *stubTokenService) ValidateToken(string) (*service.Claims, error) {
	return nil, errors.New("not implemented")
}

type userFixtures struct {
	service usecase.UserUsecase
	repo    repository.UserRepository
}

func createTestUserService(t *testing.T) userFixtures {
	t.Helper()

	repo := collection.NewUserRepository(collection.UserRepositoryParams{
		Store:  memory.NewStore(),
		Config: testConfig(),
	})

	svc := NewUserService(UserServiceParams{
		UserRepo:     repo,
		TokenService: &stubTokenService{token: "access-token"},
		Logger:       testLogger(),
	})

	return userFixtures{service: svc, repo: repo}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username:   "planning-officer",
		Credential: "secret",
	})

	require.NoError(t, err)
	require.NotNil(t, output.User)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
	assert.Equal(t, "planning-officer", output.User.Username)
}

func TestUserService_Register_DuplicateUsernameIsCaseInsensitive(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "Officer", Credential: "a"})
	require.NoError(t, err)

	_, err = fx.service.Register(ctx, &usecase.RegisterInput{Username: "officer", Credential: "b"})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "USERNAME_TAKEN", appErr.ErrorCode())
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "officer", Credential: "secret"})
	require.NoError(t, err)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "Officer", Credential: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "officer", output.User.Username)
}

func TestUserService_Login_CredentialIsCompareVerbatim(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "officer", Credential: "Secret"})
	require.NoError(t, err)

	_, err = fx.service.Login(ctx, &usecase.LoginInput{Username: "officer", Credential: "secret"})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
}

func TestUserService_Login_FailuresAreIndistinguishable(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "officer", Credential: "secret"})
	require.NoError(t, err)

	_, wrongPassword := fx.service.Login(ctx, &usecase.LoginInput{Username: "officer", Credential: "nope"})
	_, missingUser := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Credential: "nope"})

	var wrongErr, missingErr domainerrors.AppError
	require.True(t, errors.As(wrongPassword, &wrongErr))
	require.True(t, errors.As(missingUser, &missingErr))
	assert.Equal(t, wrongErr.ErrorCode(), missingErr.ErrorCode())
	assert.Equal(t, wrongErr.Message(), missingErr.Message())
}
