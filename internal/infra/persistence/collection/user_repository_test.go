package collection

import (
	"context"
	"testing"
	"time"

	"zoning/internal/domain/entity"
	"zoning/internal/domain/repository"
	"zoning/internal/infra/persistence/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo() repository.UserRepository {
	return NewUserRepository(UserRepositoryParams{
		Store:  memory.NewStore(),
		Config: testConfig(),
	})
}

func TestUserRepository_FindByUsernameIsCaseInsensitive(t *testing.T) {
	repo := newTestUserRepo()
	ctx := context.Background()

	officer := &entity.User{
		ID:         uuid.New(),
		Username:   "Planning-Officer",
		Credential: "secret",
		CreatedAt:  time.Now(),
	}
	require.NoError(t, repo.Create(ctx, officer))

	found, err := repo.FindByUsername(ctx, "planning-officer")

	require.NoError(t, err)
	assert.Equal(t, officer.ID, found.ID)
	assert.Equal(t, "Planning-Officer", found.Username)
}

func TestUserRepository_FindMissingUser(t *testing.T) {
	repo := newTestUserRepo()

	_, err := repo.FindByUsername(context.Background(), "nobody")

	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_CreateAppends(t *testing.T) {
	repo := newTestUserRepo()
	ctx := context.Background()

	first := &entity.User{ID: uuid.New(), Username: "first", Credential: "a", CreatedAt: time.Now()}
	second := &entity.User{ID: uuid.New(), Username: "second", Credential: "b", CreatedAt: time.Now()}

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	foundFirst, err := repo.FindByUsername(ctx, "first")
	require.NoError(t, err)
	assert.Equal(t, first.ID, foundFirst.ID)

	foundSecond, err := repo.FindByUsername(ctx, "second")
	require.NoError(t, err)
	assert.Equal(t, second.ID, foundSecond.ID)
}
