package collection

import (
	"context"
	"testing"
	"time"

	"zoning/internal/domain/entity"
	domainerrors "zoning/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenStore fails every operation, standing in for an unavailable backing
// database.
type brokenStore struct{}

func (brokenStore) Load(context.Context, string, any) error {
	return errors.New("disk on fire")
}

func (brokenStore) Save(context.Context, string, any) error {
	return errors.New("disk on fire")
}

func assertStoreFailure(t *testing.T, err error) {
	t.Helper()

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "STORE_FAILURE", appErr.ErrorCode())
}

func TestApplicantRepository_StoreFailureSurfacesAsStoreError(t *testing.T) {
	repo := NewApplicantRepository(ApplicantRepositoryParams{
		Store:  brokenStore{},
		Config: testConfig(),
	})
	ctx := context.Background()

	_, err := repo.ListAll(ctx)
	assertStoreFailure(t, err)

	assertStoreFailure(t, repo.AppendAll(ctx, []*entity.Applicant{sampleApplicant("Juan")}))
	assertStoreFailure(t, repo.ReplaceAll(ctx, nil))
	assertStoreFailure(t, repo.Delete(ctx, uuid.New()))

	_, err = repo.FindByID(ctx, uuid.New())
	assertStoreFailure(t, err)
}

func TestUserRepository_StoreFailureSurfacesAsStoreError(t *testing.T) {
	repo := NewUserRepository(UserRepositoryParams{
		Store:  brokenStore{},
		Config: testConfig(),
	})
	ctx := context.Background()

	_, err := repo.FindByUsername(ctx, "officer")
	assertStoreFailure(t, err)

	assertStoreFailure(t, repo.Create(ctx, &entity.User{
		ID:        uuid.New(),
		Username:  "officer",
		CreatedAt: time.Now(),
	}))
}
