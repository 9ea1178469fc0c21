package collection

import (
	"context"
	"strings"
	"sync"

	"zoning/config"
	"zoning/internal/domain/entity"
	domainerrors "zoning/internal/domain/errors"
	"zoning/internal/domain/repository"

	"go.uber.org/fx"
)

// userRepository implements repository.UserRepository over a CollectionStore.
type userRepository struct {
	mu    sync.Mutex
	store repository.CollectionStore
	key   string
}

// UserRepositoryParams holds dependencies for the repository, injected by Fx.
type UserRepositoryParams struct {
	fx.In

	Store  repository.CollectionStore
	Config *config.Config
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(params UserRepositoryParams) repository.UserRepository {
	return &userRepository{
		store: params.Store,
		key:   params.Config.Store.UsersKey,
	}
}

// FindByUsername retrieves a single user by case-insensitive username match.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var all []*entity.User
	if err := repo.store.Load(ctx, repo.key, &all); err != nil {
		return nil, domainerrors.NewStoreError(err, "load user collection")
	}

	for _, user := range all {
		if strings.EqualFold(user.Username, username) {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// Create persists a new user entity to the storage.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	var all []*entity.User
	if err := repo.store.Load(ctx, repo.key, &all); err != nil {
		return domainerrors.NewStoreError(err, "load user collection")
	}

	if err := repo.store.Save(ctx, repo.key, append(all, user)); err != nil {
		return domainerrors.NewStoreError(err, "save user collection")
	}

	return nil
}
