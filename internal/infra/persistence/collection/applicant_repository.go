// Package collection contains the concrete repositories built on the
// CollectionStore. Every write is a read-modify-write of the whole
// serialized collection under a repository-level mutex, which is what makes
// batch appends all-or-nothing and matches the single-officer usage model.
package collection

import (
	"context"
	"sync"

	"zoning/config"
	"zoning/internal/domain/entity"
	domainerrors "zoning/internal/domain/errors"
	"zoning/internal/domain/repository"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// applicantRepository implements repository.ApplicantRepository over a
// CollectionStore.
type applicantRepository struct {
	mu    sync.Mutex
	store repository.CollectionStore
	key   string
}

// ApplicantRepositoryParams holds dependencies for the repository, injected by Fx.
type ApplicantRepositoryParams struct {
	fx.In

	Store  repository.CollectionStore
	Config *config.Config
}

// NewApplicantRepository is the constructor for applicantRepository.
func NewApplicantRepository(params ApplicantRepositoryParams) repository.ApplicantRepository {
	return &applicantRepository{
		store: params.Store,
		key:   params.Config.Store.ApplicantsKey,
	}
}

// ListAll retrieves the full dossier collection in insertion order.
func (repo *applicantRepository) ListAll(ctx context.Context) ([]*entity.Applicant, error) {
	return repo.load(ctx)
}

// ReplaceAll rewrites the full collection.
func (repo *applicantRepository) ReplaceAll(ctx context.Context, applicants []*entity.Applicant) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	return repo.save(ctx, applicants)
}

// AppendAll appends the given dossiers in a single read-modify-write, so a
// failing save never leaves a partially written batch behind.
func (repo *applicantRepository) AppendAll(ctx context.Context, applicants []*entity.Applicant) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	all, err := repo.load(ctx)
	if err != nil {
		return err
	}

	return repo.save(ctx, append(all, applicants...))
}

// FindByID retrieves a single dossier by its unique ID.
func (repo *applicantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Applicant, error) {
	all, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, applicant := range all {
		if applicant.ID == id {
			return applicant, nil
		}
	}

	return nil, repository.ErrApplicantNotFound
}

// Update replaces the stored dossier with the same ID.
func (repo *applicantRepository) Update(ctx context.Context, applicant *entity.Applicant) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	all, err := repo.load(ctx)
	if err != nil {
		return err
	}

	for i, existing := range all {
		if existing.ID == applicant.ID {
			all[i] = applicant

			return repo.save(ctx, all)
		}
	}

	return repository.ErrApplicantNotFound
}

// Delete removes a dossier permanently.
func (repo *applicantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	all, err := repo.load(ctx)
	if err != nil {
		return err
	}

	kept := make([]*entity.Applicant, 0, len(all))
	found := false
	for _, applicant := range all {
		if applicant.ID == id {
			found = true

			continue
		}
		kept = append(kept, applicant)
	}

	if !found {
		return repository.ErrApplicantNotFound
	}

	return repo.save(ctx, kept)
}

func (repo *applicantRepository) load(ctx context.Context) ([]*entity.Applicant, error) {
	var all []*entity.Applicant
	if err := repo.store.Load(ctx, repo.key, &all); err != nil {
		return nil, domainerrors.NewStoreError(err, "load applicant collection")
	}

	return all, nil
}

func (repo *applicantRepository) save(ctx context.Context, all []*entity.Applicant) error {
	if err := repo.store.Save(ctx, repo.key, all); err != nil {
		return domainerrors.NewStoreError(err, "save applicant collection")
	}

	return nil
}
