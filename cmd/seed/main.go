// Command seed loads the sample dataset used for local demos. It registers a
// default officer account and two applicant dossiers owned by it, skipping
// anything already present.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"zoning/config"
	"zoning/internal/domain/entity"
	"zoning/internal/domain/repository"
	logs "zoning/internal/infra/log"
	"zoning/internal/infra/persistence/collection"
	"zoning/internal/infra/persistence/sqlite"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	seedUsername   = "planning-officer"
	seedCredential = "changeme"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("Seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return errors.WithStack(err)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.WithStack(err)
	}

	store, err := sqlite.NewStore(cfg)
	if err != nil {
		return errors.WithStack(err)
	}

	userRepo := collection.NewUserRepository(collection.UserRepositoryParams{Store: store, Config: cfg})
	applicantRepo := collection.NewApplicantRepository(collection.ApplicantRepositoryParams{Store: store, Config: cfg})

	owner, err := seedOfficer(ctx, userRepo)
	if err != nil {
		return err
	}

	seeded, err := seedApplicants(ctx, applicantRepo, owner.ID)
	if err != nil {
		return err
	}

	logger.Info("Seed complete",
		slog.String("username", owner.Username),
		slog.Int("applicantsAdded", seeded),
	)

	return nil
}

func seedOfficer(ctx context.Context, repo repository.UserRepository) (*entity.User, error) {
	existing, err := repo.FindByUsername(ctx, seedUsername)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to probe seed officer")
	}

	officer := &entity.User{
		ID:         uuid.New(),
		Username:   seedUsername,
		Credential: seedCredential,
		CreatedAt:  time.Now(),
	}
	if err := repo.Create(ctx, officer); err != nil {
		return nil, errors.Wrap(err, "failed to create seed officer")
	}

	return officer, nil
}

func seedApplicants(ctx context.Context, repo repository.ApplicantRepository, ownerID uuid.UUID) (int, error) {
	all, err := repo.ListAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load applicants")
	}

	present := make(map[string]bool, len(all))
	for _, a := range all {
		present[a.Name] = true
	}

	now := time.Now()
	samples := []*entity.Applicant{
		{
			ID:           uuid.New(),
			OwnerID:      ownerID,
			Name:         "Juan Dela Cruz",
			Sex:          entity.SexMale,
			Address:      "Purok 4, Barangay New Pandan",
			Zone:         entity.ZoneResidential,
			ZoneLocation: "New Pandan",
			Area:         250,
			Status:       entity.StatusPending,
			RegisteredAt: now,
		},
		{
			ID:           uuid.New(),
			OwnerID:      ownerID,
			Name:         "Maria Clara",
			Sex:          entity.SexFemale,
			Address:      "Quezon Street, Barangay Central",
			Zone:         entity.ZoneCommercial,
			ZoneLocation: "Central",
			Area:         1200,
			Status:       entity.StatusTechnicalReview,
			RegisteredAt: now,
		},
	}

	fresh := make([]*entity.Applicant, 0, len(samples))
	for _, a := range samples {
		if !present[a.Name] {
			fresh = append(fresh, a)
		}
	}
	if len(fresh) == 0 {
		return 0, nil
	}

	if err := repo.AppendAll(ctx, fresh); err != nil {
		return 0, errors.Wrap(err, "failed to append seed applicants")
	}

	return len(fresh), nil
}
