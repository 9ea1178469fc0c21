// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"zoning/config"
	"zoning/internal/domain/entity"
	domainerrors "zoning/internal/domain/errors"
	"zoning/internal/domain/expiry"
	"zoning/internal/domain/intake"
	"zoning/internal/domain/repository"
	"zoning/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// applicantService implements the ApplicantUsecase interface.
type applicantService struct {
	repo       repository.ApplicantRepository
	expiryDays int
	now        func() time.Time
	logger     *slog.Logger
}

// ApplicantServiceParams holds dependencies for ApplicantService, injected by Fx.
type ApplicantServiceParams struct {
	fx.In

	Repo   repository.ApplicantRepository
	Config *config.Config
	Logger *slog.Logger
}

// NewApplicantService is the constructor for applicantService.
func NewApplicantService(params ApplicantServiceParams) usecase.ApplicantUsecase {
	days := expiry.DefaultDays
	if params.Config != nil && params.Config.Expiry != nil && params.Config.Expiry.Days > 0 {
		days = params.Config.Expiry.Days
	}

	return &applicantService{
		repo:       params.Repo,
		expiryDays: days,
		now:        time.Now,
		logger:     params.Logger,
	}
}

// ListForOwner loads the full collection, applies the expiry sweep at the
// current time, persists any transitions, and returns the owner's subset in
// insertion order. Expiry is evaluated lazily here, never by a background
// scheduler.
func (srv *applicantService) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Applicant, error) {
	all, err := srv.repo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list applicants")
	}

	swept, changed := expiry.Sweep(all, srv.now(), srv.expiryDays)
	if changed {
		// Persist before returning so the transition is durable rather
		// than recomputed on every read.
		if err := srv.repo.ReplaceAll(ctx, swept); err != nil {
			return nil, errors.Wrap(err, "failed to persist expiry sweep")
		}
		srv.logger.Info("Expiry sweep transitioned dossiers", slog.Any("ownerID", ownerID))
	}

	owned := make([]*entity.Applicant, 0, len(swept))
	for _, applicant := range swept {
		if applicant.OwnerID == ownerID {
			owned = append(owned, applicant)
		}
	}

	return owned, nil
}

// Create registers a single dossier: fresh ID, Pending status, registration
// timestamp now. Area positivity is enforced upstream by the request
// validator.
func (srv *applicantService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateApplicantInput) (*entity.Applicant, error) {
	applicant := srv.newApplicant(ownerID, intake.Candidate{
		Name:         input.Name,
		Sex:          input.Sex,
		Address:      input.Address,
		Zone:         input.Zone,
		ZoneLocation: input.ZoneLocation,
		Area:         input.Area,
	})

	if err := srv.repo.AppendAll(ctx, []*entity.Applicant{applicant}); err != nil {
		return nil, errors.Wrap(err, "failed to create applicant")
	}

	srv.logger.Debug("Registered dossier", slog.Any("applicantID", applicant.ID), slog.Any("ownerID", ownerID))

	return applicant, nil
}

// CreateBulk applies the same per-item defaulting as Create to every
// candidate and appends the batch in a single read-modify-write.
func (srv *applicantService) CreateBulk(ctx context.Context, ownerID uuid.UUID, candidates []intake.Candidate) error {
	applicants := make([]*entity.Applicant, 0, len(candidates))
	for _, candidate := range candidates {
		applicants = append(applicants, srv.newApplicant(ownerID, candidate))
	}

	if err := srv.repo.AppendAll(ctx, applicants); err != nil {
		return errors.Wrap(err, "failed to append applicant batch")
	}

	srv.logger.Info("Registered dossier batch", slog.Int("count", len(applicants)), slog.Any("ownerID", ownerID))

	return nil
}

// UpdateStatus replaces the status only. Expired is terminal: the expiry
// engine never reverses it and neither does a manual edit.
func (srv *applicantService) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ApprovalStatus) error {
	applicant, err := srv.find(ctx, id)
	if err != nil {
		return err
	}

	if applicant.Status == entity.StatusExpired && status != entity.StatusExpired {
		return domainerrors.ErrStatusTerminal.WrapMessage("dossier has expired")
	}

	updated := *applicant
	updated.Status = status

	return srv.update(ctx, &updated)
}

// UpdateAdministrative merges only the provided administrative fields;
// absent pointers keep the stored values.
func (srv *applicantService) UpdateAdministrative(ctx context.Context, id uuid.UUID, input *usecase.UpdateAdministrativeInput) error {
	if input.PaymentAmount != nil && *input.PaymentAmount < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("payment amount must be non-negative")
	}

	applicant, err := srv.find(ctx, id)
	if err != nil {
		return err
	}

	updated := *applicant
	if input.ReleaseDate != nil {
		updated.ReleaseDate = input.ReleaseDate
	}
	if input.PaymentDate != nil {
		updated.PaymentDate = input.PaymentDate
	}
	if input.PaymentAmount != nil {
		updated.PaymentAmount = input.PaymentAmount
	}

	return srv.update(ctx, &updated)
}

// Delete removes the dossier permanently.
func (srv *applicantService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrApplicantNotFound) {
			return domainerrors.ErrApplicantNotFound.WrapMessage("delete target missing")
		}

		return errors.Wrap(err, "failed to delete applicant")
	}

	srv.logger.Info("Deleted dossier", slog.Any("applicantID", id))

	return nil
}

func (srv *applicantService) newApplicant(ownerID uuid.UUID, candidate intake.Candidate) *entity.Applicant {
	return &entity.Applicant{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Name:         candidate.Name,
		Sex:          candidate.Sex,
		Address:      candidate.Address,
		Zone:         candidate.Zone,
		ZoneLocation: candidate.ZoneLocation,
		Area:         candidate.Area,
		Status:       entity.StatusPending,
		RegisteredAt: srv.now(),
	}
}

func (srv *applicantService) find(ctx context.Context, id uuid.UUID) (*entity.Applicant, error) {
	applicant, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrApplicantNotFound) {
			return nil, domainerrors.ErrApplicantNotFound.WrapMessage("update target missing")
		}

		return nil, errors.Wrap(err, "failed to find applicant")
	}

	return applicant, nil
}

func (srv *applicantService) update(ctx context.Context, applicant *entity.Applicant) error {
	if err := srv.repo.Update(ctx, applicant); err != nil {
		if errors.Is(err, repository.ErrApplicantNotFound) {
			return domainerrors.ErrApplicantNotFound.WrapMessage("update target missing")
		}

		return errors.Wrap(err, "failed to update applicant")
	}

	return nil
}
