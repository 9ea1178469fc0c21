package usecase

import (
	"context"
	"io"
	"time"

	"zoning/internal/domain/entity"
	"zoning/internal/domain/intake"

	"github.com/google/uuid"
)

// CreateApplicantInput defines the data required to register a new dossier.
// ID, status, and registration timestamp are assigned by the usecase.
type CreateApplicantInput struct {
	Name         string
	Sex          entity.Sex
	Address      string
	Zone         entity.Zone
	ZoneLocation string
	Area         float64
}

// UpdateAdministrativeInput carries the optional administrative fields.
// Nil pointers mean "leave the stored value alone" (partial update, not a
// full overwrite).
type UpdateAdministrativeInput struct {
	ReleaseDate   *time.Time
	PaymentDate   *time.Time
	PaymentAmount *float64
}

// ApplicantUsecase defines the dossier lifecycle operations. Every read
// through ListForOwner runs the expiry sweep and persists any transitions
// before returning, so callers always observe durable statuses.
type ApplicantUsecase interface {
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Applicant, error)
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateApplicantInput) (*entity.Applicant, error)
	CreateBulk(ctx context.Context, ownerID uuid.UUID, candidates []intake.Candidate) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ApprovalStatus) error
	UpdateAdministrative(ctx context.Context, id uuid.UUID, input *UpdateAdministrativeInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ImportOutput reports a completed bulk import.
type ImportOutput struct {
	Imported int
}

// ExportOutput names the workbook written by an export.
type ExportOutput struct {
	Filename string
	Records  int
}

// TransferUsecase defines spreadsheet import and export of dossiers.
type TransferUsecase interface {
	// Import parses and validates an uploaded workbook and persists the
	// batch all-or-nothing for the given owner.
	Import(ctx context.Context, ownerID uuid.UUID, upload io.Reader) (*ImportOutput, error)

	// Export writes the owner's current dossiers (expiry applied) as a
	// single-sheet workbook.
	Export(ctx context.Context, ownerID uuid.UUID, w io.Writer) (*ExportOutput, error)
}
