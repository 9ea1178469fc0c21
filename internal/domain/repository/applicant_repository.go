package repository

import (
	"context"
	"errors"

	"zoning/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrApplicantNotFound is a domain-specific error returned when a dossier is not found.
var ErrApplicantNotFound = errors.New("applicant not found")

// ApplicantRepository defines the standard operations for dossier persistence.
// The full collection is the unit of storage: reads return every record in
// insertion order and writes rewrite the serialized collection, so a batch
// append is all-or-nothing by construction.
type ApplicantRepository interface {
	// ListAll retrieves the full dossier collection in insertion order.
	ListAll(ctx context.Context) ([]*entity.Applicant, error)

	// ReplaceAll rewrites the full collection. Used by the expiry sweep to
	// persist status transitions before results are returned to callers.
	ReplaceAll(ctx context.Context, applicants []*entity.Applicant) error

	// AppendAll appends the given dossiers in a single read-modify-write
	// against the store.
	AppendAll(ctx context.Context, applicants []*entity.Applicant) error

	// FindByID retrieves a single dossier by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Applicant, error)

	// Update replaces the stored dossier with the same ID.
	Update(ctx context.Context, applicant *entity.Applicant) error

	// Delete removes a dossier permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
