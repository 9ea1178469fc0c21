package service

import (
	"context"

	"zoning/internal/domain/entity"
)

// AdvisoryService produces short planning advice for a proposed project.
// It is best-effort by contract: implementations must absorb every failure
// and return a usable fallback string, never an error, so no dossier
// operation can be blocked by the advisory backend.
type AdvisoryService interface {
	Advise(ctx context.Context, zone entity.Zone, area float64, location string) string
}
