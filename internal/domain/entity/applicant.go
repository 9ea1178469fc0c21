// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Applicant is a single zoning-application dossier. Every dossier belongs to
// exactly one registering officer (OwnerID) and carries an immutable
// registration timestamp that drives the automatic expiry rule.
type Applicant struct {
	ID           uuid.UUID      `json:"id"`
	OwnerID      uuid.UUID      `json:"ownerId"`      // The officer who registered this dossier. Immutable.
	Name         string         `json:"name"`         // Applicant's full name.
	Sex          Sex            `json:"sex"`          // Male/Female/Other.
	Address      string         `json:"address"`      // Residential address, free text.
	Zone         Zone           `json:"zone"`         // Requested land-use classification.
	ZoneLocation string         `json:"zoneLocation"` // Proposed site location, free text.
	Area         float64        `json:"area"`         // Project area in square meters. Positive at creation.
	Status       ApprovalStatus `json:"status"`
	RegisteredAt time.Time      `json:"registeredAt"` // Set at creation. Immutable.

	// Administrative fields, settable only after creation. Nil means unset.
	ReleaseDate   *time.Time `json:"releaseDate,omitempty"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`
	PaymentAmount *float64   `json:"paymentAmount,omitempty"` // Non-negative when set.
}
