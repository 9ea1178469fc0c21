package entity

// ApprovalStatus tracks a dossier through the review workflow.
//
// Pending and Under Technical Review are the only states the expiry sweep
// may transition out of; Expired is terminal and is never left again.
type ApprovalStatus string

const (
	StatusPending         ApprovalStatus = "Pending"
	StatusTechnicalReview ApprovalStatus = "Under Technical Review"
	StatusApproved        ApprovalStatus = "Approved"
	StatusDisapproved     ApprovalStatus = "Disapproved"
	StatusExpired         ApprovalStatus = "Expired"
)

// IsValid reports whether st is one of the workflow statuses.
func (st ApprovalStatus) IsValid() bool {
	switch st {
	case StatusPending, StatusTechnicalReview, StatusApproved, StatusDisapproved, StatusExpired:
		return true
	default:
		return false
	}
}

// Expirable reports whether the expiry sweep may move st to Expired.
func (st ApprovalStatus) Expirable() bool {
	return st == StatusPending || st == StatusTechnicalReview
}
