// Package expiry implements the automatic expiry rule for zoning dossiers.
package expiry

import (
	"time"

	"zoning/internal/domain/entity"
)

// DefaultDays is the number of days a dossier may stay in Pending or
// Under Technical Review before the sweep forces it to Expired.
const DefaultDays = 12

// Sweep applies the expiry rule to applicants as of now and returns the
// resulting slice together with a flag telling the caller whether anything
// changed and therefore needs to be persisted.
//
// A record expires when strictly more than days*24h have elapsed since its
// registration (exactly the boundary does not expire) and its status is
// still expirable. Approved and Disapproved records never expire, and
// Expired records are never touched again, so Sweep is idempotent:
// reapplying it to its own output is a no-op.
//
// Sweep is pure. Unchanged records keep their identity; changed records are
// shallow copies with only the status replaced, so callers holding the input
// slice never observe mutation.
func Sweep(applicants []*entity.Applicant, now time.Time, days int) ([]*entity.Applicant, bool) {
	cutoff := time.Duration(days) * 24 * time.Hour

	out := make([]*entity.Applicant, len(applicants))
	changed := false

	for i, applicant := range applicants {
		if applicant.Status.Expirable() && now.Sub(applicant.RegisteredAt) > cutoff {
			expired := *applicant
			expired.Status = entity.StatusExpired
			out[i] = &expired
			changed = true

			continue
		}

		out[i] = applicant
	}

	return out, changed
}
