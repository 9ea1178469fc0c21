package expiry

import (
	"testing"
	"time"

	"zoning/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApplicant(status entity.ApprovalStatus, registeredAt time.Time) *entity.Applicant {
	return &entity.Applicant{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		Name:         "Juan Dela Cruz",
		Sex:          entity.SexMale,
		Address:      "Purok 4",
		Zone:         entity.ZoneResidential,
		ZoneLocation: "New Pandan",
		Area:         250,
		Status:       status,
		RegisteredAt: registeredAt,
	}
}

func TestSweep_ExpiresStaleReviewableStatuses(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	pending := newApplicant(entity.StatusPending, now.Add(-13*24*time.Hour))
	review := newApplicant(entity.StatusTechnicalReview, now.Add(-30*24*time.Hour))

	out, changed := Sweep([]*entity.Applicant{pending, review}, now, DefaultDays)

	require.True(t, changed)
	require.Len(t, out, 2)
	assert.Equal(t, entity.StatusExpired, out[0].Status)
	assert.Equal(t, entity.StatusExpired, out[1].Status)
}

func TestSweep_ExactBoundaryDoesNotExpire(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	onBoundary := newApplicant(entity.StatusPending, now.Add(-DefaultDays*24*time.Hour))
	justPast := newApplicant(entity.StatusPending, now.Add(-DefaultDays*24*time.Hour-time.Nanosecond))

	out, changed := Sweep([]*entity.Applicant{onBoundary, justPast}, now, DefaultDays)

	require.True(t, changed)
	assert.Equal(t, entity.StatusPending, out[0].Status)
	assert.Equal(t, entity.StatusExpired, out[1].Status)
}

func TestSweep_DecidedStatusesNeverExpire(t *testing.T) {
	now := time.Now()
	old := now.Add(-100 * 24 * time.Hour)

	approved := newApplicant(entity.StatusApproved, old)
	disapproved := newApplicant(entity.StatusDisapproved, old)
	expired := newApplicant(entity.StatusExpired, old)

	out, changed := Sweep([]*entity.Applicant{approved, disapproved, expired}, now, DefaultDays)

	assert.False(t, changed)
	assert.Equal(t, entity.StatusApproved, out[0].Status)
	assert.Equal(t, entity.StatusDisapproved, out[1].Status)
	assert.Equal(t, entity.StatusExpired, out[2].Status)
}

func TestSweep_Idempotent(t *testing.T) {
	now := time.Now()
	stale := newApplicant(entity.StatusPending, now.Add(-20*24*time.Hour))
	fresh := newApplicant(entity.StatusPending, now.Add(-1*24*time.Hour))

	first, changed := Sweep([]*entity.Applicant{stale, fresh}, now, DefaultDays)
	require.True(t, changed)

	second, changed := Sweep(first, now, DefaultDays)
	assert.False(t, changed)
	assert.Equal(t, first, second)
}

func TestSweep_DoesNotMutateInput(t *testing.T) {
	now := time.Now()
	stale := newApplicant(entity.StatusPending, now.Add(-20*24*time.Hour))

	out, changed := Sweep([]*entity.Applicant{stale}, now, DefaultDays)

	require.True(t, changed)
	assert.Equal(t, entity.StatusPending, stale.Status)
	assert.NotSame(t, stale, out[0])
	assert.Equal(t, stale.ID, out[0].ID)
}

func TestSweep_EmptyInput(t *testing.T) {
	out, changed := Sweep(nil, time.Now(), DefaultDays)

	assert.False(t, changed)
	assert.Empty(t, out)
}
