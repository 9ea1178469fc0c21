package intake

import (
	"testing"
	"time"

	"zoning/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader_ColumnOrder(t *testing.T) {
	assert.Equal(t, []string{
		"Name", "Sex", "Address", "Zone", "Zone Location", "Area (sqm)", "Status", "Date Registered",
	}, Header())
}

func TestToTable_RendersOneRowPerRecord(t *testing.T) {
	registered := time.Date(2026, 3, 7, 9, 30, 0, 0, time.UTC)
	applicants := []*entity.Applicant{
		{
			ID:           uuid.New(),
			OwnerID:      uuid.New(),
			Name:         "Juan Dela Cruz",
			Sex:          entity.SexMale,
			Address:      "Purok 4",
			Zone:         entity.ZoneResidential,
			ZoneLocation: "New Pandan",
			Area:         250.5,
			Status:       entity.StatusPending,
			RegisteredAt: registered,
		},
	}

	rows := ToTable(applicants)

	require.Len(t, rows, 1)
	assert.Equal(t, []string{
		"Juan Dela Cruz", "Male", "Purok 4", "Residential", "New Pandan", "250.5", "Pending", "3/7/2026",
	}, rows[0])
}

func TestToTable_RoundTripsThroughValidator(t *testing.T) {
	applicants := []*entity.Applicant{
		{
			Name:         "Maria Clara",
			Sex:          entity.SexFemale,
			Address:      "Quezon Street",
			Zone:         entity.ZoneCommercial,
			ZoneLocation: "Central",
			Area:         1200,
			Status:       entity.StatusApproved,
			RegisteredAt: time.Now(),
		},
	}

	header := Header()
	raw := make([]RawRow, 0, len(applicants))
	for _, cells := range ToTable(applicants) {
		row := make(RawRow, len(header))
		for i, name := range header {
			row[name] = cells[i]
		}
		raw = append(raw, row)
	}

	candidates, err := ValidateAndMap(raw)

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, applicants[0].Name, candidates[0].Name)
	assert.Equal(t, applicants[0].Sex, candidates[0].Sex)
	assert.Equal(t, applicants[0].Address, candidates[0].Address)
	assert.Equal(t, applicants[0].Zone, candidates[0].Zone)
	assert.Equal(t, applicants[0].ZoneLocation, candidates[0].ZoneLocation)
	assert.InDelta(t, applicants[0].Area, candidates[0].Area, 0.0001)
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "Panabo_Zoning_Applicants_2026-09-01.xlsx", ExportFilename(now))
}
