package intake

import (
	"strconv"
	"time"

	"zoning/internal/domain/entity"
)

// registeredDateLayout renders Date Registered as a locale date rather than
// a timestamp. The column is ignored on re-import, so the format only needs
// to be human-readable.
const registeredDateLayout = "1/2/2006"

// Header returns the export column headers in order. The first six columns
// are exactly the shape ValidateAndMap expects back, so a previously
// exported file re-imports cleanly (Status and Date Registered are ignored).
func Header() []string {
	return []string{ColName, ColSex, ColAddress, ColZone, ColZoneLocation, ColArea, ColStatus, ColRegistered}
}

// ToTable maps dossiers to export rows, one row per record, in the order
// given. No filtering or sorting happens here; the caller supplies the
// already-filtered set.
func ToTable(applicants []*entity.Applicant) [][]string {
	rows := make([][]string, 0, len(applicants))
	for _, a := range applicants {
		rows = append(rows, []string{
			a.Name,
			string(a.Sex),
			a.Address,
			string(a.Zone),
			a.ZoneLocation,
			strconv.FormatFloat(a.Area, 'f', -1, 64),
			string(a.Status),
			a.RegisteredAt.Format(registeredDateLayout),
		})
	}

	return rows
}

// ExportFilename builds the attachment name for an export produced at now.
func ExportFilename(now time.Time) string {
	return "Panabo_Zoning_Applicants_" + now.Format("2006-01-02") + ".xlsx"
}
