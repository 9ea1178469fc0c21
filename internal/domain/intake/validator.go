// Package intake contains the pure mapping and validation rules for bulk
// spreadsheet import and tabular export of zoning dossiers. It performs no
// I/O; the spreadsheet infrastructure hands it raw rows and writes back the
// tables it produces.
package intake

import (
	"fmt"
	"strconv"
	"strings"

	"zoning/internal/domain/entity"
)

// Column headers recognized on import and produced on export.
// Import matches them exactly first, then falls back to their lowercase forms.
const (
	ColName         = "Name"
	ColSex          = "Sex"
	ColAddress      = "Address"
	ColZone         = "Zone"
	ColZoneLocation = "Zone Location"
	ColArea         = "Area (sqm)"
	ColStatus       = "Status"
	ColRegistered   = "Date Registered"
)

// RawRow is one parsed spreadsheet row, keyed by column header.
type RawRow map[string]string

// Candidate is a mapped, not-yet-persisted dossier from a bulk import.
// Status and Date Registered columns are deliberately absent: they are
// ignored on import and assigned at creation time.
type Candidate struct {
	Name         string
	Sex          entity.Sex
	Address      string
	Zone         entity.Zone
	ZoneLocation string
	Area         float64
}

// ValidationError reports a batch rejected because one or more mapped rows
// were missing required content. The whole batch is discarded; nothing is
// persisted.
type ValidationError struct {
	InvalidRows int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("import rejected: %d row(s) missing required fields or with non-positive area", e.InvalidRows)
}

// MapRow maps a raw row onto a Candidate, applying the import defaults:
// name falls back to "Unknown", address and zone location to empty strings,
// area to 0, sex to Other and zone to Residential. Defaulting happens here,
// before validation, so a defaulted-but-still-empty field is what gets the
// batch rejected.
func MapRow(row RawRow) Candidate {
	return Candidate{
		Name:         cellOrDefault(row, ColName, "Unknown"),
		Sex:          entity.ParseSex(cell(row, ColSex)),
		Address:      cell(row, ColAddress),
		Zone:         entity.ParseZone(cell(row, ColZone)),
		ZoneLocation: cell(row, ColZoneLocation),
		Area:         parseArea(cell(row, ColArea)),
	}
}

// ValidateAndMap maps every raw row and validates the whole batch.
// Any row with an empty name, empty address, empty zone location, or a
// non-positive area rejects the entire batch with a *ValidationError
// carrying the offending row count.
func ValidateAndMap(rows []RawRow) ([]Candidate, error) {
	candidates := make([]Candidate, 0, len(rows))
	invalid := 0

	for _, row := range rows {
		candidate := MapRow(row)
		if candidate.Name == "" || candidate.Address == "" || candidate.ZoneLocation == "" || candidate.Area <= 0 {
			invalid++
		}
		candidates = append(candidates, candidate)
	}

	if invalid > 0 {
		return nil, &ValidationError{InvalidRows: invalid}
	}

	return candidates, nil
}

// cell looks a header up exactly, then by its lowercase form.
func cell(row RawRow, header string) string {
	if v, ok := row[header]; ok {
		return v
	}

	return row[strings.ToLower(header)]
}

func cellOrDefault(row RawRow, header, fallback string) string {
	if v := cell(row, header); v != "" {
		return v
	}

	return fallback
}

// parseArea tolerates anything: a missing or unparseable cell maps to 0,
// which the batch validation then rejects.
func parseArea(raw string) float64 {
	area, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}

	return area
}
