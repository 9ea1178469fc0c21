package entity

// Zone is the land-use classification requested by an applicant.
// The set is closed; values are stored and exchanged as their display strings.
type Zone string

const (
	ZoneCommercial         Zone = "Commercial"
	ZoneAgricultural       Zone = "Agricultural"
	ZoneResidential        Zone = "Residential"
	ZoneIndustrial         Zone = "Industrial"
	ZoneAgroIndustrial     Zone = "Agro-Industrial"
	ZoneMangroveProtection Zone = "Mangrove Protection"
	ZoneInstitutional      Zone = "Institutional"
)

// Zones lists every valid zone category in display order.
func Zones() []Zone {
	return []Zone{
		ZoneCommercial,
		ZoneAgricultural,
		ZoneResidential,
		ZoneIndustrial,
		ZoneAgroIndustrial,
		ZoneMangroveProtection,
		ZoneInstitutional,
	}
}

// IsValid reports whether z is one of the closed zone categories.
func (z Zone) IsValid() bool {
	switch z {
	case ZoneCommercial, ZoneAgricultural, ZoneResidential, ZoneIndustrial,
		ZoneAgroIndustrial, ZoneMangroveProtection, ZoneInstitutional:
		return true
	default:
		return false
	}
}

// ParseZone maps a raw cell or form value onto the closed zone set.
// Unknown or empty values fall back to Residential, matching the bulk
// import defaulting rules.
func ParseZone(raw string) Zone {
	if z := Zone(raw); z.IsValid() {
		return z
	}

	return ZoneResidential
}
