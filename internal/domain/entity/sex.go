package entity

// Sex is the applicant's registered sex category.
type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
	SexOther  Sex = "Other"
)

// IsValid reports whether s is one of the known sex categories.
func (s Sex) IsValid() bool {
	switch s {
	case SexMale, SexFemale, SexOther:
		return true
	default:
		return false
	}
}

// ParseSex maps a raw value onto the closed sex set, defaulting to Other.
func ParseSex(raw string) Sex {
	if s := Sex(raw); s.IsValid() {
		return s
	}

	return SexOther
}
