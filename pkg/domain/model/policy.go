package model

// Policy holds association-wide membership rules loaded from the app
// config file. Empty slices mean no restriction.
type Policy struct {
	Departments []string `toml:"departments"`
	ClassYears  []int    `toml:"class_years"`
}

// AllowsDepartment reports whether dept is acceptable for registration.
func (p *Policy) AllowsDepartment(dept string) bool {
	if len(p.Departments) == 0 {
		return true
	}
	for _, d := range p.Departments {
		if d == dept {
			return true
		}
	}
	return false
}

// AllowsClassYear reports whether year is acceptable for registration.
func (p *Policy) AllowsClassYear(year int) bool {
	if len(p.ClassYears) == 0 {
		return true
	}
	for _, y := range p.ClassYears {
		if y == year {
			return true
		}
	}
	return false
}
