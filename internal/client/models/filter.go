package models

// SearchFilter is a pair of optional criteria for the filtered employee
// query. An empty field means no constraint on that field; a filter with
// both fields empty matches all records.
type SearchFilter struct {
	Designation string
	Department  string
}

// IsZero reports whether the filter carries no criteria at all.
func (f SearchFilter) IsZero() bool {
	return f.Designation == "" && f.Department == ""
}
