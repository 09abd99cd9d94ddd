package metadata

// ColumnSet is the authoritative set of sanitized column names for one table.
type ColumnSet map[string]struct{}

// NewColumnSet sanitizes the raw column names of a table into a membership
// set. Field references are checked against this set in sanitized form.
func NewColumnSet(columns []string) ColumnSet {
	set := make(ColumnSet, len(columns))
	for _, c := range columns {
		set[Sanitize(c)] = struct{}{}
	}
	return set
}

// Contains reports whether the sanitized form of name is a real column.
func (s ColumnSet) Contains(name string) bool {
	_, ok := s[Sanitize(name)]
	return ok
}

// ValidateField repairs an AI-proposed field reference against the real
// columns of its table. A match returns the sanitized name; a miss returns
// RecordID. ok is false when the fallback was substituted, so callers can log
// the repair. Validation never fails: the result is always usable.
func ValidateField(field string, valid ColumnSet) (repaired string, ok bool) {
	clean := Sanitize(field)
	if _, found := valid[clean]; found {
		return clean, true
	}
	return RecordID, false
}

// ValidateDisplayField follows the same rule as ValidateField, except the
// fallback identifier itself is accepted verbatim: a display field of
// "Record ID" is always valid even though no table declares such a column.
func ValidateDisplayField(field string, valid ColumnSet) (repaired string, ok bool) {
	clean := Sanitize(field)
	if clean == RecordID {
		return clean, true
	}
	return ValidateField(field, valid)
}
