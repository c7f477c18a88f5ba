package todo

// StatusFilter selects todos by completion state.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
)

// IsValid returns true if the status filter is one of the defined constants.
func (s StatusFilter) IsValid() bool {
	switch s {
	case StatusAll, StatusActive, StatusCompleted:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s StatusFilter) String() string {
	return string(s)
}

// Matches reports whether t passes the status predicate.
func (s StatusFilter) Matches(t *Todo) bool {
	switch s {
	case StatusActive:
		return !t.Completed
	case StatusCompleted:
		return t.Completed
	default:
		return true
	}
}
