package reservation

type Status string

const (
	StatusReserved Status = "reserved"
	StatusPickedUp Status = "picked_up"
	StatusNoShow   Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReserved, StatusPickedUp, StatusNoShow:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether a reservation in this status is immutable.
func (s Status) IsTerminal() bool {
	return s == StatusPickedUp || s == StatusNoShow
}
