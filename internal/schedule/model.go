package schedule

// Entry is one day of a tenant's weekly opening hours in local wall-clock time.
type Entry struct {
	Day   string `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

type Status int

const (
	// StatusPending means the schedule has not been evaluated yet. Routing
	// treats it like Open.
	StatusPending Status = iota
	StatusOpen
	StatusClosed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusOpen:
		return "open"
	case StatusClosed:
		return "closed"
	default:
		return "unknown"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
