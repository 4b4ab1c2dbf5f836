package checkout

import "strings"

// Roster is the canonical salesperson id set of a tenant. The zero Roster has
// not been fetched yet. An unavailable roster (the fetch failed) only lets
// presence be checked.
type Roster struct {
	ids       map[string]struct{}
	available bool
	loaded    bool
}

func NewRoster(ids []string) Roster {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			set[id] = struct{}{}
		}
	}
	return Roster{ids: set, available: true, loaded: true}
}

func UnavailableRoster() Roster {
	return Roster{loaded: true}
}

// Loaded reports whether a fetch was attempted, successful or not.
func (r Roster) Loaded() bool {
	return r.loaded
}

func (r Roster) Available() bool {
	return r.available
}

func (r Roster) Contains(id string) bool {
	_, ok := r.ids[strings.TrimSpace(id)]
	return ok
}

func (r Roster) Len() int {
	return len(r.ids)
}
