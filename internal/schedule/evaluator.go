package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrMalformedTime = errors.New("malformed schedule time")

// Evaluate decides whether the tenant is open at now.
//
// The first entry whose day matches now's weekday wins. Bounds are inclusive
// and compared at minute precision in now's location. A closing time earlier
// than the opening time is not treated as crossing midnight, so such a day is
// always closed. Unknown days and malformed times evaluate to Closed.
func Evaluate(entries []Entry, now time.Time) Status {
	entry, ok := today(entries, now)
	if !ok {
		return StatusClosed
	}

	open, err := ParseClock(entry.Open)
	if err != nil {
		return StatusClosed
	}

	closing, err := ParseClock(entry.Close)
	if err != nil {
		return StatusClosed
	}

	current := now.Hour()*60 + now.Minute()
	if open <= current && current <= closing {
		return StatusOpen
	}

	return StatusClosed
}

func IsOpen(entries []Entry, now time.Time) bool {
	return Evaluate(entries, now) == StatusOpen
}

func today(entries []Entry, now time.Time) (Entry, bool) {
	for _, e := range entries {
		if MatchesWeekday(e.Day, now.Weekday()) {
			return e, true
		}
	}
	return Entry{}, false
}

// ParseClock converts "HH:MM" or "HH:MM:SS" into minutes since midnight.
// Seconds are ignored. "24:00" is accepted as the end of the day.
func ParseClock(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, value)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, value)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, value)
	}

	if hours < 0 || minutes < 0 || minutes > 59 || hours > 24 || (hours == 24 && minutes != 0) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, value)
	}

	return hours*60 + minutes, nil
}

// Validate returns every malformed entry as a joined error.
func Validate(entries []Entry) error {
	var errs []error
	for _, e := range entries {
		if _, err := ParseClock(e.Open); err != nil {
			errs = append(errs, fmt.Errorf("%s open: %w", e.Day, err))
		}
		if _, err := ParseClock(e.Close); err != nil {
			errs = append(errs, fmt.Errorf("%s close: %w", e.Day, err))
		}
	}
	return errors.Join(errs...)
}
