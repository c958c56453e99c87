package scheduling

import (
	"fmt"
	"time"

	"bandroom/models"
)

// Interval is a half-open span [Start, End) in minutes from facility-local
// midnight. The end minute itself is not occupied, so back-to-back
// reservations are legal.
type Interval struct {
	Start int
	End   int
}

// ToMinutes converts a wall-clock time of day to minutes since midnight.
func ToMinutes(hour, minute int) int {
	return hour*60 + minute
}

// NewInterval builds the interval occupied by a session of durationHours
// starting at startMin.
func NewInterval(startMin, durationHours int) Interval {
	return Interval{Start: startMin, End: startMin + durationHours*60}
}

// Overlaps reports whether a and b share at least one minute. Touching
// endpoints (a.End == b.Start) are not an overlap.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start < b.End && a.End > b.Start
}

// ParseTimeOfDay parses "HH:MM" into minutes since midnight.
func ParseTimeOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	return ToMinutes(t.Hour(), t.Minute()), nil
}

// FormatTimeOfDay renders minutes since midnight as "HH:MM".
func FormatTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ReservationInterval derives the occupied interval of a stored reservation.
func ReservationInterval(res models.Reservation) (Interval, error) {
	startMin, err := ParseTimeOfDay(res.StartTime)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(startMin, res.DurationHours), nil
}
