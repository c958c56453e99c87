package scheduling

import "bandroom/models"

// HasConflict reports whether the candidate interval overlaps any blocking
// reservation of the same day. The blocking-status filter is applied here even
// when the caller already queried blocking rows only, so the check stays
// correct if a caller ever passes an unfiltered day. Pure, O(n).
func HasConflict(candidate Interval, sameDay []models.Reservation) bool {
	for _, res := range sameDay {
		if !res.Status.Blocking() {
			continue
		}
		existing, err := ReservationInterval(res)
		if err != nil {
			// Stored start times are validated on write; an unparseable row
			// cannot be positioned on the day and is skipped.
			continue
		}
		if candidate.Overlaps(existing) {
			return true
		}
	}
	return false
}
