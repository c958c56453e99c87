package scheduling

import "bandroom/models"

// GridBuilder enumerates the availability grid for one day. Build is a pure
// function of its inputs and the policy: identical inputs always produce an
// identical grid, so read-only availability queries need no locking.
type GridBuilder struct {
	Policy Policy
}

// Build returns one TimeSlot per enumerable start time, ascending, with the
// durations that are both boundary-feasible and conflict-free against the
// day's blocking reservations.
func (g GridBuilder) Build(sameDay []models.Reservation) []models.TimeSlot {
	durations := g.Policy.sortedDurations()

	var slots []models.TimeSlot
	for t := g.Policy.openingMinute(); t <= g.Policy.lastStartMinute(); t += g.Policy.GranularityMinutes {
		feasible := []int{}
		for _, d := range durations {
			if !g.Policy.boundaryFeasible(t, d) {
				continue
			}
			if HasConflict(NewInterval(t, d), sameDay) {
				continue
			}
			feasible = append(feasible, d)
		}

		slot := models.TimeSlot{
			Time:               FormatTimeOfDay(t),
			Available:          len(feasible) > 0,
			AvailableDurations: feasible,
		}
		if len(feasible) > 0 {
			slot.MaxDuration = feasible[len(feasible)-1]
		}
		slots = append(slots, slot)
	}
	return slots
}
