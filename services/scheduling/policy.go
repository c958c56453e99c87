package scheduling

import (
	"sort"
	"time"
)

// Policy carries the facility booking rules. It is built once from config in
// main and passed explicitly to every component that needs it; the engine
// never reads the global config.
type Policy struct {
	StartHour          int           // first bookable hour, inclusive
	EndHour            int           // closing hour; no reservation may run past it
	GranularityMinutes int           // step between bookable start times
	AllowedDurations   []int         // whole hours, ascending
	MaxMembers         int
	Location           *time.Location // facility timezone; anchors all date math
	LockTimeout        time.Duration  // bounded wait for the per-date write lock
}

// DefaultPolicy returns the standard facility rules: 09:00-24:00, half-hour
// grid, 1-4 hour sessions, up to 6 members.
func DefaultPolicy(loc *time.Location) Policy {
	return Policy{
		StartHour:          9,
		EndHour:            24,
		GranularityMinutes: 30,
		AllowedDurations:   []int{1, 2, 3, 4},
		MaxMembers:         6,
		Location:           loc,
		LockTimeout:        2 * time.Second,
	}
}

// openingMinute and closingMinute bound the bookable day in minutes from midnight.
func (p Policy) openingMinute() int { return p.StartHour * 60 }
func (p Policy) closingMinute() int { return p.EndHour * 60 }

// lastStartMinute is the latest enumerable start time on the grid.
func (p Policy) lastStartMinute() int { return p.closingMinute() - p.GranularityMinutes }

// durationAllowed reports whether d is one of the configured session lengths.
func (p Policy) durationAllowed(d int) bool {
	for _, allowed := range p.AllowedDurations {
		if d == allowed {
			return true
		}
	}
	return false
}

// boundaryFeasible reports whether a session of d hours starting at startMin
// fits the business-hours boundary: hour(start) + d must not exceed closing.
func (p Policy) boundaryFeasible(startMin, d int) bool {
	return startMin/60+d <= p.EndHour
}

// sortedDurations returns the allowed durations in ascending order.
func (p Policy) sortedDurations() []int {
	out := make([]int, len(p.AllowedDurations))
	copy(out, p.AllowedDurations)
	sort.Ints(out)
	return out
}

// Clock abstracts "now" so validation against today is testable.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
