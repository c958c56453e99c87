package scheduling

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"bandroom/models"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validator checks and normalizes reservation requests against the facility
// policy. All checks run independently; the returned ValidationError lists
// every violation.
type Validator struct {
	Policy Policy
	Clock  Clock
}

// Validate returns the normalized reservation (without ID or status) or a
// *ValidationError. On failure nothing is partially normalized.
func (v Validator) Validate(req models.ReservationRequest) (models.Reservation, error) {
	var violations []Violation
	add := func(field, msg string) {
		violations = append(violations, Violation{Field: field, Message: msg})
	}

	// Date: well-formed and not before today in the facility timezone.
	var date time.Time
	if parsed, err := time.ParseInLocation("2006-01-02", req.Date, v.Policy.Location); err != nil {
		add("date", fmt.Sprintf("%q is not a valid date (expected YYYY-MM-DD)", req.Date))
	} else {
		date = parsed
		now := v.Clock.Now().In(v.Policy.Location)
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, v.Policy.Location)
		if date.Before(today) {
			add("date", "date is in the past")
		}
	}

	// Start time: well-formed, grid-aligned, within business hours.
	startMin, timeErr := ParseTimeOfDay(req.StartTime)
	startOK := timeErr == nil
	if timeErr != nil {
		add("startTime", fmt.Sprintf("%q is not a valid time (expected HH:MM)", req.StartTime))
	} else {
		if startMin%v.Policy.GranularityMinutes != 0 {
			add("startTime", fmt.Sprintf("start time must align to the %d-minute grid", v.Policy.GranularityMinutes))
		}
		if startMin < v.Policy.openingMinute() || startMin > v.Policy.lastStartMinute() {
			add("startTime", fmt.Sprintf("start time must be between %s and %s",
				FormatTimeOfDay(v.Policy.openingMinute()), FormatTimeOfDay(v.Policy.lastStartMinute())))
		}
	}

	// Duration: allowed value, and the session must not run past closing.
	if !v.Policy.durationAllowed(req.DurationHours) {
		add("durationHours", fmt.Sprintf("duration must be one of %v hours", v.Policy.sortedDurations()))
	} else if startOK && !v.Policy.boundaryFeasible(startMin, req.DurationHours) {
		add("durationHours", fmt.Sprintf("a %d-hour session starting at %s runs past closing", req.DurationHours, req.StartTime))
	}

	// Party size: default 1 when absent.
	members := req.MembersCount
	if members == 0 {
		members = 1
	}
	if members < 1 || members > v.Policy.MaxMembers {
		add("membersCount", fmt.Sprintf("members count must be between 1 and %d", v.Policy.MaxMembers))
	}

	if strings.TrimSpace(req.BandName) == "" {
		add("bandName", "band name is required")
	}
	email := strings.ToLower(strings.TrimSpace(req.ContactEmail))
	if !emailRe.MatchString(email) {
		add("contactEmail", fmt.Sprintf("%q is not a valid email address", req.ContactEmail))
	}

	if len(violations) > 0 {
		return models.Reservation{}, &ValidationError{Violations: violations}
	}

	normalized := models.Reservation{
		Date:          date.Format("2006-01-02"),
		StartTime:     FormatTimeOfDay(startMin),
		DurationHours: req.DurationHours,
		BandName:      strings.TrimSpace(req.BandName),
		ContactEmail:  email,
		Phone:         strings.TrimSpace(req.Phone),
		MembersCount:  members,
		Notes:         strings.TrimSpace(req.Notes),
	}
	return normalized, nil
}
