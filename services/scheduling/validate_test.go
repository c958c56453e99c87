package scheduling

import (
	"testing"
	"time"

	"bandroom/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func testPolicy() Policy {
	return DefaultPolicy(time.UTC)
}

// testClock pins "today" to 2026-09-01 UTC.
func testClock() Clock {
	return fixedClock{t: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
}

func validRequest() models.ReservationRequest {
	return models.ReservationRequest{
		Date:          "2026-09-02",
		StartTime:     "18:30",
		DurationHours: 2,
		BandName:      "Static Theory",
		ContactEmail:  "booking@statictheory.example",
		MembersCount:  4,
	}
}

func violationFields(err error) []string {
	ve, ok := err.(*ValidationError)
	if !ok {
		return nil
	}
	fields := make([]string, len(ve.Violations))
	for i, v := range ve.Violations {
		fields[i] = v.Field
	}
	return fields
}

func TestValidateAcceptsAndNormalizes(t *testing.T) {
	v := Validator{Policy: testPolicy(), Clock: testClock()}

	req := validRequest()
	req.BandName = "  Static Theory "
	req.ContactEmail = " Booking@StaticTheory.example "

	normalized, err := v.Validate(req)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-02", normalized.Date)
	assert.Equal(t, "18:30", normalized.StartTime)
	assert.Equal(t, 2, normalized.DurationHours)
	assert.Equal(t, "Static Theory", normalized.BandName)
	assert.Equal(t, "booking@statictheory.example", normalized.ContactEmail)
	assert.Equal(t, 4, normalized.MembersCount)
}

func TestValidateDefaultsMembersCount(t *testing.T) {
	v := Validator{Policy: testPolicy(), Clock: testClock()}

	req := validRequest()
	req.MembersCount = 0

	normalized, err := v.Validate(req)
	require.NoError(t, err)
	assert.Equal(t, 1, normalized.MembersCount)
}

func TestValidateReportsAllViolationsAtOnce(t *testing.T) {
	v := Validator{Policy: testPolicy(), Clock: testClock()}

	req := validRequest()
	req.Date = "02.09.2026"
	req.DurationHours = 5
	req.MembersCount = 9

	_, err := v.Validate(req)
	require.Error(t, err)
	fields := violationFields(err)
	assert.ElementsMatch(t, []string{"date", "durationHours", "membersCount"}, fields)
}

func TestValidateRejectsPastDate(t *testing.T) {
	v := Validator{Policy: testPolicy(), Clock: testClock()}

	req := validRequest()
	req.Date = "2026-08-31"

	_, err := v.Validate(req)
	require.Error(t, err)
	assert.Contains(t, violationFields(err), "date")
}

func TestValidateAcceptsToday(t *testing.T) {
	v := Validator{Policy: testPolicy(), Clock: testClock()}

	req := validRequest()
	req.Date = "2026-09-01"

	_, err := v.Validate(req)
	assert.NoError(t, err)
}

func TestValidateStartTimeRules(t *testing.T) {
	v := Validator{Policy: testPolicy(), Clock: testClock()}

	cases := []struct {
		name  string
		start string
	}{
		{"malformed", "half past six"},
		{"off grid", "18:15"},
		{"before opening", "08:30"},
		{"after last slot", "24:00"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validRequest()
			req.StartTime = c.start
			req.DurationHours = 1
			_, err := v.Validate(req)
			require.Error(t, err)
			assert.Contains(t, violationFields(err), "startTime")
		})
	}

	// The last bookable half-hour slot of the day.
	req := validRequest()
	req.StartTime = "23:30"
	req.DurationHours = 1
	_, err := v.Validate(req)
	assert.NoError(t, err)
}

func TestValidateDurationMustFitBusinessHours(t *testing.T) {
	v := Validator{Policy: testPolicy(), Clock: testClock()}

	req := validRequest()
	req.StartTime = "22:00"
	req.DurationHours = 3 // would end 01:00

	_, err := v.Validate(req)
	require.Error(t, err)
	assert.Contains(t, violationFields(err), "durationHours")

	req.DurationHours = 2 // ends exactly at closing
	_, err = v.Validate(req)
	assert.NoError(t, err)
}

func TestValidateContactFields(t *testing.T) {
	v := Validator{Policy: testPolicy(), Clock: testClock()}

	req := validRequest()
	req.BandName = "   "
	req.ContactEmail = "not-an-email"

	_, err := v.Validate(req)
	require.Error(t, err)
	fields := violationFields(err)
	assert.Contains(t, fields, "bandName")
	assert.Contains(t, fields, "contactEmail")
}
