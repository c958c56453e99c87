package scheduling

import (
	"testing"

	"bandroom/models"

	"github.com/stretchr/testify/assert"
)

func reservationAt(start string, hours int, status models.ReservationStatus) models.Reservation {
	return models.Reservation{
		Date:          "2026-09-01",
		StartTime:     start,
		DurationHours: hours,
		Status:        status,
		BandName:      "The Fixtures",
		ContactEmail:  "fixtures@example.com",
		MembersCount:  3,
	}
}

func TestHasConflictOverlapSemantics(t *testing.T) {
	existing := []models.Reservation{reservationAt("10:00", 2, models.StatusApproved)} // 10:00-12:00

	// Touching endpoints coexist legally.
	assert.False(t, HasConflict(NewInterval(ToMinutes(12, 0), 1), existing), "12:00 start against a 12:00 end must not conflict")
	assert.False(t, HasConflict(NewInterval(ToMinutes(9, 0), 1), existing), "09:00-10:00 against a 10:00 start must not conflict")

	// Sharing a single minute conflicts.
	assert.True(t, HasConflict(NewInterval(ToMinutes(11, 59), 1), existing))
	assert.True(t, HasConflict(NewInterval(ToMinutes(11, 30), 1), existing))

	// Containment in either direction conflicts.
	assert.True(t, HasConflict(NewInterval(ToMinutes(10, 30), 1), existing))
	assert.True(t, HasConflict(NewInterval(ToMinutes(9, 0), 4), existing))
}

func TestHasConflictFiltersNonBlockingStatuses(t *testing.T) {
	sameDay := []models.Reservation{
		reservationAt("10:00", 2, models.StatusCancelled),
		reservationAt("10:00", 2, models.StatusRejected),
	}

	// A cancelled or rejected reservation is invisible to conflict checks,
	// even when the caller forgot to pre-filter.
	assert.False(t, HasConflict(NewInterval(ToMinutes(10, 0), 4), sameDay))
}

func TestHasConflictBlockingStatuses(t *testing.T) {
	for _, status := range []models.ReservationStatus{models.StatusPending, models.StatusApproved} {
		sameDay := []models.Reservation{reservationAt("14:00", 2, status)}
		assert.True(t, HasConflict(NewInterval(ToMinutes(15, 0), 1), sameDay), "status %s must block", status)
	}
}

func TestHasConflictEmptyDay(t *testing.T) {
	assert.False(t, HasConflict(NewInterval(ToMinutes(9, 0), 4), nil))
}
