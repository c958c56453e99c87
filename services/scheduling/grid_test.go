package scheduling

import (
	"encoding/json"
	"testing"

	"bandroom/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotByTime(t *testing.T, slots []models.TimeSlot, at string) models.TimeSlot {
	t.Helper()
	for _, s := range slots {
		if s.Time == at {
			return s
		}
	}
	t.Fatalf("no slot at %s", at)
	return models.TimeSlot{}
}

func TestBuildEmptyDay(t *testing.T) {
	g := GridBuilder{Policy: testPolicy()}
	slots := g.Build(nil)

	// 09:00 through 23:30 at 30-minute steps.
	require.Len(t, slots, 30)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "23:30", slots[len(slots)-1].Time)

	// Mid-day slots fit every duration.
	noon := slotByTime(t, slots, "12:00")
	assert.True(t, noon.Available)
	assert.Equal(t, []int{1, 2, 3, 4}, noon.AvailableDurations)
	assert.Equal(t, 4, noon.MaxDuration)

	// The last half-hour slot only fits a one-hour session.
	last := slotByTime(t, slots, "23:30")
	assert.True(t, last.Available)
	assert.Equal(t, []int{1}, last.AvailableDurations)
	assert.Equal(t, 1, last.MaxDuration)
}

func TestBuildAroundApprovedReservation(t *testing.T) {
	// One approved reservation 14:00+2h blocks 14:00-16:00.
	sameDay := []models.Reservation{reservationAt("14:00", 2, models.StatusApproved)}
	slots := GridBuilder{Policy: testPolicy()}.Build(sameDay)

	// 13:30: even one hour reaches 14:30, so nothing fits.
	halfPastOne := slotByTime(t, slots, "13:30")
	assert.False(t, halfPastOne.Available)
	assert.Empty(t, halfPastOne.AvailableDurations)
	assert.Equal(t, 0, halfPastOne.MaxDuration)

	// 12:00: two hours end exactly at 14:00, touching the booking but not
	// overlapping it.
	noon := slotByTime(t, slots, "12:00")
	assert.True(t, noon.Available)
	assert.Equal(t, []int{1, 2}, noon.AvailableDurations)
	assert.Equal(t, 2, noon.MaxDuration)

	// Slots inside the blocked window are fully unavailable.
	for _, at := range []string{"14:00", "14:30", "15:00", "15:30"} {
		assert.False(t, slotByTime(t, slots, at).Available, "slot %s", at)
	}

	// 16:00 starts at the block's end and is fully open again.
	four := slotByTime(t, slots, "16:00")
	assert.Equal(t, []int{1, 2, 3, 4}, four.AvailableDurations)
}

func TestBuildIgnoresCancelledReservations(t *testing.T) {
	sameDay := []models.Reservation{reservationAt("10:00", 2, models.StatusCancelled)}
	slots := GridBuilder{Policy: testPolicy()}.Build(sameDay)

	ten := slotByTime(t, slots, "10:00")
	assert.True(t, ten.Available)
	assert.Equal(t, []int{1, 2, 3, 4}, ten.AvailableDurations)
}

func TestBuildIsIdempotent(t *testing.T) {
	sameDay := []models.Reservation{
		reservationAt("09:30", 1, models.StatusPending),
		reservationAt("14:00", 2, models.StatusApproved),
		reservationAt("20:00", 3, models.StatusCancelled),
	}
	g := GridBuilder{Policy: testPolicy()}

	first, err := json.Marshal(g.Build(sameDay))
	require.NoError(t, err)
	second, err := json.Marshal(g.Build(sameDay))
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must produce a byte-identical grid")
}
