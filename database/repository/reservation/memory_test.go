package reservationRepo

import (
	"context"
	"testing"

	"bandroom/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, repo *InMemoryReservationRepo, date, start string, status models.ReservationStatus) string {
	t.Helper()
	res := models.Reservation{
		Date:          date,
		StartTime:     start,
		DurationHours: 2,
		Status:        status,
		BandName:      "Seed Band",
		ContactEmail:  "seed@example.com",
		MembersCount:  2,
	}
	id, err := repo.Insert(context.Background(), &res)
	require.NoError(t, err)
	return id
}

func TestListBlockingFiltersStatuses(t *testing.T) {
	repo := NewInMemoryReservationRepo()
	seed(t, repo, "2026-09-10", "10:00", models.StatusPending)
	seed(t, repo, "2026-09-10", "14:00", models.StatusApproved)
	seed(t, repo, "2026-09-10", "16:00", models.StatusRejected)
	seed(t, repo, "2026-09-10", "18:00", models.StatusCancelled)
	seed(t, repo, "2026-09-11", "10:00", models.StatusPending)

	blocking, err := repo.ListBlocking(context.Background(), "2026-09-10")
	require.NoError(t, err)
	require.Len(t, blocking, 2)
	for _, res := range blocking {
		assert.True(t, res.Status.Blocking())
	}

	all, err := repo.ListByDate(context.Background(), "2026-09-10")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestInsertRejectsOverlappingBlockingReservation(t *testing.T) {
	repo := NewInMemoryReservationRepo()
	seed(t, repo, "2026-09-10", "10:00", models.StatusApproved)

	// Overlaps 10:00-12:00.
	overlap := models.Reservation{
		Date:          "2026-09-10",
		StartTime:     "11:00",
		DurationHours: 2,
		Status:        models.StatusPending,
		BandName:      "Clash Bros",
		ContactEmail:  "clash@example.com",
	}
	_, err := repo.Insert(context.Background(), &overlap)
	assert.ErrorIs(t, err, ErrIntervalConflict)

	// Touching endpoints are legal: the first session ends at 12:00.
	seed(t, repo, "2026-09-10", "12:00", models.StatusPending)

	// Non-blocking rows never conflict, in either direction.
	seed(t, repo, "2026-09-10", "10:30", models.StatusCancelled)
	rejected := models.Reservation{
		Date:          "2026-09-10",
		StartTime:     "10:30",
		DurationHours: 1,
		Status:        models.StatusRejected,
		BandName:      "Turned Away",
		ContactEmail:  "away@example.com",
	}
	_, err = repo.Insert(context.Background(), &rejected)
	assert.NoError(t, err)

	// Same interval on another date is fine.
	seed(t, repo, "2026-09-11", "11:00", models.StatusPending)
}

func TestUpdateStatusAppendsNote(t *testing.T) {
	repo := NewInMemoryReservationRepo()
	id := seed(t, repo, "2026-09-10", "10:00", models.StatusPending)

	updated, err := repo.UpdateStatus(context.Background(), id, models.StatusCancelled, "cancelled: double booking by phone")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, updated.Status)
	assert.Equal(t, "cancelled: double booking by phone", updated.Notes)

	_, err = repo.UpdateStatus(context.Background(), "no-such-id", models.StatusApproved, "")
	assert.Error(t, err)
}

func TestCancelPastPending(t *testing.T) {
	repo := NewInMemoryReservationRepo()
	past := seed(t, repo, "2026-09-01", "10:00", models.StatusPending)
	pastApproved := seed(t, repo, "2026-09-01", "14:00", models.StatusApproved)
	future := seed(t, repo, "2026-09-20", "10:00", models.StatusPending)

	n, err := repo.CancelPastPending(context.Background(), "2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	cancelled, _ := repo.GetByID(context.Background(), past)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)

	// Approved reservations and future pending ones are untouched.
	kept, _ := repo.GetByID(context.Background(), pastApproved)
	assert.Equal(t, models.StatusApproved, kept.Status)
	stillPending, _ := repo.GetByID(context.Background(), future)
	assert.Equal(t, models.StatusPending, stillPending.Status)
}
