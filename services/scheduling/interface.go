package scheduling

import (
	"context"

	"bandroom/models"
)

// Service is the scheduling engine surface the HTTP layer depends on.
type Service interface {
	// Availability computes the slot grid for a date. Read-only.
	Availability(ctx context.Context, date string) ([]models.TimeSlot, error)
	// Create runs the full reservation creation protocol:
	// validate, fetch the day's blocking reservations, conflict-check, insert.
	Create(ctx context.Context, req models.ReservationRequest) (*models.Reservation, error)
}
