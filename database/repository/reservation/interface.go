// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"
	"errors"

	"bandroom/database"
	"bandroom/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrIntervalConflict is returned by Insert when the reservation's interval
// overlaps an existing blocking reservation on the same date. Callers map it
// to their unavailable result rather than retrying.
var ErrIntervalConflict = errors.New("reservation interval conflicts with an existing booking")

// ReservationRepository is the store the scheduling engine writes through.
// ListBlocking returns only pending/approved reservations; Insert assigns the
// ID and persists with whatever status the caller set.
type ReservationRepository interface {
	ListBlocking(ctx context.Context, date string) ([]models.Reservation, error)
	ListByDate(ctx context.Context, date string) ([]models.Reservation, error)
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	Insert(ctx context.Context, res *models.Reservation) (string, error)
	UpdateStatus(ctx context.Context, id string, status models.ReservationStatus, noteAppend string) (*models.Reservation, error)
	CancelPastPending(ctx context.Context, today string) (int64, error)
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a new MongoDB ReservationRepository.
func NewMongoReservationRepo() ReservationRepository {
	db := database.MongoClient.Database("bandroom")
	return &mongoReservationRepo{
		coll: db.Collection("reservations"),
	}
}
