// File: database/repository/reservation/reservation_mongo.go
package reservationRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bandroom/models"
)

var blockingStatuses = []models.ReservationStatus{models.StatusPending, models.StatusApproved}

func (r *mongoReservationRepo) ListBlocking(ctx context.Context, date string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"date":   date,
		"status": bson.M{"$in": blockingStatuses},
	}
	return r.list(ctx, filter)
}

func (r *mongoReservationRepo) ListByDate(ctx context.Context, date string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.list(ctx, bson.M{"date": date})
}

func (r *mongoReservationRepo) list(ctx context.Context, filter bson.M) ([]models.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return reservations, nil
}

func (r *mongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var res models.Reservation
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&res)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("reservation %s not found", id)
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &res, nil
}

func (r *mongoReservationRepo) Insert(ctx context.Context, res *models.Reservation) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	now := time.Now()
	res.CreatedAt = now
	res.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, res); err != nil {
		return "", fmt.Errorf("failed to insert reservation: %w", err)
	}
	return res.ID, nil
}

func (r *mongoReservationRepo) UpdateStatus(ctx context.Context, id string, status models.ReservationStatus, noteAppend string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}
	update := bson.M{"$set": set}
	if noteAppend != "" {
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		notes := current.Notes
		if notes != "" {
			notes = strings.TrimRight(notes, "\n") + "\n"
		}
		set["notes"] = notes + noteAppend
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Reservation
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("reservation %s not found", id)
		}
		return nil, fmt.Errorf("failed to update reservation status: %w", err)
	}
	return &updated, nil
}

// CancelPastPending marks pending reservations dated strictly before today as
// cancelled. Used by the nightly sweep.
func (r *mongoReservationRepo) CancelPastPending(ctx context.Context, today string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"status": models.StatusPending,
		"date":   bson.M{"$lt": today},
	}
	update := bson.M{"$set": bson.M{
		"status":    models.StatusCancelled,
		"updatedAt": time.Now(),
	}}
	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel past pending reservations: %w", err)
	}
	return res.ModifiedCount, nil
}
