package notification

import (
	"encoding/json"

	"bandroom/models"

	"github.com/hibiken/asynq"
)

const TypeReservationCreated = "reservation:created"

// ReservationCreatedPayload is the task body for a new pending reservation.
type ReservationCreatedPayload struct {
	ReservationID string `json:"reservationId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	DurationHours int    `json:"durationHours"`
	BandName      string `json:"bandName"`
	ContactEmail  string `json:"contactEmail"`
}

// NewReservationCreatedTask builds the asynq task announcing a new booking to staff.
func NewReservationCreatedTask(res models.Reservation) (*asynq.Task, error) {
	payload := ReservationCreatedPayload{
		ReservationID: res.ID,
		Date:          res.Date,
		StartTime:     res.StartTime,
		DurationHours: res.DurationHours,
		BandName:      res.BandName,
		ContactEmail:  res.ContactEmail,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeReservationCreated, b), nil
}
