package models

import "time"

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusApproved  ReservationStatus = "approved"
	StatusRejected  ReservationStatus = "rejected"
	StatusCancelled ReservationStatus = "cancelled"
)

// Blocking reports whether a reservation in this status occupies its time
// interval. Only pending and approved reservations participate in conflict
// checks; rejected and cancelled ones never block.
func (s ReservationStatus) Blocking() bool {
	return s == StatusPending || s == StatusApproved
}

// Valid reports whether s is one of the four known statuses.
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Reservation is a booked interval of the rehearsal room.
type Reservation struct {
	ID            string            `bson:"id" json:"id"`                         // assigned by the store on insert
	Date          string            `bson:"date" json:"date"`                     // "YYYY-MM-DD", facility-local
	StartTime     string            `bson:"startTime" json:"startTime"`           // "HH:MM", aligned to the slot granularity
	DurationHours int               `bson:"durationHours" json:"durationHours"`   // one of the configured allowed durations
	Status        ReservationStatus `bson:"status" json:"status"`
	BandName      string            `bson:"bandName" json:"bandName"`
	ContactEmail  string            `bson:"contactEmail" json:"contactEmail"`
	Phone         string            `bson:"phone,omitempty" json:"phone,omitempty"`
	MembersCount  int               `bson:"membersCount" json:"membersCount"`
	Notes         string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time         `bson:"updatedAt" json:"updatedAt"`
}
