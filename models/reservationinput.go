package models

// ReservationRequest is the raw payload of a booking attempt, exactly as the
// client sent it. Normalization happens in the scheduling validator, not here;
// gin binding only enforces presence of the shape.
type ReservationRequest struct {
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	DurationHours int    `json:"durationHours"`
	BandName      string `json:"bandName"`
	ContactEmail  string `json:"contactEmail"`
	Phone         string `json:"phone,omitempty"`
	MembersCount  int    `json:"membersCount,omitempty"` // defaults to 1 when absent
	Notes         string `json:"notes,omitempty"`
}

// StatusUpdateRequest is the staff payload for a status transition.
type StatusUpdateRequest struct {
	Status ReservationStatus `json:"status" binding:"required"`
	Note   string            `json:"note,omitempty"` // appended to the reservation notes on cancellation
}
