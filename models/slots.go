package models

// TimeSlot is one entry of the availability grid: a candidate start time and
// the durations that fit there. Derived on every query, never persisted.
type TimeSlot struct {
	Time               string `json:"time"` // "HH:MM"
	Available          bool   `json:"available"`
	AvailableDurations []int  `json:"availableDurations"`
	MaxDuration        int    `json:"maxDuration"` // 0 when nothing fits
}

// AvailabilityResponse is the payload returned by the availability query.
type AvailabilityResponse struct {
	Date  string     `json:"date"`
	Slots []TimeSlot `json:"slots"`
}
