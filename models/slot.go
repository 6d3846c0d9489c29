package models

import "time"

// Slot is a bookable half-open interval [StartAt, EndAt). Slots are derived
// from rules and exceptions on every request and are never persisted;
// caching them across writes would reintroduce double-booking.
type Slot struct {
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
}

// Overlaps reports strict half-open interval overlap with an appointment.
// Back-to-back intervals do not overlap.
func (s Slot) Overlaps(start, end time.Time) bool {
	return s.StartAt.Before(end) && s.EndAt.After(start)
}
