package models

import "time"

// Appointment statuses. CANCELLED is the only status that releases the
// booked interval; every other status keeps it occupied.
const (
	StatusPendingConfirmation = "PENDING_CONFIRMATION"
	StatusConfirmed           = "CONFIRMED"
	StatusCompleted           = "COMPLETED"
	StatusNoShow              = "NO_SHOW"
	StatusCancelled           = "CANCELLED"
)

// OccupyingStatuses lists every status that still claims the appointment's
// time interval. Used by the conflict filter and the insert-if-free check.
func OccupyingStatuses() []string {
	return []string{StatusPendingConfirmation, StatusConfirmed, StatusCompleted, StatusNoShow}
}

// Appointment is a booked visit. Created only through the booking engine,
// mutated only through status transitions, never deleted.
type Appointment struct {
	ID             string    `bson:"id" json:"id"`
	ProviderID     string    `bson:"providerId" json:"providerId"`
	PatientID      string    `bson:"patientId" json:"patientId"`
	StartAt        time.Time `bson:"startAt" json:"startAt"` // UTC instant
	EndAt          time.Time `bson:"endAt" json:"endAt"`     // UTC instant
	Status         string    `bson:"status" json:"status"`
	VisitType      string    `bson:"visitType" json:"visitType"` // e.g. "in_person", "video"
	PriceAtBooking float64   `bson:"priceAtBooking" json:"priceAtBooking"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Occupies reports whether the appointment still claims its interval.
func (a Appointment) Occupies() bool {
	return a.Status != StatusCancelled
}

// TransitionAction is a requested status change on an appointment.
type TransitionAction string

const (
	ActionCancel   TransitionAction = "CANCEL"
	ActionConfirm  TransitionAction = "CONFIRM"
	ActionComplete TransitionAction = "COMPLETE"
	ActionNoShow   TransitionAction = "NO_SHOW"
)
