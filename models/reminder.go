package models

// Reminder window types emitted by the reminder pass.
const (
	Reminder24h = "24h"
	Reminder2h  = "2h"
)

// ReminderItem pairs an appointment with the window it matched. One pass
// may select an appointment for zero, one, or both windows.
type ReminderItem struct {
	AppointmentID string `json:"appointmentId"`
	Type          string `json:"type"` // "24h" or "2h"
}

// ReminderPayload is the asynq task body handed to the notification worker.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	Type          string `json:"type"`
	PatientID     string `json:"patientId"`
	ProviderName  string `json:"providerName"`
	StartAt       string `json:"startAt"` // RFC 3339
}
