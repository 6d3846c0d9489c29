// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"careconnect/database"
	"careconnect/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned by InsertIfFree when the requested interval is
// already claimed by a non-cancelled appointment for the same provider.
var ErrSlotTaken = errors.New("appointment interval already taken")

// AppointmentRepository is the persistence contract of the booking engine.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// GetOccupying returns every non-cancelled appointment for the provider
	// overlapping [from, to).
	GetOccupying(ctx context.Context, providerID string, from, to time.Time) ([]models.Appointment, error)
	// InsertIfFree inserts the appointment only if no non-cancelled
	// appointment of the same provider overlaps it; returns ErrSlotTaken
	// otherwise. The overlap re-check and the insert happen in one
	// transaction.
	InsertIfFree(ctx context.Context, appt *models.Appointment) error
	UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Appointment, error)
	// ListUpcoming returns appointments in any of the given statuses with
	// StartAt inside [from, to]. Used by the reminder pass.
	ListUpcoming(ctx context.Context, statuses []string, from, to time.Time) ([]models.Appointment, error)
	EnsureIndexes() error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}
