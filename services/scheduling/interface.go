package scheduling

import (
	"context"
	"sync"
	"time"

	appointmentRepo "careconnect/database/repository/appointment"
	availabilityRepo "careconnect/database/repository/availability"
	providerRepo "careconnect/database/repository/provider"
	"careconnect/models"
)

// BookingRequest asks for exactly one slot on one calendar date.
type BookingRequest struct {
	ProviderID string
	PatientID  string
	Date       string    // "2006-01-02", provider-local
	StartAt    time.Time // must exactly match a listed slot start
	VisitType  string
}

// SchedulingService is the booking engine: slot listing, booking, and the
// appointment status state machine.
type SchedulingService interface {
	ListSlots(ctx context.Context, providerID, date string) ([]models.Slot, error)
	Book(ctx context.Context, req BookingRequest) (*models.Appointment, error)
	Transition(ctx context.Context, appointmentID string, action models.TransitionAction, actor models.Identity) (*models.Appointment, error)
}

// DefaultSchedulingEngine implements SchedulingService against the
// repository contracts.
type DefaultSchedulingEngine struct {
	Providers    providerRepo.ProviderRepository
	Availability availabilityRepo.AvailabilityRepository
	Appointments appointmentRepo.AppointmentRepository

	// TZOffsetMinutes maps provider-local rule times to UTC instants; one
	// value for the whole deployment.
	TZOffsetMinutes    int
	DefaultSlotMinutes int

	locks providerLockSet
}

// providerLockSet hands out one mutex per provider so bookings for distinct
// providers never contend.
type providerLockSet struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (s *providerLockSet) get(providerID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locks == nil {
		s.locks = make(map[string]*sync.Mutex)
	}
	l, exists := s.locks[providerID]
	if !exists {
		l = &sync.Mutex{}
		s.locks[providerID] = l
	}
	return l
}
