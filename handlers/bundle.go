// File: careconnect/handlers/bundle.go
package handlers

import (
	appointmentRepo "careconnect/database/repository/appointment"
	availabilityRepo "careconnect/database/repository/availability"
	providerRepo "careconnect/database/repository/provider"
	"careconnect/services/reminder"
	"careconnect/services/scheduling"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Engine       scheduling.SchedulingService
	Availability availabilityRepo.AvailabilityRepository
	Appointments appointmentRepo.AppointmentRepository
	Providers    providerRepo.ProviderRepository
	Reminders    *reminder.Scheduler
}

// NewHandlerBundle wires the handler set against its services.
func NewHandlerBundle(
	engine scheduling.SchedulingService,
	availability availabilityRepo.AvailabilityRepository,
	appointments appointmentRepo.AppointmentRepository,
	providers providerRepo.ProviderRepository,
	reminders *reminder.Scheduler,
) *HandlerBundle {
	return &HandlerBundle{
		Engine:       engine,
		Availability: availability,
		Appointments: appointments,
		Providers:    providers,
		Reminders:    reminders,
	}
}
