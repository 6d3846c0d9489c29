package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	appointmentRepo "careconnect/database/repository/appointment"
	"careconnect/models"
	"careconnect/utils"
)

// ListSlots returns the bookable slots for one provider and date, ordered
// ascending by start. Every call recomputes from current appointment state;
// nothing is cached between requests.
func (se *DefaultSchedulingEngine) ListSlots(ctx context.Context, providerID, date string) ([]models.Slot, error) {
	if providerID == "" {
		return nil, NewError(CodeValidation, "providerId is required")
	}
	if _, err := se.providerBookable(ctx, providerID); err != nil {
		return nil, err
	}
	return se.computeSlots(ctx, providerID, date)
}

// computeSlots is the shared listing path: generate candidates from
// rules+exceptions, then drop everything claimed by an occupying appointment.
func (se *DefaultSchedulingEngine) computeSlots(ctx context.Context, providerID, date string) ([]models.Slot, error) {
	localDay, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	rules, err := se.Availability.GetRules(ctx, providerID)
	if err != nil {
		return nil, NewErrorf(CodeStore, "reading availability rules: %v", err)
	}
	exceptions, err := se.Availability.GetExceptions(ctx, providerID)
	if err != nil {
		return nil, NewErrorf(CodeStore, "reading availability exceptions: %v", err)
	}

	candidates, err := GenerateSlots(date, rules, exceptions, se.TZOffsetMinutes, se.DefaultSlotMinutes)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []models.Slot{}, nil
	}

	// Query window: the local day shifted to UTC, padded by a day on each
	// side so offset-shifted appointments are never missed.
	offset := time.Duration(se.TZOffsetMinutes) * time.Minute
	from := localDay.Add(-offset).Add(-24 * time.Hour)
	to := localDay.Add(-offset).Add(48 * time.Hour)

	occupying, err := se.Appointments.GetOccupying(ctx, providerID, from, to)
	if err != nil {
		return nil, NewErrorf(CodeStore, "reading occupying appointments: %v", err)
	}

	return FilterConflicts(candidates, occupying), nil
}

// providerBookable loads the provider and requires the approved state.
func (se *DefaultSchedulingEngine) providerBookable(ctx context.Context, providerID string) (*models.Provider, error) {
	prov, err := se.Providers.GetByID(ctx, providerID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, NewErrorf(CodeNotFound, "provider %s not found", providerID)
		}
		return nil, NewErrorf(CodeStore, "reading provider: %v", err)
	}
	if !prov.Bookable() {
		return nil, NewErrorf(CodeNotFound, "provider %s not found", providerID)
	}
	return prov, nil
}

// Book validates and commits a booking. The slot list is recomputed at
// request time against current appointment state; a previously fetched list
// is never trusted. The whole recompute-and-insert runs under the
// provider's lock, and the store re-validates the overlap once more inside
// its transaction.
func (se *DefaultSchedulingEngine) Book(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if req.ProviderID == "" || req.PatientID == "" {
		return nil, NewError(CodeValidation, "providerId and patientId are required")
	}
	if req.StartAt.IsZero() {
		return nil, NewError(CodeValidation, "startAt is required")
	}
	if _, err := ParseDate(req.Date); err != nil {
		return nil, err
	}

	prov, err := se.providerBookable(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}

	lock := se.locks.get(req.ProviderID)
	lock.Lock()
	defer lock.Unlock()

	slots, err := se.computeSlots(ctx, req.ProviderID, req.Date)
	if err != nil {
		return nil, err
	}

	var chosen *models.Slot
	for i := range slots {
		if slots[i].StartAt.Equal(req.StartAt) {
			chosen = &slots[i]
			break
		}
	}
	if chosen == nil {
		return nil, NewErrorf(CodeSlotUnavailable, "slot %s is not available", req.StartAt.UTC().Format(time.RFC3339))
	}

	visitType := req.VisitType
	if visitType == "" {
		visitType = "in_person"
	}

	now := time.Now().UTC()
	appt := &models.Appointment{
		ID:         uuid.New().String(),
		ProviderID: req.ProviderID,
		PatientID:  req.PatientID,
		StartAt:    chosen.StartAt,
		EndAt:      chosen.EndAt,
		Status:     models.StatusPendingConfirmation,
		VisitType:  visitType,
		// Snapshot of the provider's current minimum price; later price
		// changes never touch existing bookings.
		PriceAtBooking: prov.PriceMin,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := se.Appointments.InsertIfFree(ctx, appt); err != nil {
		if err == appointmentRepo.ErrSlotTaken {
			return nil, NewErrorf(CodeSlotUnavailable, "slot %s was just taken", req.StartAt.UTC().Format(time.RFC3339))
		}
		return nil, NewErrorf(CodeStore, "inserting appointment: %v", err)
	}

	logger.Info("appointment booked",
		zap.String("appointmentId", appt.ID),
		zap.String("providerId", appt.ProviderID),
		zap.String("patientId", appt.PatientID),
		zap.Time("startAt", appt.StartAt),
	)
	return appt, nil
}
