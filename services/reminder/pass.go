package reminder

import (
	"context"
	"time"

	"go.uber.org/zap"

	appointmentRepo "careconnect/database/repository/appointment"
	"careconnect/models"
	"careconnect/utils"
)

// Window bounds relative to "now". An appointment can match zero, one, or
// both windows.
const (
	window24hLow  = 23*time.Hour + 30*time.Minute
	window24hHigh = 24*time.Hour + 30*time.Minute
	window2hLow   = 1*time.Hour + 30*time.Minute
	window2hHigh  = 2*time.Hour + 30*time.Minute
)

// Match pairs an appointment with the reminder window it fell into.
type Match struct {
	Appointment models.Appointment
	Type        string
}

// Classify selects the reminder windows for a batch of appointments. Pure;
// the caller supplies "now" so runs are reproducible. Bounds are inclusive.
func Classify(now time.Time, appointments []models.Appointment) []Match {
	var matches []Match
	for _, appt := range appointments {
		lead := appt.StartAt.Sub(now)
		if lead >= window24hLow && lead <= window24hHigh {
			matches = append(matches, Match{Appointment: appt, Type: models.Reminder24h})
		}
		if lead >= window2hLow && lead <= window2hHigh {
			matches = append(matches, Match{Appointment: appt, Type: models.Reminder2h})
		}
	}
	return matches
}

// Scheduler runs the periodic reminder pass over persisted appointments.
// Stateless: no cursor, safe to re-run at-least-once. Deduplication across
// runs lives in the dispatcher, not here.
type Scheduler struct {
	Appointments appointmentRepo.AppointmentRepository
	HorizonHours int
}

func (s *Scheduler) horizon() time.Duration {
	if s.HorizonHours <= 0 {
		return 48 * time.Hour
	}
	return time.Duration(s.HorizonHours) * time.Hour
}

// Run scans pending and confirmed appointments starting within the
// look-ahead horizon and classifies them into reminder windows.
func (s *Scheduler) Run(ctx context.Context, now time.Time) ([]Match, error) {
	logger := utils.GetLogger()

	statuses := []string{models.StatusPendingConfirmation, models.StatusConfirmed}
	candidates, err := s.Appointments.ListUpcoming(ctx, statuses, now, now.Add(s.horizon()))
	if err != nil {
		return nil, err
	}

	matches := Classify(now, candidates)
	logger.Info("reminder pass complete",
		zap.Int("candidates", len(candidates)),
		zap.Int("matches", len(matches)),
	)
	return matches, nil
}

// Items converts matches to the (appointmentId, type) pairs handed to
// callers that do not need the full appointment.
func Items(matches []Match) []models.ReminderItem {
	items := make([]models.ReminderItem, 0, len(matches))
	for _, m := range matches {
		items = append(items, models.ReminderItem{AppointmentID: m.Appointment.ID, Type: m.Type})
	}
	return items
}
