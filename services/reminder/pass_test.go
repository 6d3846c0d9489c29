package reminder

import (
	"context"
	"testing"
	"time"

	appointmentRepo "careconnect/database/repository/appointment"
	"careconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

var testNow = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

func upcomingAppt(id string, status string, lead time.Duration) models.Appointment {
	return models.Appointment{
		ID:         id,
		ProviderID: "prov-1",
		PatientID:  "pat-1",
		Status:     status,
		StartAt:    testNow.Add(lead),
		EndAt:      testNow.Add(lead + 20*time.Minute),
	}
}

func TestClassifyWindows(t *testing.T) {
	cases := []struct {
		name string
		lead time.Duration
		want []string
	}{
		{"well inside 24h window", 24*time.Hour + 10*time.Minute, []string{models.Reminder24h}},
		{"24h lower bound inclusive", 23*time.Hour + 30*time.Minute, []string{models.Reminder24h}},
		{"24h upper bound inclusive", 24*time.Hour + 30*time.Minute, []string{models.Reminder24h}},
		{"just under 24h window", 23*time.Hour + 29*time.Minute, nil},
		{"just over 24h window", 24*time.Hour + 31*time.Minute, nil},
		{"well inside 2h window", 2 * time.Hour, []string{models.Reminder2h}},
		{"2h lower bound inclusive", 1*time.Hour + 30*time.Minute, []string{models.Reminder2h}},
		{"2h upper bound inclusive", 2*time.Hour + 30*time.Minute, []string{models.Reminder2h}},
		{"between the windows", 30 * time.Hour, nil},
		{"already started", -10 * time.Minute, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appt := upcomingAppt("a1", models.StatusConfirmed, tc.lead)
			matches := Classify(testNow, []models.Appointment{appt})

			var got []string
			for _, m := range matches {
				got = append(got, m.Type)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassifyMultipleAppointments(t *testing.T) {
	appts := []models.Appointment{
		upcomingAppt("a1", models.StatusConfirmed, 24*time.Hour),
		upcomingAppt("a2", models.StatusPendingConfirmation, 2*time.Hour),
		upcomingAppt("a3", models.StatusConfirmed, 40*time.Hour),
	}

	matches := Classify(testNow, appts)
	require.Len(t, matches, 2)
	assert.Equal(t, "a1", matches[0].Appointment.ID)
	assert.Equal(t, models.Reminder24h, matches[0].Type)
	assert.Equal(t, "a2", matches[1].Appointment.ID)
	assert.Equal(t, models.Reminder2h, matches[1].Type)
}

// fakeUpcomingRepo backs Scheduler.Run with a fixed appointment list.
type fakeUpcomingRepo struct {
	appointments []models.Appointment
	gotStatuses  []string
	gotFrom      time.Time
	gotTo        time.Time
}

func (f *fakeUpcomingRepo) ListUpcoming(ctx context.Context, statuses []string, from, to time.Time) ([]models.Appointment, error) {
	f.gotStatuses, f.gotFrom, f.gotTo = statuses, from, to

	allowed := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		allowed[s] = true
	}
	var out []models.Appointment
	for _, a := range f.appointments {
		if allowed[a.Status] && !a.StartAt.Before(from) && !a.StartAt.After(to) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeUpcomingRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeUpcomingRepo) GetOccupying(ctx context.Context, providerID string, from, to time.Time) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeUpcomingRepo) InsertIfFree(ctx context.Context, appt *models.Appointment) error {
	return nil
}
func (f *fakeUpcomingRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeUpcomingRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeUpcomingRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeUpcomingRepo) EnsureIndexes() error { return nil }

var _ appointmentRepo.AppointmentRepository = (*fakeUpcomingRepo)(nil)

func TestSchedulerRunQueriesHorizon(t *testing.T) {
	repo := &fakeUpcomingRepo{appointments: []models.Appointment{
		upcomingAppt("a1", models.StatusConfirmed, 24*time.Hour),
		upcomingAppt("a2", models.StatusCancelled, 24*time.Hour),
		upcomingAppt("a3", models.StatusConfirmed, 60*time.Hour),
	}}
	s := &Scheduler{Appointments: repo}

	matches, err := s.Run(context.Background(), testNow)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{models.StatusPendingConfirmation, models.StatusConfirmed}, repo.gotStatuses)
	assert.Equal(t, testNow, repo.gotFrom)
	assert.Equal(t, testNow.Add(48*time.Hour), repo.gotTo, "default horizon is 48h")

	// Cancelled and beyond-horizon appointments never reach Classify.
	require.Len(t, matches, 1)
	assert.Equal(t, "a1", matches[0].Appointment.ID)
}

func TestSchedulerCustomHorizon(t *testing.T) {
	repo := &fakeUpcomingRepo{}
	s := &Scheduler{Appointments: repo, HorizonHours: 24}

	_, err := s.Run(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(24*time.Hour), repo.gotTo)
}

func TestItems(t *testing.T) {
	matches := []Match{
		{Appointment: upcomingAppt("a1", models.StatusConfirmed, 24*time.Hour), Type: models.Reminder24h},
		{Appointment: upcomingAppt("a2", models.StatusConfirmed, 2*time.Hour), Type: models.Reminder2h},
	}

	items := Items(matches)
	require.Len(t, items, 2)
	assert.Equal(t, models.ReminderItem{AppointmentID: "a1", Type: models.Reminder24h}, items[0])
	assert.Equal(t, models.ReminderItem{AppointmentID: "a2", Type: models.Reminder2h}, items[1])
}
