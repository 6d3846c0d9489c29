package scheduling

import (
	"context"
	"testing"
	"time"

	"careconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAppointment(appts *fakeAppointmentRepo, status string) models.Appointment {
	appt := models.Appointment{
		ID:         "appt-1",
		ProviderID: "prov-1",
		PatientID:  "pat-1",
		StartAt:    time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		EndAt:      time.Date(2025, 6, 2, 10, 20, 0, 0, time.UTC),
		Status:     status,
	}
	appts.appointments = []models.Appointment{appt}
	return appt
}

var (
	owningPatient  = models.Identity{ID: "pat-1", Role: models.RolePatient}
	owningProvider = models.Identity{ID: "prov-1", Role: models.RoleProvider}
	otherPatient   = models.Identity{ID: "pat-2", Role: models.RolePatient}
	otherProvider  = models.Identity{ID: "prov-2", Role: models.RoleProvider}
	admin          = models.Identity{ID: "adm-1", Role: models.RoleAdmin}
)

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		from     string
		action   models.TransitionAction
		to       string
		wantCode string
	}{
		{models.StatusPendingConfirmation, models.ActionConfirm, models.StatusConfirmed, ""},
		{models.StatusPendingConfirmation, models.ActionCancel, models.StatusCancelled, ""},
		{models.StatusPendingConfirmation, models.ActionComplete, "", CodeInvalidTransition},
		{models.StatusPendingConfirmation, models.ActionNoShow, "", CodeInvalidTransition},
		{models.StatusConfirmed, models.ActionComplete, models.StatusCompleted, ""},
		{models.StatusConfirmed, models.ActionNoShow, models.StatusNoShow, ""},
		{models.StatusConfirmed, models.ActionCancel, models.StatusCancelled, ""},
		{models.StatusConfirmed, models.ActionConfirm, "", CodeInvalidTransition},
		{models.StatusCompleted, models.ActionCancel, "", CodeInvalidTransition},
		{models.StatusNoShow, models.ActionCancel, "", CodeInvalidTransition},
		{models.StatusCancelled, models.ActionCancel, "", CodeInvalidTransition},
		{models.StatusCancelled, models.ActionConfirm, "", CodeInvalidTransition},
		{models.StatusCancelled, models.ActionComplete, "", CodeInvalidTransition},
		{models.StatusCancelled, models.ActionNoShow, "", CodeInvalidTransition},
	}

	for _, tc := range cases {
		t.Run(tc.from+"_"+string(tc.action), func(t *testing.T) {
			engine, _, _, appts := newTestEngine()
			seedAppointment(appts, tc.from)

			updated, err := engine.Transition(context.Background(), "appt-1", tc.action, admin)
			if tc.wantCode != "" {
				assert.True(t, IsCode(err, tc.wantCode), "got %v", err)
				stored, _ := appts.GetByID(context.Background(), "appt-1")
				assert.Equal(t, tc.from, stored.Status, "failed transition must not persist")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, updated.Status)
		})
	}
}

func TestTransitionAuthorization(t *testing.T) {
	cases := []struct {
		name    string
		action  models.TransitionAction
		actor   models.Identity
		allowed bool
	}{
		{"patient cancels own", models.ActionCancel, owningPatient, true},
		{"provider cancels own", models.ActionCancel, owningProvider, true},
		{"admin cancels", models.ActionCancel, admin, true},
		{"other patient cancels", models.ActionCancel, otherPatient, false},
		{"other provider cancels", models.ActionCancel, otherProvider, false},
		{"provider confirms own", models.ActionConfirm, owningProvider, true},
		{"admin confirms", models.ActionConfirm, admin, true},
		{"patient confirms own", models.ActionConfirm, owningPatient, false},
		{"other provider confirms", models.ActionConfirm, otherProvider, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine, _, _, appts := newTestEngine()
			seedAppointment(appts, models.StatusPendingConfirmation)

			_, err := engine.Transition(context.Background(), "appt-1", tc.action, tc.actor)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.True(t, IsCode(err, CodeForbidden), "got %v", err)
			}
		})
	}
}

func TestTransitionCompleteAndNoShowAreProviderOnly(t *testing.T) {
	for _, action := range []models.TransitionAction{models.ActionComplete, models.ActionNoShow} {
		engine, _, _, appts := newTestEngine()
		seedAppointment(appts, models.StatusConfirmed)

		_, err := engine.Transition(context.Background(), "appt-1", action, owningPatient)
		assert.Truef(t, IsCode(err, CodeForbidden), "%s by patient: got %v", action, err)

		_, err = engine.Transition(context.Background(), "appt-1", action, owningProvider)
		assert.NoErrorf(t, err, "%s by owning provider", action)
	}
}

func TestTransitionUnknownAppointment(t *testing.T) {
	engine, _, _, _ := newTestEngine()

	_, err := engine.Transition(context.Background(), "nope", models.ActionCancel, admin)
	assert.True(t, IsCode(err, CodeNotFound))
}

func TestTransitionAuthorizationBeforeValidity(t *testing.T) {
	// A foreign actor on a terminal appointment gets forbidden, not
	// invalid_transition; existence and authorization are checked first.
	engine, _, _, appts := newTestEngine()
	seedAppointment(appts, models.StatusCancelled)

	_, err := engine.Transition(context.Background(), "appt-1", models.ActionCancel, otherPatient)
	assert.True(t, IsCode(err, CodeForbidden))
}

func TestCancelFreesSlotForRebooking(t *testing.T) {
	engine, _, avail, appts := newTestEngine()
	avail.rules = []models.AvailabilityRule{mondayRule(20)}
	seedAppointment(appts, models.StatusConfirmed)

	slots, err := engine.ListSlots(context.Background(), "prov-1", testMonday)
	require.NoError(t, err)
	require.Len(t, slots, 23)

	_, err = engine.Transition(context.Background(), "appt-1", models.ActionCancel, owningPatient)
	require.NoError(t, err)

	slots, err = engine.ListSlots(context.Background(), "prov-1", testMonday)
	require.NoError(t, err)
	assert.Len(t, slots, 24)
}
