package scheduling

import (
	"context"
	"sync"
	"time"

	appointmentRepo "careconnect/database/repository/appointment"
	"careconnect/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory repository fakes backing the engine tests.

type fakeProviderRepo struct {
	providers map[string]models.Provider
}

func (f *fakeProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	p, ok := f.providers[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &p, nil
}

func (f *fakeProviderRepo) ListApproved(ctx context.Context) ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range f.providers {
		if p.Bookable() {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeAvailabilityRepo struct {
	rules      []models.AvailabilityRule
	exceptions []models.AvailabilityException
}

func (f *fakeAvailabilityRepo) GetRules(ctx context.Context, providerID string) ([]models.AvailabilityRule, error) {
	var out []models.AvailabilityRule
	for _, r := range f.rules {
		if r.ProviderID == providerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) GetExceptions(ctx context.Context, providerID string) ([]models.AvailabilityException, error) {
	var out []models.AvailabilityException
	for _, ex := range f.exceptions {
		if ex.ProviderID == providerID {
			out = append(out, ex)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) ReplaceRules(ctx context.Context, providerID string, rules []models.AvailabilityRule) error {
	kept := f.rules[:0]
	for _, r := range f.rules {
		if r.ProviderID != providerID {
			kept = append(kept, r)
		}
	}
	f.rules = append(kept, rules...)
	return nil
}

func (f *fakeAvailabilityRepo) UpsertException(ctx context.Context, ex models.AvailabilityException) error {
	for i := range f.exceptions {
		if f.exceptions[i].ProviderID == ex.ProviderID && f.exceptions[i].Date == ex.Date {
			f.exceptions[i] = ex
			return nil
		}
	}
	f.exceptions = append(f.exceptions, ex)
	return nil
}

func (f *fakeAvailabilityRepo) DeleteException(ctx context.Context, providerID, date string) error {
	kept := f.exceptions[:0]
	for _, ex := range f.exceptions {
		if !(ex.ProviderID == providerID && ex.Date == date) {
			kept = append(kept, ex)
		}
	}
	f.exceptions = kept
	return nil
}

func (f *fakeAvailabilityRepo) EnsureIndexes() error { return nil }

// fakeAppointmentRepo mirrors the store's transactional overlap check: the
// mutex stands in for the transaction, so concurrent InsertIfFree calls see
// each other's writes.
type fakeAppointmentRepo struct {
	mu           sync.Mutex
	appointments []models.Appointment
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.appointments {
		if a.ID == id {
			out := a
			return &out, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeAppointmentRepo) GetOccupying(ctx context.Context, providerID string, from, to time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.ProviderID == providerID && a.Occupies() && a.StartAt.Before(to) && a.EndAt.After(from) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) InsertIfFree(ctx context.Context, appt *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.appointments {
		if a.ProviderID == appt.ProviderID && a.Occupies() &&
			a.StartAt.Before(appt.EndAt) && a.EndAt.After(appt.StartAt) {
			return appointmentRepo.ErrSlotTaken
		}
	}
	f.appointments = append(f.appointments, *appt)
	return nil
}

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			f.appointments[i].Status = status
			f.appointments[i].UpdatedAt = time.Now().UTC()
			out := f.appointments[i]
			return &out, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.ProviderID == providerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListUpcoming(ctx context.Context, statuses []string, from, to time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
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

func (f *fakeAppointmentRepo) EnsureIndexes() error { return nil }

// newTestEngine wires an engine over empty fakes with one approved provider.
func newTestEngine() (*DefaultSchedulingEngine, *fakeProviderRepo, *fakeAvailabilityRepo, *fakeAppointmentRepo) {
	provs := &fakeProviderRepo{providers: map[string]models.Provider{
		"prov-1": {
			ID:       "prov-1",
			Name:     "Dr. Adler",
			Status:   models.ProviderStatusApproved,
			PriceMin: 120,
		},
		"prov-pending": {
			ID:     "prov-pending",
			Name:   "Dr. Brandt",
			Status: models.ProviderStatusPending,
		},
	}}
	avail := &fakeAvailabilityRepo{}
	appts := &fakeAppointmentRepo{}
	engine := &DefaultSchedulingEngine{
		Providers:          provs,
		Availability:       avail,
		Appointments:       appts,
		TZOffsetMinutes:    60,
		DefaultSlotMinutes: 20,
	}
	return engine, provs, avail, appts
}
