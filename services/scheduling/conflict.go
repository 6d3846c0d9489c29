package scheduling

import (
	"sort"

	"careconnect/models"
)

// FilterConflicts drops every candidate slot claimed by a non-cancelled
// appointment and returns the survivors sorted ascending by start instant.
// The ordering is the caller-facing contract.
//
// Occupancy uses strict half-open overlap: a candidate is claimed iff
// candidate.StartAt < appt.EndAt && candidate.EndAt > appt.StartAt, so
// back-to-back intervals touching at a boundary stay free.
func FilterConflicts(candidates []models.Slot, appointments []models.Appointment) []models.Slot {
	available := make([]models.Slot, 0, len(candidates))
	for _, slot := range candidates {
		claimed := false
		for _, appt := range appointments {
			if !appt.Occupies() {
				continue
			}
			if slot.Overlaps(appt.StartAt, appt.EndAt) {
				claimed = true
				break
			}
		}
		if !claimed {
			available = append(available, slot)
		}
	}

	sort.Slice(available, func(i, j int) bool {
		return available[i].StartAt.Before(available[j].StartAt)
	})
	return available
}
