package scheduling

import (
	"time"

	"careconnect/models"
)

const dateLayout = "2006-01-02"

// ParseDate validates and parses a "YYYY-MM-DD" calendar date.
func ParseDate(date string) (time.Time, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, NewErrorf(CodeValidation, "invalid date %q, want YYYY-MM-DD", date)
	}
	return d, nil
}

// ParseClock validates and parses a provider-local "HH:MM" time of day,
// returning minutes from midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, NewErrorf(CodeValidation, "invalid time %q, want HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// GenerateSlots produces the candidate slots for one provider and calendar
// date from the weekly rules and date exceptions. Pure: no store access, no
// shared state, safe under unlimited concurrent invocation.
//
// Rule and exception times are provider-local; tzOffsetMinutes maps them to
// UTC instants. Rules sharing a weekday are concatenated rather than merged,
// so overlapping rule windows may yield overlapping candidates. The output
// is unordered; ordering is established after conflict filtering.
func GenerateSlots(
	date string,
	rules []models.AvailabilityRule,
	exceptions []models.AvailabilityException,
	tzOffsetMinutes int,
	defaultSlotMinutes int,
) ([]models.Slot, error) {
	localDay, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	// The weekday comes from the local calendar date. Shifting to UTC first
	// moves dates near midnight across the day boundary for non-zero offsets.
	weekday := int(localDay.Weekday())

	var ex *models.AvailabilityException
	for i := range exceptions {
		if exceptions[i].Date == date {
			ex = &exceptions[i]
			break
		}
	}
	if ex != nil && ex.Closed {
		return nil, nil
	}

	offset := time.Duration(tzOffsetMinutes) * time.Minute

	var slots []models.Slot
	for _, rule := range rules {
		if rule.DayOfWeek != weekday {
			continue
		}

		startClock, endClock := rule.StartTime, rule.EndTime
		if ex != nil {
			if ex.StartTime != "" {
				startClock = ex.StartTime
			}
			if ex.EndTime != "" {
				endClock = ex.EndTime
			}
		}

		startMin, err := ParseClock(startClock)
		if err != nil {
			return nil, err
		}
		endMin, err := ParseClock(endClock)
		if err != nil {
			return nil, err
		}

		slotMinutes := rule.SlotMinutes
		if slotMinutes <= 0 {
			slotMinutes = defaultSlotMinutes
		}
		dur := time.Duration(slotMinutes) * time.Minute

		windowStart := localDay.Add(time.Duration(startMin) * time.Minute).Add(-offset)
		windowEnd := localDay.Add(time.Duration(endMin) * time.Minute).Add(-offset)

		// Step by the slot duration; a trailing partial slot is dropped.
		for t := windowStart; !t.Add(dur).After(windowEnd); t = t.Add(dur) {
			slots = append(slots, models.Slot{StartAt: t, EndAt: t.Add(dur)})
		}
	}

	return slots, nil
}
