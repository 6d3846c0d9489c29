package scheduling

import "careconnect/models"

// ValidateRule checks the weekly-rule invariants before persistence:
// weekday in range, well-formed clock times, start strictly before end.
func ValidateRule(rule models.AvailabilityRule) error {
	if rule.DayOfWeek < 0 || rule.DayOfWeek > 6 {
		return NewErrorf(CodeValidation, "dayOfWeek %d out of range 0-6", rule.DayOfWeek)
	}
	start, err := ParseClock(rule.StartTime)
	if err != nil {
		return err
	}
	end, err := ParseClock(rule.EndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return NewErrorf(CodeValidation, "rule startTime %s must precede endTime %s", rule.StartTime, rule.EndTime)
	}
	if rule.SlotMinutes < 0 {
		return NewErrorf(CodeValidation, "slotMinutes must not be negative")
	}
	return nil
}

// ValidateException checks a date exception: valid date, and when the
// exception overrides the window rather than closing the day, well-formed
// clock times with start before end.
func ValidateException(ex models.AvailabilityException) error {
	if _, err := ParseDate(ex.Date); err != nil {
		return err
	}
	if ex.Closed {
		return nil
	}
	if ex.StartTime == "" && ex.EndTime == "" {
		return NewError(CodeValidation, "exception needs closed=true or an override window")
	}
	start, err := ParseClock(ex.StartTime)
	if err != nil {
		return err
	}
	end, err := ParseClock(ex.EndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return NewErrorf(CodeValidation, "exception startTime %s must precede endTime %s", ex.StartTime, ex.EndTime)
	}
	return nil
}
