package scheduling

import (
	"testing"

	"careconnect/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateRule(t *testing.T) {
	good := models.AvailabilityRule{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", SlotMinutes: 20}
	assert.NoError(t, ValidateRule(good))

	bad := good
	bad.DayOfWeek = 7
	assert.True(t, IsCode(ValidateRule(bad), CodeValidation))

	bad = good
	bad.StartTime = "25:00"
	assert.True(t, IsCode(ValidateRule(bad), CodeValidation))

	bad = good
	bad.StartTime, bad.EndTime = "17:00", "09:00"
	assert.True(t, IsCode(ValidateRule(bad), CodeValidation))

	bad = good
	bad.SlotMinutes = -5
	assert.True(t, IsCode(ValidateRule(bad), CodeValidation))
}

func TestValidateException(t *testing.T) {
	closed := models.AvailabilityException{Date: "2025-06-02", Closed: true}
	assert.NoError(t, ValidateException(closed))

	override := models.AvailabilityException{Date: "2025-06-02", StartTime: "10:00", EndTime: "14:00"}
	assert.NoError(t, ValidateException(override))

	empty := models.AvailabilityException{Date: "2025-06-02"}
	assert.True(t, IsCode(ValidateException(empty), CodeValidation))

	inverted := models.AvailabilityException{Date: "2025-06-02", StartTime: "14:00", EndTime: "10:00"}
	assert.True(t, IsCode(ValidateException(inverted), CodeValidation))

	badDate := models.AvailabilityException{Date: "tomorrow", Closed: true}
	assert.True(t, IsCode(ValidateException(badDate), CodeValidation))
}
