package scheduling

import (
	"testing"
	"time"

	"careconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-06-02 is a Monday.
const testMonday = "2025-06-02"

func mondayRule(slotMinutes int) models.AvailabilityRule {
	return models.AvailabilityRule{
		ID:          "rule-1",
		ProviderID:  "prov-1",
		DayOfWeek:   1,
		StartTime:   "09:00",
		EndTime:     "17:00",
		SlotMinutes: slotMinutes,
	}
}

func TestGenerateSlotsFullDay(t *testing.T) {
	slots, err := GenerateSlots(testMonday, []models.AvailabilityRule{mondayRule(20)}, nil, 60, 20)
	require.NoError(t, err)
	require.Len(t, slots, 24)

	// Local 09:00 at UTC+1 is 08:00Z.
	assert.Equal(t, time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC), slots[0].StartAt)
	assert.Equal(t, time.Date(2025, 6, 2, 8, 20, 0, 0, time.UTC), slots[0].EndAt)

	// Last slot starts at local 16:40 and ends exactly at the window end.
	last := slots[len(slots)-1]
	assert.Equal(t, time.Date(2025, 6, 2, 15, 40, 0, 0, time.UTC), last.StartAt)
	assert.Equal(t, time.Date(2025, 6, 2, 16, 0, 0, 0, time.UTC), last.EndAt)
}

func TestGenerateSlotsDropsTrailingPartial(t *testing.T) {
	rule := mondayRule(20)
	rule.EndTime = "10:30"
	rule.StartTime = "09:00"

	slots, err := GenerateSlots(testMonday, []models.AvailabilityRule{rule}, nil, 60, 20)
	require.NoError(t, err)

	// 09:00, 09:20, 09:40, 10:00 fit; 10:20-10:40 spills past 10:30.
	require.Len(t, slots, 4)
	assert.Equal(t, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), slots[3].StartAt)
}

func TestGenerateSlotsNoRuleForWeekday(t *testing.T) {
	rule := mondayRule(20)
	rule.DayOfWeek = 3

	slots, err := GenerateSlots(testMonday, []models.AvailabilityRule{rule}, nil, 60, 20)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlotsClosedException(t *testing.T) {
	ex := models.AvailabilityException{ProviderID: "prov-1", Date: testMonday, Closed: true}

	slots, err := GenerateSlots(testMonday, []models.AvailabilityRule{mondayRule(20)}, []models.AvailabilityException{ex}, 60, 20)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlotsExceptionOverridesWindow(t *testing.T) {
	ex := models.AvailabilityException{
		ProviderID: "prov-1",
		Date:       testMonday,
		StartTime:  "10:00",
		EndTime:    "12:00",
	}

	slots, err := GenerateSlots(testMonday, []models.AvailabilityRule{mondayRule(20)}, []models.AvailabilityException{ex}, 60, 20)
	require.NoError(t, err)
	require.Len(t, slots, 6)
	assert.Equal(t, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), slots[0].StartAt)
	assert.Equal(t, time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC), slots[5].EndAt)
}

func TestGenerateSlotsExceptionPartialOverride(t *testing.T) {
	// Only the start is overridden; the rule keeps its end.
	ex := models.AvailabilityException{
		ProviderID: "prov-1",
		Date:       testMonday,
		StartTime:  "16:00",
	}

	slots, err := GenerateSlots(testMonday, []models.AvailabilityRule{mondayRule(20)}, []models.AvailabilityException{ex}, 60, 20)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC), slots[0].StartAt)
}

func TestGenerateSlotsExceptionOnOtherDateIgnored(t *testing.T) {
	ex := models.AvailabilityException{ProviderID: "prov-1", Date: "2025-06-03", Closed: true}

	slots, err := GenerateSlots(testMonday, []models.AvailabilityRule{mondayRule(20)}, []models.AvailabilityException{ex}, 60, 20)
	require.NoError(t, err)
	assert.Len(t, slots, 24)
}

func TestGenerateSlotsMultipleRulesAreAdditive(t *testing.T) {
	morning := mondayRule(30)
	morning.StartTime = "09:00"
	morning.EndTime = "12:00"
	afternoon := mondayRule(30)
	afternoon.ID = "rule-2"
	afternoon.StartTime = "14:00"
	afternoon.EndTime = "16:00"

	slots, err := GenerateSlots(testMonday, []models.AvailabilityRule{morning, afternoon}, nil, 60, 20)
	require.NoError(t, err)
	assert.Len(t, slots, 10) // 6 morning + 4 afternoon
}

func TestGenerateSlotsDefaultSlotMinutes(t *testing.T) {
	rule := mondayRule(0)
	rule.StartTime = "09:00"
	rule.EndTime = "10:00"

	slots, err := GenerateSlots(testMonday, []models.AvailabilityRule{rule}, nil, 0, 30)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), slots[0].StartAt)
}

func TestGenerateSlotsWeekdayIsLocal(t *testing.T) {
	// At UTC+12, a Monday 00:00-01:00 window lands on Sunday in UTC. The
	// weekday match must still use the local calendar date.
	rule := mondayRule(30)
	rule.StartTime = "00:00"
	rule.EndTime = "01:00"

	slots, err := GenerateSlots(testMonday, []models.AvailabilityRule{rule}, nil, 12*60, 20)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), slots[0].StartAt)
}

func TestGenerateSlotsInvalidDate(t *testing.T) {
	_, err := GenerateSlots("06/02/2025", []models.AvailabilityRule{mondayRule(20)}, nil, 60, 20)
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeValidation))
}

func TestParseClock(t *testing.T) {
	min, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, min)

	_, err = ParseClock("9am")
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeValidation))
}
