package models

// AvailabilityRule is one recurring weekly opening window for a provider.
// Times are provider-local "HH:MM" strings; StartTime must precede EndTime.
// A provider may hold any number of rules, including several for the same
// weekday.
type AvailabilityRule struct {
	ID          string `bson:"id" json:"id"`
	ProviderID  string `bson:"providerId" json:"providerId"`
	DayOfWeek   int    `bson:"dayOfWeek" json:"dayOfWeek" binding:"min=0,max=6"` // 0 = Sunday
	StartTime   string `bson:"startTime" json:"startTime" binding:"required"`    // "09:00"
	EndTime     string `bson:"endTime" json:"endTime" binding:"required"`        // "17:00"
	SlotMinutes int    `bson:"slotMinutes,omitempty" json:"slotMinutes,omitempty"`
}

// AvailabilityException overrides the weekly rules for a single calendar
// date. At most one exists per (provider, date). A closed exception yields
// zero slots for the date; a non-closed one replaces the time window of
// every rule matching that weekday.
type AvailabilityException struct {
	ID         string `bson:"id" json:"id"`
	ProviderID string `bson:"providerId" json:"providerId"`
	Date       string `bson:"date" json:"date" binding:"required"` // "2006-01-02"
	Closed     bool   `bson:"closed" json:"closed"`
	StartTime  string `bson:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime    string `bson:"endTime,omitempty" json:"endTime,omitempty"`
}
