package domain

// Default service settings applied when a service has no stored
// configuration row.
const (
	DefaultDurationMinutes    = 30
	DefaultIntervalMinutes    = 30
	DefaultBufferMinutes      = 0
	DefaultMinimumNoticeHours = 1
)

// Business validation constants
const (
	MinDurationMinutes = 5
	MaxDurationMinutes = 480 // 8 hours
	MinIntervalMinutes = 5
	MaxIntervalMinutes = 240
	MaxBufferMinutes   = 240
	MaxNoticeHours     = 24 * 14 // 2 weeks
	MaxRollingAmount   = 365
	MaxNotesLength     = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MinutesPerDay is the number of minute offsets in one calendar day.
const MinutesPerDay = 24 * 60
