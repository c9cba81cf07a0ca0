package domain

// Default generation values
const (
	DefaultSlotDurationMinutes = 60
)

// Business validation constants
const (
	MinSlotDurationMinutes = 15
	MaxSlotDurationMinutes = 240 // 4 hours

	MinOperatingHour = 0
	MaxOperatingHour = 23

	MinWindowHours = 1
	MaxWindowHours = 6

	MaxGenerationRangeDays = 90

	MaxMaintenanceReasonLength  = 500
	MaxCancellationReasonLength = 500
	MaxCourtNameLength          = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
