package domain

import "time"

// Default business hours
const (
	DefaultOpeningTime     = "09:00"
	DefaultClosingTime     = "22:00"
	DefaultSlotGranularity = time.Hour
)

// Business validation constants
const (
	MaxClientNameLength  = 200
	MaxServiceLength     = 500
	MaxItemNameLength    = 200
	MaxDescriptionLength = 500

	// CriticalStockThreshold items with a quantity below it are reported on the dashboard
	CriticalStockThreshold = 5
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
