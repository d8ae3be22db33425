package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-OpsPanel/pkg/types"
)

// ErrInvalidBusinessHours is returned when the business hours configuration cannot generate slots
var ErrInvalidBusinessHours = errors.New("domain: invalid business hours")

// BusinessHours is the process-wide booking window, fixed at startup
type BusinessHours struct {
	OpeningTime     types.TimeString
	ClosingTime     types.TimeString
	SlotGranularity time.Duration
	Location        *time.Location // zone used to decide what "today" is
}

// DefaultBusinessHours returns the 09:00-22:00 hourly window
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		OpeningTime:     DefaultOpeningTime,
		ClosingTime:     DefaultClosingTime,
		SlotGranularity: DefaultSlotGranularity,
		Location:        time.Local,
	}
}

// ValidateGranularity checks the step is a positive whole number of minutes
func (h BusinessHours) ValidateGranularity() error {
	if h.SlotGranularity <= 0 {
		return fmt.Errorf("%w: slot granularity must be positive, got %s", ErrInvalidBusinessHours, h.SlotGranularity)
	}
	if h.SlotGranularity%time.Minute != 0 {
		return fmt.Errorf("%w: slot granularity must be a whole number of minutes, got %s", ErrInvalidBusinessHours, h.SlotGranularity)
	}
	return nil
}

// Validate checks the whole configuration, including the window order
func (h BusinessHours) Validate() error {
	if err := h.OpeningTime.Validate(); err != nil {
		return fmt.Errorf("%w: opening time: %v", ErrInvalidBusinessHours, err)
	}
	if err := h.ClosingTime.Validate(); err != nil {
		return fmt.Errorf("%w: closing time: %v", ErrInvalidBusinessHours, err)
	}
	if h.OpeningTime.IsAfter(h.ClosingTime) {
		return fmt.Errorf("%w: opening time %s is after closing time %s", ErrInvalidBusinessHours, h.OpeningTime, h.ClosingTime)
	}
	return h.ValidateGranularity()
}

// GranularityMinutes returns the slot step in minutes
func (h BusinessHours) GranularityMinutes() int {
	return int(h.SlotGranularity / time.Minute)
}

// Contains reports whether slot lies inside [OpeningTime, ClosingTime] on the granularity grid
func (h BusinessHours) Contains(slot types.TimeString) bool {
	step := h.GranularityMinutes()
	if step <= 0 || slot.Validate() != nil {
		return false
	}
	if slot.IsBefore(h.OpeningTime) || slot.IsAfter(h.ClosingTime) {
		return false
	}
	return (slot.Minutes()-h.OpeningTime.Minutes())%step == 0
}

// In converts now into the configured zone
func (h BusinessHours) In(now time.Time) time.Time {
	if h.Location == nil {
		return now
	}
	return now.In(h.Location)
}
