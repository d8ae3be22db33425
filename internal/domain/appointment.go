package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OpsPanel/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusActive AppointmentStatus = "active"
	// StatusCancelled is part of the model but no operation produces it:
	// cancellation is a hard delete.
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a booked time slot in the ledger
type Appointment struct {
	ID         uuid.UUID
	ClientName string // denormalized display name of the client at booking time
	Service    string
	Date       time.Time // calendar date, midnight UTC
	TimeSlot   types.TimeString
	Status     AppointmentStatus
	CreatedAt  time.Time
}

// IsActive returns true if the appointment occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status == StatusActive
}

// SlotKey returns the (date, time slot) pair that must be unique across active appointments
func (a *Appointment) SlotKey() SlotKey {
	return NewSlotKey(a.Date, a.TimeSlot)
}

// SlotKey identifies a bookable slot on a calendar date
type SlotKey struct {
	Date     string
	TimeSlot types.TimeString
}

// NewSlotKey builds a SlotKey from a date and a time slot
func NewSlotKey(date time.Time, slot types.TimeString) SlotKey {
	return SlotKey{
		Date:     date.Format(DateFormat),
		TimeSlot: slot,
	}
}

// DateOnly drops the time-of-day and zone, keeping the calendar date as seen in t's location
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}
