package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDateFormat возвращается, когда дата не в формате YYYY-MM-DD
	ErrInvalidDateFormat = errors.New("create_booking: invalid date format")

	// ErrInvalidTimeSlot возвращается, когда время не в формате HH:MM, вне рабочих часов или не кратно шагу
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrInvalidConfiguration возвращается, когда рабочие часы настроены некорректно
	ErrInvalidConfiguration = errors.New("create_booking: invalid business hours configuration")

	// ErrSlotConflict возвращается, когда слот на эту дату уже занят
	ErrSlotConflict = errors.New("create_booking: slot is already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
