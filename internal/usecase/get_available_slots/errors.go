package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInvalidDateFormat возвращается, когда дата не в формате YYYY-MM-DD
	ErrInvalidDateFormat = errors.New("get_available_slots: invalid date format")

	// ErrInvalidConfiguration возвращается, когда рабочие часы не позволяют сгенерировать слоты
	ErrInvalidConfiguration = errors.New("get_available_slots: invalid business hours configuration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
