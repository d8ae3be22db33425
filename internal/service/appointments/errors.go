package appointments

import "errors"

var (
	// ErrNotFound возвращается, когда запись не найдена (по ID или позиции)
	ErrNotFound = errors.New("appointments: appointment not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments: internal error")
)
