package inventory

import "errors"

var (
	// ErrNotFound возвращается, когда товар не найден
	ErrNotFound = errors.New("inventory: item not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("inventory: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("inventory: internal error")
)
