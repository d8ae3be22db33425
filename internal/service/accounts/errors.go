package accounts

import "errors"

var (
	// ErrNotFound возвращается, когда счёт не найден
	ErrNotFound = errors.New("accounts: account not found")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("accounts: invalid account status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("accounts: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("accounts: internal error")
)
